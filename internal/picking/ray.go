// Package picking provides ray casting against planes and boxes.
package picking

import (
	gomath "math"

	"github.com/Faultbox/vecxform/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin math.Position
	Dir    math.Direction
}

// NewRay builds a ray from origin towards target. The direction is null when
// the two coincide.
func NewRay(origin, target math.Position) Ray {
	return Ray{Origin: origin, Dir: target.Diff(origin).Direction()}
}

// Point returns the point at distance t along the ray.
func (r Ray) Point(t float64) math.Position {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Transform maps the ray by m under the row-vector convention. The origin is
// moved as a point and the direction as a free vector.
func (r Ray) Transform(m math.Transform) Ray {
	return Ray{
		Origin: r.Origin.MulTransform(m),
		Dir:    r.Dir.MulTransform(m),
	}
}

// Unproject maps a point in normalized device coordinates back to world space
// through the inverse view-projection matrix.
func Unproject(ndc math.Vector3, invViewProj math.Transform) math.Position {
	v := math.Vector4{X: ndc.X, Y: ndc.Y, Z: ndc.Z, W: 1}.MulTransform(invViewProj)
	return v.Stdz().Position()
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, invViewProj math.Transform) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	near := Unproject(math.Vector3{X: ndcX, Y: ndcY, Z: -1}, invViewProj)
	far := Unproject(math.Vector3{X: ndcX, Y: ndcY, Z: 1}, invViewProj)
	return NewRay(near, far)
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float64) (math.Position, bool) {
	t, ok := r.IntersectPlane(math.Position{Y: planeY}, math.YAxis)
	if !ok {
		return math.Position{}, false
	}

	p := r.Point(t)
	p.Y = planeY
	return p, true
}

// IntersectPlane intersects the ray with the plane through point with the
// given normal and returns the distance along the ray.
func (r Ray) IntersectPlane(point math.Position, normal math.Direction) (float64, bool) {
	denom := r.Dir.Dot(normal)
	if gomath.Abs(denom) < math.Epsilon {
		return 0, false // Ray parallel to plane
	}
	t := point.Diff(r.Origin).DotDirection(normal) / denom
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	if r.Dir.IsNull() {
		return 0, false
	}

	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X(), r.Dir.Y(), r.Dir.Z()}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = gomath.Max(tmin, t1)
		tmax = gomath.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
