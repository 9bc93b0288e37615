package picking

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/vecxform/pkg/math"
	"github.com/Faultbox/vecxform/pkg/mglconv"
)

func unitBox() AABB {
	return NewAABB(math.Position{X: -1, Y: -1, Z: -1}, math.Position{X: 1, Y: 1, Z: 1})
}

func TestIntersectAABB(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
		hit  bool
		dist float64
	}{
		{"head on", Ray{math.Position{Z: -5}, math.ZAxis}, true, 4},
		{"from inside", Ray{math.Origin, math.XAxis}, true, 1},
		{"behind", Ray{math.Position{Z: 5}, math.ZAxis}, false, 0},
		{"parallel outside", Ray{math.Position{Y: 2, Z: -5}, math.ZAxis}, false, 0},
		{"diagonal", Ray{math.Position{X: -3, Y: -3}, math.NewDirection(1, 1, 0)}, true, 2 * gomath.Sqrt2},
		{"miss", Ray{math.Position{X: -3, Y: 3}, math.NewDirection(1, 1, 0)}, false, 0},
		{"null direction", Ray{math.Origin, math.Direction{}}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, hit := tt.ray.IntersectAABB(unitBox())
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.InDelta(t, tt.dist, dist, 1e-9)
			}
		})
	}
}

func TestIntersectPlaneY(t *testing.T) {
	r := NewRay(math.Position{X: 1, Y: 10, Z: 2}, math.Position{X: 3, Y: 0, Z: 2})

	p, ok := r.IntersectPlaneY(0)
	require.True(t, ok)
	assert.InDelta(t, 3.0, p.X, 1e-9)
	assert.Equal(t, 0.0, p.Y)
	assert.InDelta(t, 2.0, p.Z, 1e-9)

	_, ok = r.IntersectPlaneY(20)
	assert.False(t, ok, "plane behind the ray")

	flat := Ray{math.Position{Y: 1}, math.XAxis}
	_, ok = flat.IntersectPlaneY(0)
	assert.False(t, ok, "ray parallel to plane")
}

func TestIntersectPlane(t *testing.T) {
	r := Ray{math.Position{X: 0, Y: 0, Z: -4}, math.ZAxis}
	dist, ok := r.IntersectPlane(math.Position{Z: 1}, math.ZAxis.Neg())
	require.True(t, ok)
	assert.InDelta(t, 5.0, dist, 1e-12)

	_, ok = r.IntersectPlane(math.Position{X: 1}, math.XAxis)
	assert.False(t, ok)
}

func TestRayTransform(t *testing.T) {
	m := math.Identity()
	m.RotateZ(gomath.Pi / 2).Translate(math.Vector3{X: 10})

	r := Ray{math.Position{X: 1}, math.XAxis}.Transform(m)
	assert.InDelta(t, 10.0, r.Origin.X, 1e-12)
	assert.InDelta(t, 1.0, r.Origin.Y, 1e-12)
	assert.InDelta(t, 0.0, r.Dir.X(), 1e-12)
	assert.InDelta(t, 1.0, r.Dir.Y(), 1e-12)

	p := r.Point(2)
	assert.InDelta(t, 3.0, p.Y, 1e-12)
}

func TestScreenToRayOrthographic(t *testing.T) {
	r := ScreenToRay(400, 300, 800, 600, math.Identity())
	assert.InDelta(t, 0.0, r.Origin.X, 1e-12)
	assert.InDelta(t, 0.0, r.Origin.Y, 1e-12)
	assert.InDelta(t, -1.0, r.Origin.Z, 1e-12)
	assert.Equal(t, math.ZAxis, r.Dir)

	corner := ScreenToRay(0, 0, 800, 600, math.Identity())
	assert.InDelta(t, -1.0, corner.Origin.X, 1e-12)
	assert.InDelta(t, 1.0, corner.Origin.Y, 1e-12)
}

func TestScreenToRayPerspective(t *testing.T) {
	proj := mgl64.Perspective(mgl64.DegToRad(45), 1, 0.1, 100)
	view := mgl64.LookAtV(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	invViewProj := mglconv.FromMat4(proj.Mul4(view).Inv())

	r := ScreenToRay(256, 256, 512, 512, invViewProj)
	assert.InDelta(t, 4.9, r.Origin.Z, 1e-6)
	assert.InDelta(t, -1.0, r.Dir.Z(), 1e-9)

	dist, hit := r.IntersectAABB(unitBox())
	require.True(t, hit)
	assert.InDelta(t, 3.9, dist, 1e-6)
	assert.True(t, unitBox().Contains(r.Point(dist+0.5)))

	off := ScreenToRay(0, 0, 512, 512, invViewProj)
	_, hit = off.IntersectAABB(unitBox())
	assert.False(t, hit, "corner ray should pass beside the box")
}

func TestUnprojectRoundTrip(t *testing.T) {
	viewProj := math.Identity()
	viewProj.Scale(math.Vector4{X: 0.5, Y: 0.25, Z: 1, W: 1}).Translate(math.Vector3{X: 0.1, Y: -0.2})

	world := math.Position{X: 1, Y: 2, Z: 0.3}
	ndc := world.MulTransform(viewProj)
	got := Unproject(ndc.Vector(), viewProj.Inverse())
	assert.InDelta(t, world.X, got.X, 1e-12)
	assert.InDelta(t, world.Y, got.Y, 1e-12)
	assert.InDelta(t, world.Z, got.Z, 1e-12)
}
