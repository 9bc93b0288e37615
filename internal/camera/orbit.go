// Package camera provides an orbit camera built on affine transforms.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/vecxform/internal/picking"
	"github.com/Faultbox/vecxform/pkg/math"
	"github.com/Faultbox/vecxform/pkg/mglconv"
)

// lookAxis is the direction a camera with no rotation looks along.
var lookAxis = math.NewDirection(0, 0, -1)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Position

	// Spherical coordinates
	Distance float64 // Distance from center
	Pitch    float64 // Vertical angle above the xz plane, radians
	Yaw      float64 // Horizontal angle about +y, radians

	// Constraints
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	// Projection
	FovY      float64 // Vertical field of view, radians
	Near, Far float64

	// Sensitivity
	DragSensitivity float64
	ZoomSensitivity float64
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        10,
		Pitch:           0.5,
		Yaw:             0,
		MinDistance:     0.5,
		MaxDistance:     1000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		FovY:            gomath.Pi / 3,
		Near:            0.1,
		Far:             1000,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Eye returns the camera position in world space.
func (c *OrbitCamera) Eye() math.Position {
	sinPitch, cosPitch := gomath.Sincos(c.Pitch)
	sinYaw, cosYaw := gomath.Sincos(c.Yaw)
	offset := math.Vector3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	}
	return c.Center.Add(offset)
}

// Forward returns the direction from the eye to the center.
func (c *OrbitCamera) Forward() math.Direction {
	return c.Center.Diff(c.Eye()).Direction()
}

// CameraToWorld returns the transform taking camera-space row vectors to
// world space. The camera looks down -z with +y up and never rolls.
func (c *OrbitCamera) CameraToWorld() math.Transform {
	var m math.Transform
	m.SetRotateGimbal(lookAxis, c.Forward())
	eye := c.Eye()
	m.Translate(eye.Vector())
	return m
}

// View returns the world-to-camera transform.
func (c *OrbitCamera) View() math.Transform {
	return c.CameraToWorld().Inverse()
}

// Projection returns the perspective projection for a viewport of the given
// aspect ratio, mapping the view frustum to the [-1, 1] clip cube.
func (c *OrbitCamera) Projection(aspect float64) math.Transform {
	return mglconv.FromMat4(mgl64.Perspective(c.FovY, aspect, c.Near, c.Far))
}

// ViewProjection returns View followed by Projection.
func (c *OrbitCamera) ViewProjection(aspect float64) math.Transform {
	return c.View().Mul(c.Projection(aspect))
}

// PickRay returns the world-space ray under a screen pixel. The ray starts on
// the near plane. Screen y grows downwards.
func (c *OrbitCamera) PickRay(screen, viewport math.Vector2) picking.Ray {
	// The projection is not affine, so the general inverse is needed.
	vp := mglconv.Mat4(c.ViewProjection(viewport.X / viewport.Y))
	return picking.ScreenToRay(screen.X, screen.Y, viewport.X, viewport.Y, mglconv.FromMat4(vp.Inv()))
}

// GroundPoint returns where the pick ray under a screen pixel meets the
// horizontal plane through the center.
func (c *OrbitCamera) GroundPoint(screen, viewport math.Vector2) (math.Position, bool) {
	return c.PickRay(screen, viewport).IntersectPlaneY(c.Center.Y)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float64) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float64) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point along the camera's horizontal axes.
func (c *OrbitCamera) HandleMovement(forward, right, up float64) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sinYaw, cosYaw := gomath.Sincos(c.Yaw)
	ahead := math.Vector3{X: -sinYaw, Z: -cosYaw}
	side := math.Vector3{X: cosYaw, Z: -sinYaw}

	move := ahead.Scale(forward).Add(side.Scale(right)).Add(math.Vector3{Y: up})
	c.Center = c.Center.Add(move.Scale(speed))
}

// FitToBox centers the camera on box and backs off far enough to see it.
func (c *OrbitCamera) FitToBox(box picking.AABB) {
	c.Center = box.Center()
	c.Distance = clamp(box.Max.Diff(box.Min).Len()*1.5, c.MinDistance, c.MaxDistance)
	c.Pitch = clamp(0.6, c.MinPitch, c.MaxPitch) // Look down at ~35 degrees
	c.Yaw = 0
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
