package picking

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/vecxform/pkg/math"
)

func TestNewAABBOrdersCorners(t *testing.T) {
	box := NewAABB(math.Position{X: 2, Y: -1, Z: 5}, math.Position{X: -2, Y: 1, Z: 3})
	assert.Equal(t, math.Position{X: -2, Y: -1, Z: 3}, box.Min)
	assert.Equal(t, math.Position{X: 2, Y: 1, Z: 5}, box.Max)
	assert.Equal(t, math.Position{X: 0, Y: 0, Z: 4}, box.Center())
}

func TestAABBContains(t *testing.T) {
	box := unitBox()
	assert.True(t, box.Contains(math.Origin))
	assert.True(t, box.Contains(math.Position{X: 1, Y: 1, Z: 1}))
	assert.False(t, box.Contains(math.Position{X: 1.01}))
}

func TestAABBCorners(t *testing.T) {
	seen := map[math.Position]bool{}
	for _, c := range unitBox().Corners() {
		seen[c] = true
	}
	assert.Len(t, seen, 8)
}

func TestAABBTransform(t *testing.T) {
	m := math.Identity()
	m.Scale(math.Vector4{X: 2, Y: 3, Z: 1, W: 1}).Translate(math.Vector3{X: 10})

	box := unitBox().Transform(m)
	assert.Equal(t, math.Position{X: 8, Y: -3, Z: -1}, box.Min)
	assert.Equal(t, math.Position{X: 12, Y: 3, Z: 1}, box.Max)

	// An eighth turn about z widens the enclosing box to the diagonal.
	r := math.Identity()
	r.RotateZ(gomath.Pi / 4)
	wide := unitBox().Transform(r)
	assert.InDelta(t, gomath.Sqrt2, wide.Max.X, 1e-12)
	assert.InDelta(t, -gomath.Sqrt2, wide.Min.Y, 1e-12)
	assert.InDelta(t, 1.0, wide.Max.Z, 1e-12)
}
