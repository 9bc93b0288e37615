package mglconv

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/vecxform/pkg/math"
)

func sampleTransform() math.Transform {
	t := math.Identity()
	t.Translate(math.Vector3{X: 1, Y: -2, Z: 3}).
		RotateZ(0.7).
		RotateX(-0.3).
		Scale(math.Vector4{X: 2, Y: 0.5, Z: 1.5, W: 1})
	return t
}

func assertTransformNear(t *testing.T, want, got math.Transform, eps float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want[i][j], got[i][j], eps, "element [%d][%d]", i, j)
		}
	}
}

func TestMat4RoundTrip(t *testing.T) {
	tr := sampleTransform()
	assert.Equal(t, tr, FromMat4(Mat4(tr)))
}

func TestMat4TranslationLayout(t *testing.T) {
	tr := math.Identity()
	tr.Translate(math.Vector3{X: 4, Y: 5, Z: 6})

	assert.Equal(t, mgl64.Translate3D(4, 5, 6), Mat4(tr))
}

func TestMat4MapsLikeRowVectors(t *testing.T) {
	tr := sampleTransform()
	m := Mat4(tr)

	positions := []math.Position{{X: 1, Y: 0, Z: 0}, {X: -3, Y: 2, Z: 0.5}, math.Origin}
	for _, p := range positions {
		want := p.MulTransform(tr)
		got := m.Mul4x1(PositionVec4(p))
		assert.InDelta(t, want.X, got[0], 1e-12)
		assert.InDelta(t, want.Y, got[1], 1e-12)
		assert.InDelta(t, want.Z, got[2], 1e-12)
		assert.InDelta(t, 1.0, got[3], 1e-12)
	}

	d := math.NewDirection(1, 1, 0)
	got := m.Mul4x1(DirectionVec4(d))
	want := d.Homogeneous().MulTransform(tr)
	assert.InDeltaSlice(t, []float64{want.X, want.Y, want.Z, want.W}, got[:], 1e-12)
}

func TestInverseMatchesMathgl(t *testing.T) {
	tr := sampleTransform()

	want := FromMat4(Mat4(tr).Inv())
	assertTransformNear(t, want, tr.Inverse(), 1e-9)

	checked, err := tr.InverseChecked()
	require.NoError(t, err)
	assertTransformNear(t, want, checked, 1e-9)
}

func TestProductMatchesMathgl(t *testing.T) {
	a := sampleTransform()
	b := math.Identity()
	b.RotateY(1.1).Translate(math.Vector3{X: 0, Y: 7, Z: -1})

	// a applied first: mathgl composes right to left.
	want := FromMat4(Mat4(b).Mul4(Mat4(a)))
	assertTransformNear(t, want, a.Mul(b), 1e-12)
}

func TestMat4f(t *testing.T) {
	tr := sampleTransform()
	m := Mat4f(tr)
	for i := 0; i < 16; i++ {
		assert.InDelta(t, tr[i/4][i%4], float64(m[i]), 1e-6)
	}
	assertTransformNear(t, tr, FromMat4f(m), 1e-6)
}

func TestQuatMatchesMathgl(t *testing.T) {
	axis := math.NewDirection(1, -2, 0.5)
	q := math.QuatFromAxisAngle(axis, 1.2)

	mq := mgl64.QuatRotate(1.2, mgl64.Vec3{axis.X(), axis.Y(), axis.Z()})
	assert.InDelta(t, mq.W, q.W, 1e-12)
	v := Quat(q).V
	assert.InDeltaSlice(t, mq.V[:], v[:], 1e-12)

	assertTransformNear(t, q.Transform(), FromMat4(mq.Mat4()), 1e-12)
	assert.Equal(t, q, FromQuat(Quat(q)))
}

func TestVectorConversions(t *testing.T) {
	v := math.Vector3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, Vec3(v))
	assert.Equal(t, v, FromVec3(Vec3(v)))

	v4 := math.Vector4{X: 1, Y: 2, Z: 3, W: 0.5}
	assert.Equal(t, v4, FromVec4(Vec4(v4)))

	d := math.ZAxis
	assert.Equal(t, mgl64.Vec4{0, 0, 1, 0}, DirectionVec4(d))

	h := FromVec4(PositionVec4(math.Position{X: 2, Y: 4, Z: 6}))
	assert.Equal(t, 1.0, h.W)
	assert.InDelta(t, gomath.Sqrt(56), h.Vector3().Len(), 1e-12)
}
