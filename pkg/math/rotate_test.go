package math

import (
	"math"
	"testing"
)

func nearDirection(a, b Direction, eps float64) bool {
	return nearVector3(a.Vector(), b.Vector(), eps)
}

func TestSetRotateMatchesBuilders(t *testing.T) {
	angles := []float64{0.25, math.Pi / 2, -1.3, 3}
	for _, theta := range angles {
		var got Transform
		want := Identity()

		got.SetRotate(XAxis, theta)
		want.RotateX(theta)
		if !got.ApproxEqual(want, 1e-12) {
			t.Errorf("SetRotate(x, %v) = %v, want %v", theta, got, want)
		}

		want.SetIdentity().RotateY(theta)
		got.SetRotate(YAxis, theta)
		if !got.ApproxEqual(want, 1e-12) {
			t.Errorf("SetRotate(y, %v) = %v, want %v", theta, got, want)
		}

		want.SetIdentity().RotateZ(theta)
		got.SetRotate(ZAxis, theta)
		if !got.ApproxEqual(want, 1e-12) {
			t.Errorf("SetRotate(z, %v) = %v, want %v", theta, got, want)
		}
	}
}

func TestSetRotateOverwrites(t *testing.T) {
	m := Identity()
	m.Translate(Vector3{1, 2, 3}).Scale(Vector4{5, 5, 5, 1})
	m.SetRotate(ZAxis, math.Pi/2)

	if got, want := m.Row(3), (Vector4{0, 0, 0, 1}); got != want {
		t.Errorf("SetRotate left row 3 = %v, want %v", got, want)
	}
	if got := (Vector3{1, 0, 0}).MulTransform(m); !nearVector3(got, Vector3{0, 1, 0}, Epsilon) {
		t.Errorf("(1,0,0) * SetRotate(z, π/2) = %v, want (0, 1, 0)", got)
	}
}

func TestSetRotateKeepsAxis(t *testing.T) {
	axis := NewDirection(1, 2, -2)
	var m Transform
	m.SetRotate(axis, 1.234)
	if got := axis.MulTransform(m); !nearDirection(got, axis, Epsilon) {
		t.Errorf("axis * SetRotate(axis, θ) = %v, want %v", got, axis)
	}
}

func TestSetRotateBetween(t *testing.T) {
	pairs := [][2]Direction{
		{XAxis, YAxis},
		{NewDirection(1, 2, 3), NewDirection(-2, 0.5, 1)},
		{NewDirection(0, 0, 1), NewDirection(0.01, 0, 1)},
		{NewDirection(1, 1, 0), NewDirection(0, -1, 1)},
	}
	for _, p := range pairs {
		d1, d2 := p[0], p[1]
		var m Transform
		m.SetRotateBetween(d1, d2)
		if got := d1.MulTransform(m); !nearDirection(got, d2, Epsilon) {
			t.Errorf("%v * SetRotateBetween(%v, %v) = %v", d1, d1, d2, got)
		}
		if got := m.Inverse().Mul(m); !got.ApproxEqual(Identity(), Epsilon) {
			t.Errorf("SetRotateBetween(%v, %v) is not invertible: %v", d1, d2, got)
		}
	}
}

func TestSetRotateBetweenColinear(t *testing.T) {
	var m Transform
	m.SetRotateBetween(ZAxis, ZAxis)
	if m != Identity() {
		t.Errorf("SetRotateBetween(d, d) = %v, want I", m)
	}

	// Antiparallel inputs have no rotation axis and produce a point reflection.
	m.SetRotateBetween(ZAxis, ZAxis.Neg())
	want := Identity()
	want.Scale(Vector4{-1, -1, -1, 1})
	if !m.ApproxEqual(want, 1e-12) {
		t.Errorf("SetRotateBetween(d, -d) = %v, want %v", m, want)
	}
}

func TestSetRotateGimbal(t *testing.T) {
	pairs := [][2]Direction{
		{XAxis, ZAxis},
		{NewDirection(0.6, 0.8, 0), NewDirection(0, 0.6, -0.8)},
		{NewDirection(1, 2, 3), NewDirection(-3, -1, 2)},
		{NewDirection(0, 0, -1), NewDirection(0.3, -0.9, 0.2)},
		{YAxis, NewDirection(1, 0, 1)},
		{NewDirection(1, 0, 1), YAxis.Neg()},
	}
	for _, p := range pairs {
		d1, d2 := p[0], p[1]
		var m Transform
		m.SetRotateGimbal(d1, d2)
		if got := d1.MulTransform(m); !nearDirection(got, d2, Epsilon) {
			t.Errorf("%v * SetRotateGimbal(%v, %v) = %v", d1, d1, d2, got)
		}
	}
}

func TestSetRotateGimbalNoRoll(t *testing.T) {
	// A camera looking down -z with +y up turns to look along +x. A yaw about
	// the vertical keeps the camera's right vector horizontal.
	var m Transform
	m.SetRotateGimbal(NewDirection(0, 0, -1), XAxis)

	right := XAxis.MulTransform(m)
	if math.Abs(right.Y()) > Epsilon {
		t.Errorf("right vector after gimbal yaw = %v, want horizontal", right)
	}
	up := YAxis.MulTransform(m)
	if !nearDirection(up, YAxis, Epsilon) {
		t.Errorf("up vector after gimbal yaw = %v, want %v", up, YAxis)
	}
}

func TestSetRotateGimbalAntiparallel(t *testing.T) {
	var m Transform
	m.SetRotateGimbal(XAxis, XAxis.Neg())

	if got := XAxis.MulTransform(m); !nearDirection(got, XAxis.Neg(), Epsilon) {
		t.Errorf("x * SetRotateGimbal(x, -x) = %v, want -x", got)
	}
	// A half turn about y, not a point reflection.
	if got := YAxis.MulTransform(m); !nearDirection(got, YAxis, Epsilon) {
		t.Errorf("y * SetRotateGimbal(x, -x) = %v, want y", got)
	}
}

func TestSetRotateGimbalBothDegenerate(t *testing.T) {
	var m Transform
	m.SetRotateGimbal(YAxis, YAxis)
	if !m.ApproxEqual(Identity(), 1e-12) {
		t.Errorf("SetRotateGimbal(y, y) = %v, want I", m)
	}
}
