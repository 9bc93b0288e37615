package math

import (
	"errors"
	"math"
)

// ErrSingular is returned by InverseChecked when the linear part of a
// transform has no usable inverse.
var ErrSingular = errors.New("math: singular transform")

// precisionLimit is the smallest relative determinant InverseChecked accepts.
const precisionLimit = 1e-15

// Transform is a 4x4 affine matrix in row-major order.
//
// Vectors are rows: a point p is mapped by p * T, so the translation lives in
// row 3 and A.Mul(B) applies A first. The zero value is the zero matrix; use
// Identity or NewTransform to start from the identity.
type Transform [4][4]float64

// Identity returns an identity matrix.
func Identity() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewTransform returns an identity matrix.
func NewTransform() Transform {
	return Identity()
}

// NewTransformRows builds a matrix from four homogeneous rows.
func NewTransformRows(r0, r1, r2, r3 Vector4) Transform {
	return Transform{
		{r0.X, r0.Y, r0.Z, r0.W},
		{r1.X, r1.Y, r1.Z, r1.W},
		{r2.X, r2.Y, r2.Z, r2.W},
		{r3.X, r3.Y, r3.Z, r3.W},
	}
}

// NewTransformRows3 builds an affine matrix from three basis rows and a
// translation row. Column 3 is (0, 0, 0, 1).
func NewTransformRows3(r0, r1, r2, r3 Vector3) Transform {
	return Transform{
		{r0.X, r0.Y, r0.Z, 0},
		{r1.X, r1.Y, r1.Z, 0},
		{r2.X, r2.Y, r2.Z, 0},
		{r3.X, r3.Y, r3.Z, 1},
	}
}

// SetIdentity resets m to the identity.
func (m *Transform) SetIdentity() *Transform {
	*m = Identity()
	return m
}

// Row returns row r (0 <= r <= 3).
func (m Transform) Row(r int) Vector4 {
	return Vector4{m[r][0], m[r][1], m[r][2], m[r][3]}
}

// Col returns column c (0 <= c <= 3).
func (m Transform) Col(c int) Vector4 {
	return Vector4{m[0][c], m[1][c], m[2][c], m[3][c]}
}

// SetRow replaces row r with v.
func (m *Transform) SetRow(r int, v Vector4) *Transform {
	m[r] = [4]float64{v.X, v.Y, v.Z, v.W}
	return m
}

// SetRow3 replaces row r with v and a zero homogeneous entry.
func (m *Transform) SetRow3(r int, v Vector3) *Transform {
	m[r] = [4]float64{v.X, v.Y, v.Z, 0}
	return m
}

// SetCol replaces column c with v.
func (m *Transform) SetCol(c int, v Vector4) *Transform {
	m[0][c] = v.X
	m[1][c] = v.Y
	m[2][c] = v.Z
	m[3][c] = v.W
	return m
}

// SetCol3 replaces column c with v and a zero entry in row 3.
func (m *Transform) SetCol3(c int, v Vector3) *Transform {
	m[0][c] = v.X
	m[1][c] = v.Y
	m[2][c] = v.Z
	m[3][c] = 0
	return m
}

// Transpose returns the transpose of m.
func (m Transform) Transpose() Transform {
	return NewTransformRows(m.Col(0), m.Col(1), m.Col(2), m.Col(3))
}

// Mul returns m * other. With row vectors, m is applied first.
func (m Transform) Mul(other Transform) Transform {
	var result Transform
	for i := 0; i < 4; i++ {
		row := m.Row(i)
		for j := 0; j < 4; j++ {
			result[i][j] = row.Dot(other.Col(j))
		}
	}
	return result
}

// MulAssign sets m to m * other.
func (m *Transform) MulAssign(other Transform) *Transform {
	*m = m.Mul(other)
	return m
}

// Add returns the element-wise sum m + other.
func (m Transform) Add(other Transform) Transform {
	var result Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = m[i][j] + other[i][j]
		}
	}
	return result
}

// AddAssign sets m to m + other.
func (m *Transform) AddAssign(other Transform) *Transform {
	*m = m.Add(other)
	return m
}

// MulScalar returns every element of m multiplied by s.
func (m Transform) MulScalar(s float64) Transform {
	var result Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i][j] = s * m[i][j]
		}
	}
	return result
}

// MulScalarAssign multiplies every element of m by s.
func (m *Transform) MulScalarAssign(s float64) *Transform {
	*m = m.MulScalar(s)
	return m
}

// MulVector4 returns m times the column vector v.
func (m Transform) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m.Row(0).Dot(v),
		m.Row(1).Dot(v),
		m.Row(2).Dot(v),
		m.Row(3).Dot(v),
	}
}

// MulVector3 returns m times the column vector v, treating v as a free vector.
func (m Transform) MulVector3(v Vector3) Vector3 {
	return m.MulVector4(v.Homogeneous()).Vector3()
}

// MulPosition returns m times the column vector p (W = 1), divided back through W.
func (m Transform) MulPosition(p Position) Position {
	return m.MulVector4(p.Homogeneous()).Position()
}

// MulDirection returns m times the column vector d (W = 0), renormalized.
func (m Transform) MulDirection(d Direction) Direction {
	return m.MulVector4(d.Homogeneous()).Direction()
}

// ApproxEqual reports whether every element of m is within eps of other.
// A NaN element never matches.
func (m Transform) ApproxEqual(other Transform, eps float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !(math.Abs(m[i][j]-other[i][j]) <= eps) {
				return false
			}
		}
	}
	return true
}

// Translate concatenates a translation by v onto m.
// Graphics Gems I, p478.
func (m *Transform) Translate(v Vector3) *Transform {
	for i := 0; i < 4; i++ {
		m[i][0] += m[i][3] * v.X
		m[i][1] += m[i][3] * v.Y
		m[i][2] += m[i][3] * v.Z
	}
	return m
}

// Scale concatenates a scaling onto m. The effective factors are
// (s.X*s.W, s.Y*s.W, s.Z*s.W), so W acts as a global scale.
func (m *Transform) Scale(s Vector4) *Transform {
	sx, sy, sz := s.X*s.W, s.Y*s.W, s.Z*s.W
	for i := 0; i < 4; i++ {
		m[i][0] *= sx
		m[i][1] *= sy
		m[i][2] *= sz
	}
	return m
}

// RotateX concatenates a rotation about the x axis. A zero angle is a no-op.
func (m *Transform) RotateX(radians float64) *Transform {
	if radians == 0 {
		return m
	}
	s, c := math.Sincos(radians)
	for i := 0; i < 4; i++ {
		t := m[i][1]
		m[i][1] = t*c - m[i][2]*s
		m[i][2] = t*s + m[i][2]*c
	}
	return m
}

// RotateY concatenates a rotation about the y axis. A zero angle is a no-op.
func (m *Transform) RotateY(radians float64) *Transform {
	if radians == 0 {
		return m
	}
	s, c := math.Sincos(radians)
	for i := 0; i < 4; i++ {
		t := m[i][0]
		m[i][0] = t*c + m[i][2]*s
		m[i][2] = m[i][2]*c - t*s
	}
	return m
}

// RotateZ concatenates a rotation about the z axis. A zero angle is a no-op.
func (m *Transform) RotateZ(radians float64) *Transform {
	if radians == 0 {
		return m
	}
	s, c := math.Sincos(radians)
	for i := 0; i < 4; i++ {
		t := m[i][0]
		m[i][0] = t*c - m[i][1]*s
		m[i][1] = t*s + m[i][1]*c
	}
	return m
}

// SetFrame overwrites m with the placement of a canonical figure: scaled by
// s, with its axes turned onto rx, ry and rz, then moved to t. The axes
// should be mutually perpendicular. A nonzero s.W divides the translation
// and becomes 1/s.W in the corner element.
//
// rx, ry and rz become the columns of the rotation block, so MulDirection
// carries the figure's axes onto them, while t lands in row 3. Applied to row
// vectors the block is the transposed rotation, taking world coordinates to
// the frame's axes before the move.
func (m *Transform) SetFrame(rx, ry, rz Direction, s Vector4, t Position) *Transform {
	d := s.W
	if d != 0 {
		d = 1 / d
	}
	*m = Transform{
		{rx.x * s.X, ry.x * s.X, rz.x * s.X, 0},
		{rx.y * s.Y, ry.y * s.Y, rz.y * s.Y, 0},
		{rx.z * s.Z, ry.z * s.Z, rz.z * s.Z, 0},
		{t.X * d, t.Y * d, t.Z * d, d},
	}
	return m
}

// Inverse returns the inverse of an affine m (Graphics Gems II, Arvo).
//
// The upper-left 3x3 block is inverted in closed form and the translation
// row becomes -t * R⁻¹. Column 3 of m is assumed to be (0, 0, 0, 1). There
// is no singularity check: a singular or ill-conditioned m yields Inf/NaN or
// meaningless values. Use InverseChecked to detect that case.
func (m Transform) Inverse() Transform {
	inv, _, _ := m.inverse()
	return inv
}

// InverseChecked is Inverse with Arvo's conditioning test: it fails with
// ErrSingular when the determinant is negligible relative to the magnitude
// of its terms.
func (m Transform) InverseChecked() (Transform, error) {
	inv, det, scale := m.inverse()
	if scale == 0 || math.Abs(det/scale) < precisionLimit {
		return Identity(), ErrSingular
	}
	return inv, nil
}

// inverse returns the affine inverse together with the 3x3 determinant and
// the sum of the absolute values of its six terms.
func (m Transform) inverse() (inv Transform, det, scale float64) {
	var pos, neg float64
	accumulate := func(t float64) {
		if t >= 0 {
			pos += t
		} else {
			neg += t
		}
	}
	accumulate(m[0][0] * m[1][1] * m[2][2])
	accumulate(m[0][1] * m[1][2] * m[2][0])
	accumulate(m[0][2] * m[1][0] * m[2][1])
	accumulate(-m[0][2] * m[1][1] * m[2][0])
	accumulate(-m[0][1] * m[1][0] * m[2][2])
	accumulate(-m[0][0] * m[1][2] * m[2][1])
	det = pos + neg
	scale = pos - neg

	invDet := 1 / det

	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[1][0] = -(m[1][0]*m[2][2] - m[1][2]*m[2][0]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[0][1] = -(m[0][1]*m[2][2] - m[0][2]*m[2][1]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[2][1] = -(m[0][0]*m[2][1] - m[0][1]*m[2][0]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][2] = -(m[0][0]*m[1][2] - m[0][2]*m[1][0]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet

	for j := 0; j < 3; j++ {
		inv[3][j] = -(m[3][0]*inv[0][j] + m[3][1]*inv[1][j] + m[3][2]*inv[2][j])
	}
	inv[3][3] = 1

	return inv, det, scale
}
