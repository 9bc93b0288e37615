package math

import "math"

// setElements overwrites m with the rotation about a unit axis whose angle has
// the given sine and cosine (Rogers & Adams, p55).
func setElements(m *Transform, ax, ay, az, sinTheta, cosTheta float64) {
	oneMinusCos := 1 - cosTheta
	xy := ax * ay
	xz := ax * az
	yz := ay * az

	sx := ax * ax
	sy := ay * ay
	sz := az * az

	*m = Transform{
		{sx + (1-sx)*cosTheta, xy*oneMinusCos + az*sinTheta, xz*oneMinusCos - ay*sinTheta, 0},
		{xy*oneMinusCos - az*sinTheta, sy + (1-sy)*cosTheta, yz*oneMinusCos + ax*sinTheta, 0},
		{xz*oneMinusCos + ay*sinTheta, yz*oneMinusCos - ax*sinTheta, sz + (1-sz)*cosTheta, 0},
		{0, 0, 0, 1},
	}
}

// SetRotate overwrites m with a rotation of radians about axis.
func (m *Transform) SetRotate(axis Direction, radians float64) *Transform {
	s, c := math.Sincos(radians)
	setElements(m, axis.x, axis.y, axis.z, s, c)
	return m
}

// SetRotateBetween overwrites m with the rotation taking d1 onto d2 about
// their common perpendicular d1 × d2.
//
// Parallel or antiparallel inputs have no such axis. For d1 == d2 the result
// is the identity; for d1 == -d2 it is a point reflection, not a rotation.
// Callers that can see colinear inputs must handle them, as SetRotateGimbal does.
func (m *Transform) SetRotateBetween(d1, d2 Direction) *Transform {
	axis := d1.Cross(d2)
	sinTheta := axis.Norm()
	cosTheta := d1.Dot(d2)
	setElements(m, axis.X, axis.Y, axis.Z, sinTheta, cosTheta)
	return m
}

// SetRotateGimbal overwrites m with a rotation taking d1 onto d2 through
// three gimbal-style turns, so that a camera looking along d1 ends up looking
// along d2 without rolling about its view axis:
//
//  1. d1 onto its projection on the xz plane (about the local horizontal axis),
//  2. that projection onto d2's projection (about the vertical axis),
//  3. d2's projection onto d2 (about the local horizontal axis).
//
// A projection that vanishes (a vertical direction) is replaced by (0, 0, -1).
// When both vanish the three turns cancel and m is the identity.
func (m *Transform) SetRotateGimbal(d1, d2 Direction) *Transform {
	pr1 := horizontal(d1)
	pr2 := horizontal(d2)

	var m1, m3 Transform
	m1.SetRotateBetween(d1, pr1)
	m3.SetRotateBetween(pr2, d2)

	m2 := Identity()
	if pr1.Dot(pr2) == -1 {
		m2.RotateY(math.Pi)
	} else {
		m2.SetRotateBetween(pr1, pr2)
	}

	*m = m1.Mul(m2).Mul(m3)
	return m
}

// horizontal returns the normalized projection of d onto the xz plane, or
// (0, 0, -1) when that projection is empty.
func horizontal(d Direction) Direction {
	pr := Direction{d.x, 0, d.z}
	if pr.Len() == 0 {
		return Direction{0, 0, -1}
	}
	pr.Norm()
	return pr
}
