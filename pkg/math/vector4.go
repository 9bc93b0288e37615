package math

// Vector4 is a homogeneous 4-vector. W is 0 for free vectors and directions
// and 1 for positions.
type Vector4 struct {
	X, Y, Z, W float64
}

// Set assigns all four coordinates.
func (v *Vector4) Set(x, y, z, w float64) *Vector4 {
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// Dot returns the 4D dot product.
func (v Vector4) Dot(other Vector4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Stdz divides through by W in place when W is nonzero, then sets W to
// exactly 1. W is forced to 1 even when it was 0. The standardized value is
// also returned.
func (v *Vector4) Stdz() Vector4 {
	if v.W != 0 {
		v.X /= v.W
		v.Y /= v.W
		v.Z /= v.W
	}
	v.W = 1
	return *v
}

// Vector3 drops the homogeneous coordinate.
func (v Vector4) Vector3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// Position applies the perspective divide. With W == 0 the coordinates are
// returned as they are.
func (v Vector4) Position() Position {
	if v.W != 0 {
		return Position{v.X / v.W, v.Y / v.W, v.Z / v.W}
	}
	return Position{v.X, v.Y, v.Z}
}

// Direction drops the homogeneous coordinate and normalizes.
func (v Vector4) Direction() Direction {
	return NewDirection(v.X, v.Y, v.Z)
}

// Homogeneous returns v as a free vector (W = 0).
func (v Vector3) Homogeneous() Vector4 {
	return Vector4{v.X, v.Y, v.Z, 0}
}

// Homogeneous returns p as a point (W = 1).
func (p Position) Homogeneous() Vector4 {
	return Vector4{p.X, p.Y, p.Z, 1}
}

// Homogeneous returns d as a direction (W = 0).
func (d Direction) Homogeneous() Vector4 {
	return Vector4{d.x, d.y, d.z, 0}
}

// MulTransform returns the row vector v times mx.
func (v Vector4) MulTransform(mx Transform) Vector4 {
	return Vector4{
		v.Dot(mx.Col(0)),
		v.Dot(mx.Col(1)),
		v.Dot(mx.Col(2)),
		v.Dot(mx.Col(3)),
	}
}

// MulTransform returns the row vector v times mx, treating v as a free vector.
func (v Vector3) MulTransform(mx Transform) Vector3 {
	return v.Homogeneous().MulTransform(mx).Vector3()
}

// MulTransform transforms p as a row vector (W = 1) and divides back through W.
func (p Position) MulTransform(mx Transform) Position {
	return p.Homogeneous().MulTransform(mx).Position()
}

// MulTransform transforms d as a row vector (W = 0) and renormalizes.
func (d Direction) MulTransform(mx Transform) Direction {
	return d.Homogeneous().MulTransform(mx).Direction()
}
