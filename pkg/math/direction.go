package math

import "math"

// Direction is a unit vector used for orientation-only quantities such as
// surface normals and rotation axes. Its length is always 1, or exactly 0 for
// the null direction (which is also the zero value).
//
// The coordinates are unexported so that every change goes through a
// renormalizing constructor or mutator.
type Direction struct {
	x, y, z float64
}

// Coordinate axes.
var (
	XAxis = Direction{1, 0, 0}
	YAxis = Direction{0, 1, 0}
	ZAxis = Direction{0, 0, 1}
)

// NewDirection returns (x, y, z) / |(x, y, z)|.
func NewDirection(x, y, z float64) Direction {
	d := Direction{x, y, z}
	d.Norm()
	return d
}

// X returns the x coordinate.
func (d Direction) X() float64 { return d.x }

// Y returns the y coordinate.
func (d Direction) Y() float64 { return d.y }

// Z returns the z coordinate.
func (d Direction) Z() float64 { return d.z }

// IsNull reports whether d is the null direction.
func (d Direction) IsNull() bool {
	return d.x == 0 && d.y == 0 && d.z == 0
}

// Set assigns the coordinates and normalizes.
func (d *Direction) Set(x, y, z float64) *Direction {
	d.x, d.y, d.z = x, y, z
	d.Norm()
	return d
}

// Norm coerces d to unit length and returns its former length.
// The null direction stays null.
func (d *Direction) Norm() float64 {
	l := d.Len()
	if l != 0 && l != 1 {
		d.x /= l
		d.y /= l
		d.z /= l
	}
	return l
}

// Len returns the length: 1, or 0 for the null direction.
func (d Direction) Len() float64 {
	return math.Sqrt(d.x*d.x + d.y*d.y + d.z*d.z)
}

// Vector returns d as a free vector.
func (d Direction) Vector() Vector3 {
	return Vector3{d.x, d.y, d.z}
}

// Add returns the normalized sum of d and other. This is the average
// direction of the two, not vector addition.
func (d Direction) Add(other Direction) Direction {
	return NewDirection(d.x+other.x, d.y+other.y, d.z+other.z)
}

// AddAssign sets d to the normalized sum of d and other.
func (d *Direction) AddAssign(other Direction) *Direction {
	return d.Set(d.x+other.x, d.y+other.y, d.z+other.z)
}

// Sub returns the normalized difference of d and other.
func (d Direction) Sub(other Direction) Direction {
	return NewDirection(d.x-other.x, d.y-other.y, d.z-other.z)
}

// SubAssign sets d to the normalized difference of d and other.
func (d *Direction) SubAssign(other Direction) *Direction {
	return d.Set(d.x-other.x, d.y-other.y, d.z-other.z)
}

// Neg returns the reverse direction.
func (d Direction) Neg() Direction {
	return Direction{-d.x, -d.y, -d.z}
}

// Scale returns the displacement of distance s along d.
func (d Direction) Scale(s float64) Vector3 {
	return Vector3{d.x * s, d.y * s, d.z * s}
}

// Div returns d scaled by 1/s. Dividing by zero returns d's coordinates unchanged.
func (d Direction) Div(s float64) Vector3 {
	return d.Vector().Div(s)
}

// Cross returns d × other. The result is generally not unit length.
func (d Direction) Cross(other Direction) Vector3 {
	return Vector3{
		d.y*other.z - d.z*other.y,
		d.z*other.x - d.x*other.z,
		d.x*other.y - d.y*other.x,
	}
}

// Dot returns the cosine of the angle between d and other.
func (d Direction) Dot(other Direction) float64 {
	return d.x*other.x + d.y*other.y + d.z*other.z
}

// DotVector returns the projection of v on d.
func (d Direction) DotVector(v Vector3) float64 {
	return d.x*v.X + d.y*v.Y + d.z*v.Z
}

// MinCoord returns the smallest absolute coordinate.
func (d Direction) MinCoord() float64 {
	return minCoord(d.x, d.y, d.z)
}

// MaxCoord returns the largest absolute coordinate.
func (d Direction) MaxCoord() float64 {
	return maxCoord(d.x, d.y, d.z)
}

// MajorAxis returns the axis of largest magnitude (ties: x, then y, then z).
func (d Direction) MajorAxis() Direction {
	return majorAxis(d.x, d.y, d.z)
}

// MinorAxis returns the axis of smallest magnitude (ties: x, then y, then z).
func (d Direction) MinorAxis() Direction {
	return minorAxis(d.x, d.y, d.z)
}

// Angle returns the unsigned angle in radians, in [0, π], between d and other,
// computed as atan2(|d × other|, d · other).
func (d Direction) Angle(other Direction) float64 {
	return math.Atan2(d.Cross(other).Len(), d.Dot(other))
}
