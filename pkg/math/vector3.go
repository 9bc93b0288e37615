// Package math provides vector and transform types for 3D graphics geometry.
package math

import "math"

// Epsilon is the tolerance used when comparing computed scalars.
const Epsilon = 1e-7

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Vector3 is a 3D free vector: a displacement with no fixed location.
type Vector3 struct {
	X, Y, Z float64
}

// Set assigns all three coordinates.
func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Len returns the magnitude.
func (v Vector3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Norm scales v to unit length in place and returns the former length.
// A zero vector stays zero.
func (v *Vector3) Norm() float64 {
	l := v.Len()
	*v = v.Div(l)
	return l
}

// Position reinterprets v as a point.
func (v Vector3) Position() Position {
	return Position{v.X, v.Y, v.Z}
}

// Direction returns v normalized as a Direction.
func (v Vector3) Direction() Direction {
	return NewDirection(v.X, v.Y, v.Z)
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Scale returns v * scalar.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s. Dividing by zero returns v unchanged.
func (v Vector3) Div(s float64) Vector3 {
	if s == 0 {
		return v
	}
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Mul returns the coordinate-by-coordinate product.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Cross returns the right-handed cross product v × other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Dot returns the dot product.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// DotDirection returns the projection of v on d.
func (v Vector3) DotDirection(d Direction) float64 {
	return v.X*d.x + v.Y*d.y + v.Z*d.z
}

// MinCoord returns the smallest absolute coordinate.
func (v Vector3) MinCoord() float64 {
	return minCoord(v.X, v.Y, v.Z)
}

// MaxCoord returns the largest absolute coordinate.
func (v Vector3) MaxCoord() float64 {
	return maxCoord(v.X, v.Y, v.Z)
}

// SumCoord returns x + y + z.
func (v Vector3) SumCoord() float64 {
	return v.X + v.Y + v.Z
}

// MajorAxis returns the axis of largest magnitude (ties: x, then y, then z).
func (v Vector3) MajorAxis() Direction {
	return majorAxis(v.X, v.Y, v.Z)
}

// MinorAxis returns the axis of smallest magnitude (ties: x, then y, then z).
func (v Vector3) MinorAxis() Direction {
	return minorAxis(v.X, v.Y, v.Z)
}

// Det returns the determinant of the 3x3 matrix whose columns are v1, v2 and v3.
//
//	| v1.X v2.X v3.X |
//	| v1.Y v2.Y v3.Y |
//	| v1.Z v2.Z v3.Z |
func Det(v1, v2, v3 Vector3) float64 {
	return v1.X*(v2.Y*v3.Z-v3.Y*v2.Z) -
		v2.X*(v1.Y*v3.Z-v3.Y*v1.Z) +
		v3.X*(v1.Y*v2.Z-v2.Y*v1.Z)
}

func minCoord(x, y, z float64) float64 {
	return math.Min(math.Abs(x), math.Min(math.Abs(y), math.Abs(z)))
}

func maxCoord(x, y, z float64) float64 {
	return math.Max(math.Abs(x), math.Max(math.Abs(y), math.Abs(z)))
}

func majorAxis(x, y, z float64) Direction {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	if ax >= ay {
		if ax >= az {
			return XAxis
		}
		return ZAxis
	}
	if ay >= az {
		return YAxis
	}
	return ZAxis
}

func minorAxis(x, y, z float64) Direction {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	if ax <= ay {
		if ax <= az {
			return XAxis
		}
		return ZAxis
	}
	if ay <= az {
		return YAxis
	}
	return ZAxis
}
