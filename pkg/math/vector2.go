package math

import "math"

// Vector2 is a 2D free vector.
type Vector2 struct {
	X, Y float64
}

// Set assigns both coordinates.
func (v *Vector2) Set(x, y float64) *Vector2 {
	v.X, v.Y = x, y
	return v
}

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Scale returns v * scalar.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Div returns v / s. Dividing by zero returns v unchanged.
func (v Vector2) Div(s float64) Vector2 {
	if s == 0 {
		return v
	}
	return Vector2{v.X / s, v.Y / s}
}

// Mul returns the coordinate-by-coordinate product.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// Dot returns the dot product.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// MinCoord returns the smallest absolute coordinate.
func (v Vector2) MinCoord() float64 {
	return math.Min(math.Abs(v.X), math.Abs(v.Y))
}

// MaxCoord returns the largest absolute coordinate.
func (v Vector2) MaxCoord() float64 {
	return math.Max(math.Abs(v.X), math.Abs(v.Y))
}

// Length returns the magnitude.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance to another point.
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Vector3 lifts v into 3D with z = 0.
func (v Vector2) Vector3() Vector3 {
	return Vector3{v.X, v.Y, 0}
}
