package math

// Position is a point in space. Positions can be displaced by a Vector3 and
// subtracted from each other, but never added together.
type Position struct {
	X, Y, Z float64
}

// Origin is the position (0, 0, 0).
var Origin = Position{}

// Set assigns all three coordinates.
func (p *Position) Set(x, y, z float64) *Position {
	p.X, p.Y, p.Z = x, y, z
	return p
}

// Vector returns the displacement from the origin to p.
func (p Position) Vector() Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}

// Add returns p displaced by v.
func (p Position) Add(v Vector3) Position {
	return Position{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns p displaced by -v.
func (p Position) Sub(v Vector3) Position {
	return Position{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Diff returns the displacement p - other.
func (p Position) Diff(other Position) Vector3 {
	return Vector3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DotDirection returns the projection of p on d.
func (p Position) DotDirection(d Direction) float64 {
	return p.X*d.x + p.Y*d.y + p.Z*d.z
}

// Scale returns p * s.
func (p Position) Scale(s float64) Position {
	return Position{p.X * s, p.Y * s, p.Z * s}
}

// Div returns p / s. Dividing by zero returns p unchanged.
func (p Position) Div(s float64) Position {
	if s == 0 {
		return p
	}
	return Position{p.X / s, p.Y / s, p.Z / s}
}

// Distance returns the distance between two positions.
func (p Position) Distance(other Position) float64 {
	return p.Diff(other).Len()
}

// Lerp returns the position a fraction t of the way from p to other.
func (p Position) Lerp(other Position, t float64) Position {
	return p.Add(other.Diff(p).Scale(t))
}

// MinCoord returns the smallest absolute coordinate.
func (p Position) MinCoord() float64 {
	return minCoord(p.X, p.Y, p.Z)
}

// MaxCoord returns the largest absolute coordinate.
func (p Position) MaxCoord() float64 {
	return maxCoord(p.X, p.Y, p.Z)
}

// MajorAxis returns the axis of largest magnitude (ties: x, then y, then z).
func (p Position) MajorAxis() Direction {
	return majorAxis(p.X, p.Y, p.Z)
}

// MinorAxis returns the axis of smallest magnitude (ties: x, then y, then z).
func (p Position) MinorAxis() Direction {
	return minorAxis(p.X, p.Y, p.Z)
}
