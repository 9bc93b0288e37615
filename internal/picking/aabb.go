package picking

import "github.com/Faultbox/vecxform/pkg/math"

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Position
	Max math.Position
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b math.Position) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Position {
	return b.Min.Lerp(b.Max, 0.5)
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p math.Position) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]math.Position {
	var c [8]math.Position
	for i := range c {
		c[i] = b.Min
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// Transform returns the box enclosing b after mapping it by m under the
// row-vector convention.
func (b AABB) Transform(m math.Transform) AABB {
	corners := b.Corners()
	first := corners[0].MulTransform(m)
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := c.MulTransform(m)
		out.Min.X = min(out.Min.X, p.X)
		out.Min.Y = min(out.Min.Y, p.Y)
		out.Min.Z = min(out.Min.Z, p.Z)
		out.Max.X = max(out.Max.X, p.X)
		out.Max.Y = max(out.Max.Y, p.Y)
		out.Max.Z = max(out.Max.Z, p.Z)
	}
	return out
}
