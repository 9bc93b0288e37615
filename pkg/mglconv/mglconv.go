// Package mglconv converts between vecxform math types and go-gl/mathgl.
//
// mathgl uses column vectors and stores matrices column-major. A Transform
// uses row vectors and is stored row-major, so the two layouts coincide:
// flattening a Transform row by row yields the mathgl matrix of the same
// mapping, with the translation in elements 12..14.
package mglconv

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/vecxform/pkg/math"
)

// Mat4 returns the mgl64 matrix that maps column vectors the way t maps row vectors.
func Mat4(t math.Transform) mgl64.Mat4 {
	var m mgl64.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i*4+j] = t[i][j]
		}
	}
	return m
}

// FromMat4 is the inverse of Mat4.
func FromMat4(m mgl64.Mat4) math.Transform {
	var t math.Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i][j] = m[i*4+j]
		}
	}
	return t
}

// Mat4f returns t as an mgl32 matrix, ready for gl.UniformMatrix4fv with
// transpose set to false.
func Mat4f(t math.Transform) mgl32.Mat4 {
	var m mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i*4+j] = float32(t[i][j])
		}
	}
	return m
}

// FromMat4f widens an mgl32 matrix to a Transform.
func FromMat4f(m mgl32.Mat4) math.Transform {
	var t math.Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i][j] = float64(m[i*4+j])
		}
	}
	return t
}

// Vec3 converts v to an mgl64 vector.
func Vec3(v math.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromVec3 is the inverse of Vec3.
func FromVec3(v mgl64.Vec3) math.Vector3 {
	return math.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// PositionVec4 returns p as a homogeneous point (w = 1).
func PositionVec4(p math.Position) mgl64.Vec4 {
	return mgl64.Vec4{p.X, p.Y, p.Z, 1}
}

// DirectionVec4 returns d as a homogeneous direction (w = 0).
func DirectionVec4(d math.Direction) mgl64.Vec4 {
	return mgl64.Vec4{d.X(), d.Y(), d.Z(), 0}
}

// Vec4 converts v, keeping w as is.
func Vec4(v math.Vector4) mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

// FromVec4 is the inverse of Vec4.
func FromVec4(v mgl64.Vec4) math.Vector4 {
	return math.Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Quat converts q. Both types keep the scalar part separately, so no
// reordering is needed.
func Quat(q math.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// FromQuat is the inverse of Quat.
func FromQuat(q mgl64.Quat) math.Quat {
	return math.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
