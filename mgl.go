package turing

import "github.com/go-gl/mathgl/mgl32"

// Conversions between host values and mgl32 types. Each From call creates
// a new host value; each Mgl call reads every component across the boundary.

// Vec2FromMgl creates a host vector from v.
func Vec2FromMgl(v mgl32.Vec2) Vec2 {
	return NewVec2(v[0], v[1])
}

// Mgl reads the vector into an mgl32.Vec2.
func (v Vec2) Mgl() mgl32.Vec2 {
	return mgl32.Vec2{v.X(), v.Y()}
}

// Vec3FromMgl creates a host vector from v.
func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return NewVec3(v[0], v[1], v[2])
}

// Mgl reads the vector into an mgl32.Vec3.
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Y(), v.Z()}
}

// Vec4FromMgl creates a host vector from v.
func Vec4FromMgl(v mgl32.Vec4) Vec4 {
	return NewVec4(v[0], v[1], v[2], v[3])
}

// Mgl reads the vector into an mgl32.Vec4.
func (v Vec4) Mgl() mgl32.Vec4 {
	return mgl32.Vec4{v.X(), v.Y(), v.Z(), v.W()}
}

// QuatFromMgl creates a host quaternion; mgl32 stores w apart from the vector part.
func QuatFromMgl(q mgl32.Quat) Quat {
	return NewQuat(q.V[0], q.V[1], q.V[2], q.W)
}

// Mgl reads the quaternion into an mgl32.Quat.
func (q Quat) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W(), V: mgl32.Vec3{q.X(), q.Y(), q.Z()}}
}

// Mgl returns the color as r, g, b, a.
func (c Color) Mgl() mgl32.Vec4 {
	return mgl32.Vec4{c.R(), c.G(), c.B(), c.A()}
}

// SetMgl writes all four channels of v, ordered r, g, b, a.
func (c Color) SetMgl(v mgl32.Vec4) {
	c.SetRGBA(v[0], v[1], v[2], v[3])
}
