package turing

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/internal/binding"
)

// value is the shared implementation of the host's value kinds.
type value[K kindTag] struct {
	handle entities.Handle
}

// Handle returns the host handle the wrapper refers to.
func (v value[K]) Handle() entities.Handle {
	return v.handle
}

// Kind returns the value's kind.
func (v value[K]) Kind() entities.Kind {
	return kindOf[K]()
}

// IsNull reports whether the wrapper refers to nothing.
func (v value[K]) IsNull() bool {
	return v.handle.IsNull()
}

func (v value[K]) get(a entities.Attr) float32 {
	return binding.Host().Attr(kindOf[K](), a, v.handle)
}

func (v value[K]) set(a entities.Attr, f float32) {
	binding.Host().SetAttr(kindOf[K](), a, v.handle, f)
}

// Vec2 is a host two-component vector.
type Vec2 struct{ value[vec2Kind] }

// Vec3 is a host three-component vector, used for positions.
type Vec3 struct{ value[vec3Kind] }

// Vec4 is a host four-component vector.
type Vec4 struct{ value[vec4Kind] }

// Quat is a host quaternion, used for orientations.
type Quat struct{ value[quatKind] }

// Color is a host RGBA color. Colors are read from objects; there is no
// host constructor for them.
type Color struct{ value[colorKind] }

// NewVec2 creates a vector on the host. Like every constructor, the value
// lives until it is passed to Drop.
func NewVec2(x, y float32) Vec2 {
	return Vec2{value[vec2Kind]{binding.Host().NewValue(entities.KindVec2, x, y)}}
}

// NewVec3 creates a three-component vector on the host.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{value[vec3Kind]{binding.Host().NewValue(entities.KindVec3, x, y, z)}}
}

// NewVec4 creates a four-component vector on the host.
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{value[vec4Kind]{binding.Host().NewValue(entities.KindVec4, x, y, z, w)}}
}

// NewQuat creates a quaternion from its components, w last.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{value[quatKind]{binding.Host().NewValue(entities.KindQuat, x, y, z, w)}}
}

func (v Vec2) X() float32     { return v.get(entities.AttrX) }
func (v Vec2) Y() float32     { return v.get(entities.AttrY) }
func (v Vec2) SetX(f float32) { v.set(entities.AttrX, f) }
func (v Vec2) SetY(f float32) { v.set(entities.AttrY, f) }

func (v Vec3) X() float32     { return v.get(entities.AttrX) }
func (v Vec3) Y() float32     { return v.get(entities.AttrY) }
func (v Vec3) Z() float32     { return v.get(entities.AttrZ) }
func (v Vec3) SetX(f float32) { v.set(entities.AttrX, f) }
func (v Vec3) SetY(f float32) { v.set(entities.AttrY, f) }
func (v Vec3) SetZ(f float32) { v.set(entities.AttrZ, f) }

func (v Vec4) X() float32     { return v.get(entities.AttrX) }
func (v Vec4) Y() float32     { return v.get(entities.AttrY) }
func (v Vec4) Z() float32     { return v.get(entities.AttrZ) }
func (v Vec4) W() float32     { return v.get(entities.AttrW) }
func (v Vec4) SetX(f float32) { v.set(entities.AttrX, f) }
func (v Vec4) SetY(f float32) { v.set(entities.AttrY, f) }
func (v Vec4) SetZ(f float32) { v.set(entities.AttrZ, f) }
func (v Vec4) SetW(f float32) { v.set(entities.AttrW, f) }

func (q Quat) X() float32     { return q.get(entities.AttrX) }
func (q Quat) Y() float32     { return q.get(entities.AttrY) }
func (q Quat) Z() float32     { return q.get(entities.AttrZ) }
func (q Quat) W() float32     { return q.get(entities.AttrW) }
func (q Quat) SetX(f float32) { q.set(entities.AttrX, f) }
func (q Quat) SetY(f float32) { q.set(entities.AttrY, f) }
func (q Quat) SetZ(f float32) { q.set(entities.AttrZ, f) }
func (q Quat) SetW(f float32) { q.set(entities.AttrW, f) }

func (c Color) R() float32     { return c.get(entities.AttrR) }
func (c Color) G() float32     { return c.get(entities.AttrG) }
func (c Color) B() float32     { return c.get(entities.AttrB) }
func (c Color) A() float32     { return c.get(entities.AttrA) }
func (c Color) SetR(f float32) { c.set(entities.AttrR, f) }
func (c Color) SetG(f float32) { c.set(entities.AttrG, f) }
func (c Color) SetB(f float32) { c.set(entities.AttrB, f) }
func (c Color) SetA(f float32) { c.set(entities.AttrA, f) }

// SetRGB sets the color channels in one call, leaving alpha unchanged.
func (c Color) SetRGB(r, g, b float32) {
	binding.Host().SetRGB(c.handle, r, g, b)
}

// SetRGBA sets all four channels in one call.
func (c Color) SetRGBA(r, g, b, a float32) {
	binding.Host().SetRGBA(c.handle, r, g, b, a)
}
