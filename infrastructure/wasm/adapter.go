//go:build wasip1

package wasm

import (
	"fmt"

	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/internal/abi"
)

// Compile-time interface compliance check
var _ ports.Host = (*HostAdapter)(nil)

// attrKey selects a value accessor in the generated dispatch tables.
type attrKey struct {
	kind entities.Kind
	attr entities.Attr
}

// HostAdapter forwards every port call to the matching host import.
// It holds no state; all objects live on the host.
type HostAdapter struct{}

// NewHostAdapter creates the adapter.
func NewHostAdapter() *HostAdapter {
	return &HostAdapter{}
}

// lookup returns the import declared for key, panicking for undeclared
// combinations the typed wrappers never produce.
func lookup[K comparable, F any](table map[K]F, key K, op string) F {
	f, ok := table[key]
	if !ok {
		panic(fmt.Sprintf("wasm: %s is not declared for %v", op, key))
	}
	return f
}

func (HostAdapter) Create(kind entities.Kind, beat float32) entities.Handle {
	return entities.Handle(lookup(createImports, kind, "create")(beat))
}

func (HostAdapter) Add(kind entities.Kind, obj entities.Handle) {
	lookup(addImports, kind, "beatmap add")(int32(obj))
}

func (HostAdapter) Remove(kind entities.Kind, obj entities.Handle) {
	lookup(removeImports, kind, "beatmap remove")(int32(obj))
}

func (HostAdapter) AtBeat(kind entities.Kind, beat float32) entities.Handle {
	return entities.Handle(lookup(atBeatImports, kind, "beatmap get at beat")(beat))
}

func (HostAdapter) Position(kind entities.Kind, obj entities.Handle) entities.Handle {
	return entities.Handle(lookup(getPositionImports, kind, "get position")(int32(obj)))
}

func (HostAdapter) SetPosition(kind entities.Kind, obj, vec3 entities.Handle) {
	lookup(setPositionImports, kind, "set position")(int32(obj), int32(vec3))
}

func (HostAdapter) Orientation(kind entities.Kind, obj entities.Handle) entities.Handle {
	return entities.Handle(lookup(getOrientationImports, kind, "get orientation")(int32(obj)))
}

func (HostAdapter) SetOrientation(kind entities.Kind, obj, quat entities.Handle) {
	lookup(setOrientationImports, kind, "set orientation")(int32(obj), int32(quat))
}

func (HostAdapter) Color(kind entities.Kind, obj entities.Handle) entities.Handle {
	return entities.Handle(lookup(getColorImports, kind, "get color")(int32(obj)))
}

func (HostAdapter) SetColor(kind entities.Kind, obj, color entities.Handle) {
	lookup(setColorImports, kind, "set color")(int32(obj), int32(color))
}

func (HostAdapter) NewValue(kind entities.Kind, c ...float32) entities.Handle {
	switch {
	case kind == entities.KindVec2 && len(c) == 2:
		return entities.Handle(host_vec2_from_xy(c[0], c[1]))
	case kind == entities.KindVec3 && len(c) == 3:
		return entities.Handle(host_vec3_from_xyz(c[0], c[1], c[2]))
	case kind == entities.KindVec4 && len(c) == 4:
		return entities.Handle(host_vec4_from_xyzw(c[0], c[1], c[2], c[3]))
	case kind == entities.KindQuat && len(c) == 4:
		return entities.Handle(host_quat_from_xyzw(c[0], c[1], c[2], c[3]))
	}
	panic(fmt.Sprintf("wasm: no constructor for %s from %d components", kind, len(c)))
}

func (HostAdapter) Attr(kind entities.Kind, attr entities.Attr, value entities.Handle) float32 {
	return lookup(getAttrImports, attrKey{kind, attr}, "get attribute")(int32(value))
}

func (HostAdapter) SetAttr(kind entities.Kind, attr entities.Attr, value entities.Handle, v float32) {
	lookup(setAttrImports, attrKey{kind, attr}, "set attribute")(int32(value), v)
}

func (HostAdapter) SetRGB(color entities.Handle, r, g, b float32) {
	host_color_set_rgb(int32(color), r, g, b)
}

func (HostAdapter) SetRGBA(color entities.Handle, r, g, b, a float32) {
	host_color_set_rgba(int32(color), r, g, b, a)
}

func (HostAdapter) LeftSaber() entities.Handle {
	return entities.Handle(host_get_left_saber())
}

func (HostAdapter) RightSaber() entities.Handle {
	return entities.Handle(host_get_right_saber())
}

func (HostAdapter) Log(message string) {
	ptr, release := abi.CString(message)
	defer release()
	host_log(int32(ptr)) //nolint:gosec // G115: wasm32 addresses fit in 32 bits
}

func (HostAdapter) DropReference(obj entities.Handle) {
	host_drop_reference(int32(obj))
}

// withKey passes key to fn as a C string that lives for the duration of the call.
func withKey(key string, fn func(ptr int32)) {
	ptr, release := abi.CString(key)
	defer release()
	fn(int32(ptr)) //nolint:gosec // G115: wasm32 addresses fit in 32 bits
}

func (HostAdapter) Contains(kind entities.StoreKind, key string) bool {
	contains := lookup(containsImports, kind, "persistent contains")
	var found bool
	withKey(key, func(ptr int32) { found = contains(ptr) != 0 })
	return found
}

func (HostAdapter) AccessInt(key string) int32 {
	var v int32
	withKey(key, func(ptr int32) { v = host_data_access_persistent_i32(ptr) })
	return v
}

func (HostAdapter) AccessFloat(key string) float32 {
	var v float32
	withKey(key, func(ptr int32) { v = host_data_access_persistent_f32(ptr) })
	return v
}

// AccessString takes ownership of the host-allocated buffer holding the value.
func (HostAdapter) AccessString(key string) string {
	var v string
	withKey(key, func(ptr int32) {
		v = abi.TakeCString(uint32(host_data_access_persistent_str(ptr))) //nolint:gosec // G115: wasm32 addresses fit in 32 bits
	})
	return v
}

func (HostAdapter) StoreInt(key string, v int32) {
	withKey(key, func(ptr int32) { host_data_store_persistent_i32(ptr, v) })
}

func (HostAdapter) StoreFloat(key string, v float32) {
	withKey(key, func(ptr int32) { host_data_store_persistent_f32(ptr, v) })
}

func (HostAdapter) StoreString(key, v string) {
	withKey(key, func(keyPtr int32) {
		withKey(v, func(valuePtr int32) { host_data_store_persistent_str(keyPtr, valuePtr) })
	})
}

func (HostAdapter) RemoveValue(kind entities.StoreKind, key string) {
	remove := lookup(removeStoreImports, kind, "persistent remove")
	withKey(key, func(ptr int32) { remove(ptr) })
}
