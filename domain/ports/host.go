// Package ports declares the boundaries between the SDK and its adapters.
package ports

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
)

// Host is the full surface of the game host as seen from a plugin.
// Every method is a single synchronous call across the module boundary.
// Implementations: the WASM import adapter and turingtest.Host.
type Host interface {
	ObjectHost
	ValueHost
	SaberHost
	LogHost
	StoreHost
	ReferenceHost
}

// ObjectHost covers the lifecycle, spatial and appearance groups of every
// gameplay object kind. The kind selects the underlying entry point.
type ObjectHost interface {
	// Create spawns a new object at the given beat; it is not yet in the beatmap.
	Create(kind entities.Kind, beat float32) entities.Handle
	// Add places an object into the beatmap.
	Add(kind entities.Kind, obj entities.Handle)
	// Remove takes an object out of the beatmap.
	Remove(kind entities.Kind, obj entities.Handle)
	// AtBeat looks up the beatmap object of the kind at a beat, or NullHandle.
	AtBeat(kind entities.Kind, beat float32) entities.Handle

	Position(kind entities.Kind, obj entities.Handle) entities.Handle
	SetPosition(kind entities.Kind, obj, vec3 entities.Handle)
	Orientation(kind entities.Kind, obj entities.Handle) entities.Handle
	SetOrientation(kind entities.Kind, obj, quat entities.Handle)
	// Color also serves sabers.
	Color(kind entities.Kind, obj entities.Handle) entities.Handle
	SetColor(kind entities.Kind, obj, color entities.Handle)
}

// ValueHost covers vectors, quaternions and colors.
type ValueHost interface {
	// NewValue builds a vector or quaternion from its components in
	// declaration order.
	NewValue(kind entities.Kind, components ...float32) entities.Handle
	Attr(kind entities.Kind, attr entities.Attr, value entities.Handle) float32
	SetAttr(kind entities.Kind, attr entities.Attr, value entities.Handle, v float32)
	SetRGB(color entities.Handle, r, g, b float32)
	SetRGBA(color entities.Handle, r, g, b, a float32)
}

// SaberHost returns the two saber objects.
type SaberHost interface {
	LeftSaber() entities.Handle
	RightSaber() entities.Handle
}

// LogHost is the single logging entry point.
type LogHost interface {
	Log(message string)
}

// StoreHost is the host's persistent key/value storage.
// Access* may only be called after Contains reported true for the same key.
type StoreHost interface {
	Contains(kind entities.StoreKind, key string) bool
	AccessInt(key string) int32
	AccessFloat(key string) float32
	AccessString(key string) string
	StoreInt(key string, v int32)
	StoreFloat(key string, v float32)
	StoreString(key, v string)
	RemoveValue(kind entities.StoreKind, key string)
}

// ReferenceHost releases host-managed objects.
type ReferenceHost interface {
	DropReference(obj entities.Handle)
}
