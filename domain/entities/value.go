package entities

import "fmt"

// StoredValue is one typed entry of the persistent store.
type StoredValue struct {
	Str   string    `json:"str,omitempty" yaml:"str,omitempty"`
	Int   int32     `json:"int,omitempty" yaml:"int,omitempty"`
	Float float32   `json:"float,omitempty" yaml:"float,omitempty"`
	Kind  StoreKind `json:"kind" yaml:"kind"`
}

// IntValue wraps an int32 for the persistent store.
func IntValue(v int32) StoredValue {
	return StoredValue{Kind: StoreI32, Int: v}
}

// FloatValue wraps a float32 for the persistent store.
func FloatValue(v float32) StoredValue {
	return StoredValue{Kind: StoreF32, Float: v}
}

// StringValue wraps a string for the persistent store.
func StringValue(v string) StoredValue {
	return StoredValue{Kind: StoreStr, Str: v}
}

func (v StoredValue) String() string {
	switch v.Kind {
	case StoreI32:
		return fmt.Sprintf("%d", v.Int)
	case StoreF32:
		return fmt.Sprintf("%g", v.Float)
	default:
		return v.Str
	}
}
