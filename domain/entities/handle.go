// Package entities holds the value types shared by the guest SDK and the reference host.
package entities

import "fmt"

// Handle is an opaque reference to a host-owned object.
// The guest never interprets its bits; it only copies and compares handles.
type Handle int32

// NullHandle is returned by the host when no object matches a lookup.
const NullHandle Handle = 0

// IsNull reports whether h refers to no object.
func (h Handle) IsNull() bool {
	return h == NullHandle
}

// String renders the handle for logs and tool output.
func (h Handle) String() string {
	if h.IsNull() {
		return "handle(null)"
	}
	return fmt.Sprintf("handle(%#x)", int32(h))
}
