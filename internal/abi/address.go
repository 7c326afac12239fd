package abi

import "unsafe"

// addressOf returns the address of buf's first byte.
func addressOf(buf []byte) uintptr {
	//nolint:gosec // G103: the slice stays pinned in the allocator while the address is in use
	return uintptr(unsafe.Pointer(&buf[0]))
}
