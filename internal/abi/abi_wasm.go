//go:build wasip1

package abi

import (
	"unsafe"
)

// allocator backs the _malloc/_free exports and every string the SDK passes
// to the host.
var allocator = NewAllocator(MaxTotalAllocations)

// malloc reserves memory in the WASM linear memory for the host.
// The host uses it to hand back buffers such as persistent string values.
//
//go:wasmexport _malloc
func malloc(size int32) int32 {
	return int32(allocator.Allocate(int(size))) //nolint:gosec // G115: wasm32 addresses fit in 32 bits
}

// free releases a block obtained from _malloc.
//
//go:wasmexport _free
func free(ptr int32, size int32) {
	allocator.Free(uintptr(uint32(ptr)), int(size))
}

// CString passes s to the host as a pinned NUL-terminated buffer.
// Call release once the host call has returned.
func CString(s string) (ptr uint32, release func()) {
	p := allocator.CString(s)
	return uint32(p), func() { allocator.Free(p, 0) } //nolint:gosec // G115: wasm32 addresses fit in 32 bits
}

// TakeCString takes ownership of a NUL-terminated buffer the host returned,
// converts it to a Go string and releases the buffer.
func TakeCString(ptr uint32) string {
	if ptr == 0 {
		return ""
	}
	if s, ok := allocator.TakeCString(uintptr(ptr)); ok {
		return s
	}
	// Not one of our blocks: read in place and leave it to the host.
	return readCStringAt(ptr)
}

// readCStringAt scans linear memory from ptr up to the first NUL byte.
func readCStringAt(ptr uint32) string {
	n := 0
	for {
		//nolint:gosec // G103: valid unsafe.Pointer use for WASM linear memory access
		b := *(*byte)(unsafe.Pointer(uintptr(ptr) + uintptr(n)))
		if b == 0 {
			break
		}
		n++
	}
	//nolint:gosec // G103: valid unsafe.Pointer use for WASM linear memory access
	return string(unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), n))
}

// Stats reports the live blocks held by the SDK.
func Stats() (count, total int) {
	return allocator.Stats()
}

// FreeAllTracked frees all memory currently tracked by the SDK.
func FreeAllTracked() {
	allocator.FreeAll()
}
