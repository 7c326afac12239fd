// Package abi provides memory management for the WASM linear memory.
//
// The host hands strings to the plugin in buffers it obtains from the plugin's
// own _malloc export, and the plugin hands strings to the host as pinned
// NUL-terminated buffers. Both directions go through one Allocator so that every
// block is released exactly once by the side that owns it.
package abi

import (
	"bytes"
	"fmt"
	"sync"
)

// MaxTotalAllocations is the maximum total memory that can be allocated by the SDK.
// This prevents unbounded memory growth in WASM linear memory.
const MaxTotalAllocations = 64 * 1024 * 1024 // 64 MB

// Allocator tracks every block it hands out. It keeps a reference to each
// allocated slice so the Go GC cannot collect it, effectively pinning the
// memory until it is explicitly freed.
type Allocator struct {
	ptrs  map[uintptr][]byte // ptr -> slice reference
	total int                // bytes currently allocated
	limit int
	mu    sync.Mutex
}

// NewAllocator creates an allocator that refuses to hold more than limit bytes.
func NewAllocator(limit int) *Allocator {
	return &Allocator{
		ptrs:  make(map[uintptr][]byte),
		limit: limit,
	}
}

// Allocate reserves size bytes and returns the block's address.
// A zero or negative size returns 0.
// Panics if the allocation would exceed the allocator's limit.
func (a *Allocator) Allocate(size int) uintptr {
	if size <= 0 {
		return 0
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.total+size > a.limit {
		panic(fmt.Sprintf("abi: memory allocation limit exceeded (requested: %d bytes, current: %d bytes, limit: %d bytes)",
			size, a.total, a.limit))
	}

	buf := make([]byte, size)
	ptr := addressOf(buf)

	a.ptrs[ptr] = buf
	a.total += size
	return ptr
}

// Free releases the block at ptr. Untracked pointers are ignored, so a second
// free of the same block is a no-op only until ptr is handed out again:
// blocks are keyed by address, and the GC may place a later allocation at a
// freed block's address, which a stale free would then release. Callers must
// free each block exactly once. The accounting uses the tracked length, not
// the caller's size, so a mismatched size cannot corrupt the counter.
func (a *Allocator) Free(ptr uintptr, _ int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf, ok := a.ptrs[ptr]
	if !ok {
		return
	}
	delete(a.ptrs, ptr)
	a.total -= len(buf)
	if a.total < 0 {
		a.total = 0
	}
}

// Block returns the tracked slice at ptr.
func (a *Allocator) Block(ptr uintptr) ([]byte, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	buf, ok := a.ptrs[ptr]
	return buf, ok
}

// Stats returns the number of live blocks and the bytes they hold.
func (a *Allocator) Stats() (count, total int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.ptrs), a.total
}

// FreeAll releases every tracked block.
func (a *Allocator) FreeAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for ptr := range a.ptrs {
		delete(a.ptrs, ptr)
	}
	a.total = 0
}

// CString copies s into a new NUL-terminated block and returns its address.
// The host reads C strings, so s is cut at its first NUL byte.
// The caller releases the block with Free.
func (a *Allocator) CString(s string) uintptr {
	b := CStringBytes(s)
	ptr := a.Allocate(len(b))
	buf, _ := a.Block(ptr)
	copy(buf, b)
	return ptr
}

// TakeCString converts the NUL-terminated string held in the tracked block at
// ptr into a Go string and frees the block. It reports false when ptr is not a
// block of this allocator.
func (a *Allocator) TakeCString(ptr uintptr) (string, bool) {
	buf, ok := a.Block(ptr)
	if !ok {
		return "", false
	}
	s := string(TrimCString(buf))
	a.Free(ptr, len(buf))
	return s, true
}

// CStringBytes returns s as NUL-terminated bytes, cut at the first NUL in s.
func CStringBytes(s string) []byte {
	if i := bytes.IndexByte([]byte(s), 0); i >= 0 {
		s = s[:i]
	}
	out := make([]byte, len(s)+1)
	copy(out, s)
	return out
}

// TrimCString returns b up to, not including, its first NUL byte.
func TrimCString(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
