package hostfuncs

import (
	"bytes"
	"context"

	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
)

// DefaultMaxStringSize bounds how far ReadCString scans for a terminator.
const DefaultMaxStringSize = 1 << 20

// ReadCString copies the NUL-terminated string at ptr out of guest memory.
// It fails when ptr is outside memory or no terminator appears within limit bytes.
func ReadCString(mem Memory, ptr, limit uint32) (string, error) {
	size := mem.Size()
	if ptr == 0 || ptr >= size {
		return "", &hosterrors.MemoryError{Op: "read c string", Ptr: ptr, Err: hosterrors.ErrOutOfBounds}
	}

	window := size - ptr
	if limit < window {
		window = limit + 1
	}
	buf, ok := mem.Read(ptr, window)
	if !ok {
		return "", &hosterrors.MemoryError{Op: "read c string", Ptr: ptr, Length: window, Err: hosterrors.ErrOutOfBounds}
	}
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		return "", &hosterrors.MemoryError{Op: "read c string", Ptr: ptr, Length: window, Err: hosterrors.ErrOutOfBounds}
	}
	return string(buf[:n]), nil
}

// WriteCString copies s into a block obtained from the guest's _malloc and
// returns its address. Ownership passes to the guest. An interior NUL
// truncates s, as the guest reads only up to the first terminator.
func WriteCString(ctx context.Context, guest Guest, s string) (uint32, error) {
	if i := bytes.IndexByte([]byte(s), 0); i >= 0 {
		s = s[:i]
	}
	data := append([]byte(s), 0)
	length := uint32(len(data)) //nolint:gosec // G115: bounded by DefaultMaxStringSize in practice

	ptr, err := guest.Malloc(ctx, length)
	if err != nil {
		return 0, err
	}
	if ptr == 0 || !guest.Memory().Write(ptr, data) {
		return 0, &hosterrors.MemoryError{Op: "write c string", Ptr: ptr, Length: length, Err: hosterrors.ErrOutOfBounds}
	}
	return ptr, nil
}
