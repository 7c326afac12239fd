package hostfuncs

import (
	"context"
	"math"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/entities"
)

// Memory is the slice of the guest's linear memory API the host functions need.
// wazero's api.Memory satisfies it.
type Memory interface {
	Size() uint32
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
}

// Guest is the plugin instance making a host call.
type Guest interface {
	// Name identifies the plugin in logs.
	Name() string
	Memory() Memory
	// Malloc allocates size bytes through the plugin's _malloc export.
	Malloc(ctx context.Context, size uint32) (uint32, error)
}

// Stack holds a call's parameters on entry and its results on return,
// using the WebAssembly core encoding: i32 and f32 in the low 32 bits.
type Stack []uint64

// I32 decodes parameter i as an i32.
func (s Stack) I32(i int) int32 {
	return int32(uint32(s[i])) //nolint:gosec // G115: low 32 bits carry the value
}

// F32 decodes parameter i as an f32.
func (s Stack) F32(i int) float32 {
	return math.Float32frombits(uint32(s[i])) //nolint:gosec // G115: low 32 bits carry the value
}

// Handle decodes parameter i as a handle.
func (s Stack) Handle(i int) entities.Handle {
	return entities.Handle(s.I32(i))
}

// Ptr decodes parameter i as a guest pointer.
func (s Stack) Ptr(i int) uint32 {
	return uint32(s[i]) //nolint:gosec // G115: wasm32 pointers are 32-bit
}

// SetI32 encodes result i as an i32.
func (s Stack) SetI32(i int, v int32) {
	s[i] = uint64(uint32(v)) //nolint:gosec // G115: two's complement round trip
}

// SetF32 encodes result i as an f32.
func (s Stack) SetF32(i int, v float32) {
	s[i] = uint64(math.Float32bits(v))
}

// SetHandle encodes result i as a handle.
func (s Stack) SetHandle(i int, h entities.Handle) {
	s.SetI32(i, int32(h))
}

// Handler implements one host function. It reads parameters from stack and
// writes results back starting at index 0. A returned error traps the guest.
type Handler func(ctx context.Context, guest Guest, stack Stack) error

// Function is a named host function with its WebAssembly signature.
type Function struct {
	Handler Handler
	Name    string
	Params  []catalog.ValueType
	Results []catalog.ValueType
}

// fromEntryPoint binds h to the name and signature of ep.
func fromEntryPoint(ep catalog.EntryPoint, h Handler) Function {
	return Function{Name: ep.Name, Params: ep.Params, Results: ep.Results, Handler: h}
}

func boolI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
