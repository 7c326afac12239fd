// Package turingtest runs plugin code natively against an in-memory host.
//
// The Host it provides is the reference host's world and a memory store
// behind the same port the WASM imports implement, so wrapper calls made by
// plugin code under `go test` behave as they would inside the game. A call
// the real host would trap on (a stale handle, a read of a missing key)
// panics with the host's typed error.
package turingtest

import (
	"strings"
	"sync"
	"testing"

	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/host/storage"
	"github.com/reglet-dev/turing-sdk/host/world"
	"github.com/reglet-dev/turing-sdk/internal/binding"
)

// Compile-time interface compliance check
var _ ports.Host = (*Host)(nil)

// Host is an in-memory ports.Host.
type Host struct {
	world *world.World
	store *storage.MemoryStore

	mu   sync.Mutex
	logs []string
}

// NewHost creates a host with an empty world and store.
func NewHost(opts ...world.Option) *Host {
	return &Host{
		world: world.New(opts...),
		store: storage.NewMemoryStore(),
	}
}

// Install creates a host and routes every wrapper call to it until the test ends.
func Install(t testing.TB, opts ...world.Option) *Host {
	t.Helper()

	h := NewHost(opts...)
	restore := binding.Swap(h)
	t.Cleanup(restore)
	return h
}

// World exposes the game state for assertions.
func (h *Host) World() *world.World {
	return h.world
}

// Store exposes the persistent store for seeding and assertions.
func (h *Host) Store() *storage.MemoryStore {
	return h.store
}

// Logs returns every line passed to Log, in order.
func (h *Host) Logs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.logs...)
}

// cstr cuts s at its first NUL, as the host sees a C string.
func cstr(s string) string {
	s, _, _ = strings.Cut(s, "\x00")
	return s
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func (h *Host) Create(kind entities.Kind, beat float32) entities.Handle {
	return must(h.world.Create(kind, beat))
}

func (h *Host) Add(kind entities.Kind, obj entities.Handle) {
	check(h.world.Add(kind, obj))
}

func (h *Host) Remove(kind entities.Kind, obj entities.Handle) {
	check(h.world.Remove(kind, obj))
}

func (h *Host) AtBeat(kind entities.Kind, beat float32) entities.Handle {
	return must(h.world.AtBeat(kind, beat))
}

func (h *Host) Position(kind entities.Kind, obj entities.Handle) entities.Handle {
	return must(h.world.Position(kind, obj))
}

func (h *Host) SetPosition(kind entities.Kind, obj, vec3 entities.Handle) {
	check(h.world.SetPosition(kind, obj, vec3))
}

func (h *Host) Orientation(kind entities.Kind, obj entities.Handle) entities.Handle {
	return must(h.world.Orientation(kind, obj))
}

func (h *Host) SetOrientation(kind entities.Kind, obj, quat entities.Handle) {
	check(h.world.SetOrientation(kind, obj, quat))
}

func (h *Host) Color(kind entities.Kind, obj entities.Handle) entities.Handle {
	return must(h.world.Color(kind, obj))
}

func (h *Host) SetColor(kind entities.Kind, obj, color entities.Handle) {
	check(h.world.SetColor(kind, obj, color))
}

func (h *Host) NewValue(kind entities.Kind, components ...float32) entities.Handle {
	return must(h.world.NewValue(kind, components...))
}

func (h *Host) Attr(kind entities.Kind, attr entities.Attr, value entities.Handle) float32 {
	return must(h.world.Attr(kind, attr, value))
}

func (h *Host) SetAttr(kind entities.Kind, attr entities.Attr, value entities.Handle, v float32) {
	check(h.world.SetAttr(kind, attr, value, v))
}

func (h *Host) SetRGB(color entities.Handle, r, g, b float32) {
	check(h.world.SetRGB(color, r, g, b))
}

func (h *Host) SetRGBA(color entities.Handle, r, g, b, a float32) {
	check(h.world.SetRGBA(color, r, g, b, a))
}

func (h *Host) LeftSaber() entities.Handle {
	return h.world.LeftSaber()
}

func (h *Host) RightSaber() entities.Handle {
	return h.world.RightSaber()
}

func (h *Host) Log(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logs = append(h.logs, cstr(message))
}

func (h *Host) Contains(kind entities.StoreKind, key string) bool {
	_, ok := h.store.Lookup(kind, cstr(key))
	return ok
}

func (h *Host) access(kind entities.StoreKind, key string) entities.StoredValue {
	key = cstr(key)
	v, ok := h.store.Lookup(kind, key)
	if !ok {
		panic(&hosterrors.StoreError{Op: "access", Key: key, Kind: kind, Err: hosterrors.ErrMissingKey})
	}
	return v
}

func (h *Host) AccessInt(key string) int32 {
	return h.access(entities.StoreI32, key).Int
}

func (h *Host) AccessFloat(key string) float32 {
	return h.access(entities.StoreF32, key).Float
}

func (h *Host) AccessString(key string) string {
	return h.access(entities.StoreStr, key).Str
}

func (h *Host) StoreInt(key string, v int32) {
	check(h.store.Put(cstr(key), entities.IntValue(v)))
}

func (h *Host) StoreFloat(key string, v float32) {
	check(h.store.Put(cstr(key), entities.FloatValue(v)))
}

func (h *Host) StoreString(key, v string) {
	check(h.store.Put(cstr(key), entities.StringValue(cstr(v))))
}

func (h *Host) RemoveValue(kind entities.StoreKind, key string) {
	check(h.store.Delete(kind, cstr(key)))
}

func (h *Host) DropReference(obj entities.Handle) {
	check(h.world.Drop(obj))
}
