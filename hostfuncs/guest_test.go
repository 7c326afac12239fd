package hostfuncs

import (
	"context"
	"errors"
)

// fakeMemory is a flat byte slice with wazero's bounds semantics.
type fakeMemory []byte

func (m fakeMemory) Size() uint32 { return uint32(len(m)) }

func (m fakeMemory) Read(offset, n uint32) ([]byte, bool) {
	if uint64(offset)+uint64(n) > uint64(len(m)) {
		return nil, false
	}
	return m[offset : offset+n], true
}

func (m fakeMemory) Write(offset uint32, v []byte) bool {
	if uint64(offset)+uint64(len(v)) > uint64(len(m)) {
		return false
	}
	copy(m[offset:], v)
	return true
}

// fakeGuest bump-allocates from offset 1024 upward.
type fakeGuest struct {
	mem      fakeMemory
	next     uint32
	mallocs  int
	failNext bool
}

func newFakeGuest() *fakeGuest {
	return &fakeGuest{mem: make(fakeMemory, 1<<16), next: 1024}
}

func (g *fakeGuest) Name() string { return "fake" }

func (g *fakeGuest) Memory() Memory { return g.mem }

func (g *fakeGuest) Malloc(_ context.Context, size uint32) (uint32, error) {
	if g.failNext {
		return 0, errors.New("out of memory")
	}
	g.mallocs++
	ptr := g.next
	g.next += size
	return ptr, nil
}

// cstring places s plus a terminator in guest memory.
func (g *fakeGuest) cstring(s string) uint32 {
	ptr, _ := g.Malloc(context.Background(), uint32(len(s)+1))
	copy(g.mem[ptr:], s)
	g.mem[ptr+uint32(len(s))] = 0
	return ptr
}

func (g *fakeGuest) read(ptr uint32) string {
	s, err := ReadCString(g.mem, ptr, DefaultMaxStringSize)
	if err != nil {
		panic(err)
	}
	return s
}
