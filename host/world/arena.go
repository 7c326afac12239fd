package world

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
)

const (
	slotBits = 20
	slotMask = 1<<slotBits - 1
	// MaxObjects is the most live objects a world can hold; slot+1 fits in slotBits.
	MaxObjects = slotMask
	// maxGeneration keeps handles positive int32 values.
	maxGeneration = 1<<(31-slotBits) - 1
)

// object is the state behind one handle.
type object struct {
	// gameplay objects
	position    [3]float32
	orientation [4]float32
	color       [4]float32
	beat        float32
	inBeatmap   bool

	// values: vectors, quaternions and colors
	components [4]float32

	kind entities.Kind
}

type slot struct {
	obj        object
	generation uint16
	live       bool
}

// arena stores objects in reusable slots. A handle packs the slot index and
// the slot's generation, so a handle to a released slot no longer resolves
// even after the slot is reused.
type arena struct {
	slots []slot
	free  []int
	// limit caps live objects; zero means MaxObjects.
	limit int
}

func makeHandle(index int, generation uint16) entities.Handle {
	return entities.Handle(int32(generation)<<slotBits | int32(index+1))
}

func splitHandle(h entities.Handle) (index int, generation uint16) {
	return int(h&slotMask) - 1, uint16(h >> slotBits)
}

func (a *arena) insert(obj object) (entities.Handle, error) {
	limit := a.limit
	if limit <= 0 || limit > MaxObjects {
		limit = MaxObjects
	}
	if a.len() >= limit {
		return entities.NullHandle, hosterrors.ErrArenaFull
	}

	var index int
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		index = len(a.slots) - 1
	}

	s := &a.slots[index]
	s.generation++
	if s.generation == 0 || s.generation > maxGeneration {
		s.generation = 1
	}
	s.obj = obj
	s.live = true
	return makeHandle(index, s.generation), nil
}

// get resolves h, reporting why it does not resolve.
func (a *arena) get(h entities.Handle) (*object, error) {
	if h.IsNull() {
		return nil, hosterrors.ErrNullHandle
	}
	if h < 0 {
		return nil, hosterrors.ErrUnknownHandle
	}
	index, generation := splitHandle(h)
	if index < 0 || index >= len(a.slots) {
		return nil, hosterrors.ErrUnknownHandle
	}
	s := &a.slots[index]
	if !s.live || s.generation != generation {
		return nil, hosterrors.ErrStaleHandle
	}
	return &s.obj, nil
}

func (a *arena) release(h entities.Handle) error {
	if _, err := a.get(h); err != nil {
		return err
	}
	index, _ := splitHandle(h)
	a.slots[index].live = false
	a.slots[index].obj = object{}
	a.free = append(a.free, index)
	return nil
}

// each visits live objects in slot order.
func (a *arena) each(fn func(h entities.Handle, obj *object)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			fn(makeHandle(i, s.generation), &s.obj)
		}
	}
}

func (a *arena) len() int {
	return len(a.slots) - len(a.free)
}
