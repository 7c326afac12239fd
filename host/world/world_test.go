package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
)

func TestCreate_Defaults(t *testing.T) {
	w := New()

	h, err := w.Create(entities.KindColorNote, 4)
	require.NoError(t, err)
	assert.False(t, h.IsNull())

	pos, err := w.Position(entities.KindColorNote, h)
	require.NoError(t, err)
	_, comps, err := w.Value(pos)
	require.NoError(t, err)
	assert.Equal(t, [4]float32{}, comps)

	rot, err := w.Orientation(entities.KindColorNote, h)
	require.NoError(t, err)
	_, comps, err = w.Value(rot)
	require.NoError(t, err)
	assert.Equal(t, identityQuat, comps)

	col, err := w.Color(entities.KindColorNote, h)
	require.NoError(t, err)
	kind, comps, err := w.Value(col)
	require.NoError(t, err)
	assert.Equal(t, entities.KindColor, kind)
	assert.Equal(t, white, comps)
}

func TestCreate_UndeclaredKind(t *testing.T) {
	w := New()

	for _, kind := range []entities.Kind{entities.KindSaber, entities.KindVec3, entities.KindInvalid} {
		_, err := w.Create(kind, 1)
		assert.ErrorIs(t, err, hosterrors.ErrNotDeclared, kind.String())
	}
}

func TestBeatmap_AddRemoveAtBeat(t *testing.T) {
	w := New()

	wall, err := w.Create(entities.KindWall, 8)
	require.NoError(t, err)

	// Created objects are not in the beatmap yet.
	found, err := w.AtBeat(entities.KindWall, 8)
	require.NoError(t, err)
	assert.True(t, found.IsNull())

	require.NoError(t, w.Add(entities.KindWall, wall))
	require.NoError(t, w.Add(entities.KindWall, wall))

	found, err = w.AtBeat(entities.KindWall, 8)
	require.NoError(t, err)
	assert.Equal(t, wall, found)

	// A different kind at the same beat does not match.
	found, err = w.AtBeat(entities.KindArc, 8)
	require.NoError(t, err)
	assert.True(t, found.IsNull())

	require.NoError(t, w.Remove(entities.KindWall, wall))
	found, err = w.AtBeat(entities.KindWall, 8)
	require.NoError(t, err)
	assert.True(t, found.IsNull())

	// Removal keeps the handle usable.
	_, err = w.Position(entities.KindWall, wall)
	assert.NoError(t, err)
}

func TestAtBeat_Tolerance(t *testing.T) {
	tests := []struct {
		name      string
		tolerance float32
		query     float32
		wantHit   bool
	}{
		{name: "exact", tolerance: 0, query: 2, wantHit: true},
		{name: "inside window", tolerance: 0.25, query: 2.2, wantHit: true},
		{name: "outside window", tolerance: 0.25, query: 2.5, wantHit: false},
		{name: "default window misses", tolerance: DefaultBeatTolerance, query: 2.01, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(WithBeatTolerance(tt.tolerance))
			note, err := w.Create(entities.KindBombNote, 2)
			require.NoError(t, err)
			require.NoError(t, w.Add(entities.KindBombNote, note))

			found, err := w.AtBeat(entities.KindBombNote, tt.query)
			require.NoError(t, err)
			if tt.wantHit {
				assert.Equal(t, note, found)
			} else {
				assert.True(t, found.IsNull())
			}
		})
	}
}

func TestAtBeat_Nearest(t *testing.T) {
	w := New(WithBeatTolerance(1))

	far, _ := w.Create(entities.KindArc, 3)
	near, _ := w.Create(entities.KindArc, 3.6)
	require.NoError(t, w.Add(entities.KindArc, far))
	require.NoError(t, w.Add(entities.KindArc, near))

	found, err := w.AtBeat(entities.KindArc, 3.5)
	require.NoError(t, err)
	assert.Equal(t, near, found)
}

func TestSetPosition_CopiesValue(t *testing.T) {
	w := New()

	note, _ := w.Create(entities.KindChainHeadNote, 1)
	vec, err := w.NewValue(entities.KindVec3, 1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, w.SetPosition(entities.KindChainHeadNote, note, vec))

	// Later changes to the vector do not move the note.
	require.NoError(t, w.SetAttr(entities.KindVec3, entities.AttrX, vec, 100))

	pos, err := w.Position(entities.KindChainHeadNote, note)
	require.NoError(t, err)
	x, err := w.Attr(entities.KindVec3, entities.AttrX, pos)
	require.NoError(t, err)
	assert.Equal(t, float32(1), x)
	z, err := w.Attr(entities.KindVec3, entities.AttrZ, pos)
	require.NoError(t, err)
	assert.Equal(t, float32(3), z)
}

func TestSetPosition_WrongValueKind(t *testing.T) {
	w := New()

	note, _ := w.Create(entities.KindColorNote, 1)
	quat, err := w.NewValue(entities.KindQuat, 0, 0, 0, 1)
	require.NoError(t, err)

	err = w.SetPosition(entities.KindColorNote, note, quat)
	var kindErr *hosterrors.KindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, entities.KindVec3, kindErr.Want)
	assert.Equal(t, entities.KindQuat, kindErr.Got)
	assert.Equal(t, "_color_note_set_position", kindErr.Op)
}

func TestObjectKindMismatch(t *testing.T) {
	w := New()
	arc, _ := w.Create(entities.KindArc, 1)

	_, err := w.Position(entities.KindWall, arc)
	assert.ErrorIs(t, err, hosterrors.ErrKindMismatch)
}

func TestSetOrientation(t *testing.T) {
	w := New()

	wall, _ := w.Create(entities.KindWall, 1)
	quat, _ := w.NewValue(entities.KindQuat, 0.5, 0.5, 0.5, 0.5)
	require.NoError(t, w.SetOrientation(entities.KindWall, wall, quat))

	rot, err := w.Orientation(entities.KindWall, wall)
	require.NoError(t, err)
	_, comps, err := w.Value(rot)
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 0.5}, comps)
}

func TestColor_GetterReturnsCopy(t *testing.T) {
	w := New()

	note, _ := w.Create(entities.KindColorNote, 1)
	col, err := w.Color(entities.KindColorNote, note)
	require.NoError(t, err)

	require.NoError(t, w.SetRGB(col, 0.1, 0.2, 0.3))

	again, err := w.Color(entities.KindColorNote, note)
	require.NoError(t, err)
	_, comps, _ := w.Value(again)
	assert.Equal(t, white, comps, "object color changes only through SetColor")

	require.NoError(t, w.SetColor(entities.KindColorNote, note, col))
	again, _ = w.Color(entities.KindColorNote, note)
	_, comps, _ = w.Value(again)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, comps)
}

func TestSetRGBA(t *testing.T) {
	w := New()

	col, err := w.Color(entities.KindSaber, w.LeftSaber())
	require.NoError(t, err)
	require.NoError(t, w.SetRGBA(col, 0, 1, 0, 0.5))

	a, err := w.Attr(entities.KindColor, entities.AttrA, col)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), a)
	g, err := w.Attr(entities.KindColor, entities.AttrG, col)
	require.NoError(t, err)
	assert.Equal(t, float32(1), g)
}

func TestSabers(t *testing.T) {
	left := [4]float32{0.9, 0.1, 0.1, 1}
	right := [4]float32{0.1, 0.1, 0.9, 1}
	w := New(WithSaberColors(left, right))

	assert.NotEqual(t, w.LeftSaber(), w.RightSaber())

	col, err := w.Color(entities.KindSaber, w.RightSaber())
	require.NoError(t, err)
	_, comps, _ := w.Value(col)
	assert.Equal(t, right, comps)

	// Sabers have no position.
	_, err = w.Position(entities.KindSaber, w.LeftSaber())
	assert.ErrorIs(t, err, hosterrors.ErrNotDeclared)

	for _, v := range w.Snapshot() {
		assert.Equal(t, identityQuat, v.Orientation, "sabers start with the identity orientation")
	}

	// Dropping a saber leaves it in place.
	require.NoError(t, w.Drop(w.LeftSaber()))
	_, err = w.Color(entities.KindSaber, w.LeftSaber())
	assert.NoError(t, err)
}

func TestNewValue(t *testing.T) {
	w := New()

	v, err := w.NewValue(entities.KindVec2, 3, 4)
	require.NoError(t, err)
	y, err := w.Attr(entities.KindVec2, entities.AttrY, v)
	require.NoError(t, err)
	assert.Equal(t, float32(4), y)

	_, err = w.NewValue(entities.KindVec2, 1, 2, 3)
	assert.Error(t, err)

	_, err = w.NewValue(entities.KindColor, 1, 1, 1, 1)
	assert.ErrorIs(t, err, hosterrors.ErrNotDeclared, "colors have no constructor")
}

func TestAttr_UndeclaredComponent(t *testing.T) {
	w := New()
	v, _ := w.NewValue(entities.KindVec2, 1, 2)

	_, err := w.Attr(entities.KindVec2, entities.AttrZ, v)
	assert.ErrorIs(t, err, hosterrors.ErrNotDeclared)

	err = w.SetAttr(entities.KindVec2, entities.AttrW, v, 1)
	assert.ErrorIs(t, err, hosterrors.ErrNotDeclared)
}

func TestDrop_InvalidatesHandle(t *testing.T) {
	w := New()

	note, _ := w.Create(entities.KindColorNote, 1)
	require.NoError(t, w.Drop(note))

	_, err := w.Position(entities.KindColorNote, note)
	assert.ErrorIs(t, err, hosterrors.ErrStaleHandle)

	// The slot is reused under a new generation; the old handle stays stale.
	fresh, _ := w.Create(entities.KindColorNote, 2)
	assert.NotEqual(t, note, fresh)
	_, err = w.Position(entities.KindColorNote, note)
	assert.ErrorIs(t, err, hosterrors.ErrStaleHandle)

	err = w.Drop(note)
	var handleErr *hosterrors.HandleError
	require.True(t, errors.As(err, &handleErr))
	assert.Equal(t, "_drop_reference", handleErr.Op)
}

func TestResolve_NullAndUnknown(t *testing.T) {
	w := New()

	_, err := w.Color(entities.KindWall, entities.NullHandle)
	assert.ErrorIs(t, err, hosterrors.ErrNullHandle)

	_, err = w.Color(entities.KindWall, entities.Handle(0x7fff))
	assert.ErrorIs(t, err, hosterrors.ErrUnknownHandle)

	_, err = w.Color(entities.KindWall, entities.Handle(-5))
	assert.ErrorIs(t, err, hosterrors.ErrUnknownHandle)
}

func TestSnapshotAndStats(t *testing.T) {
	w := New()

	late, _ := w.Create(entities.KindWall, 10)
	early, _ := w.Create(entities.KindArc, 2)
	require.NoError(t, w.Add(entities.KindArc, early))
	_, _ = w.NewValue(entities.KindVec4, 1, 2, 3, 4)

	snap := w.Snapshot()
	require.Len(t, snap, 4)
	// Sabers sit at beat zero.
	assert.Equal(t, entities.KindSaber, snap[0].Kind)
	assert.Equal(t, entities.KindSaber, snap[1].Kind)
	assert.Equal(t, early, snap[2].Handle)
	assert.Equal(t, late, snap[3].Handle)

	beatmap := w.Beatmap()
	require.Len(t, beatmap, 1)
	assert.Equal(t, early, beatmap[0].Handle)

	assert.Equal(t, Stats{Objects: 4, Values: 1}, w.Stats())
}

func TestArena_GenerationWraps(t *testing.T) {
	var a arena
	h, err := a.insert(object{kind: entities.KindVec2})
	require.NoError(t, err)

	a.slots[0].generation = maxGeneration
	a.slots[0].live = false
	a.free = append(a.free, 0)

	wrapped, err := a.insert(object{kind: entities.KindVec2})
	require.NoError(t, err)
	assert.Greater(t, int32(wrapped), int32(0))
	assert.Equal(t, h, wrapped, "generation restarts at one after the maximum")
	assert.Equal(t, 1, a.len())
}

func TestMaxObjects_FullArena(t *testing.T) {
	w := New(WithMaxObjects(4))

	note, err := w.Create(entities.KindColorNote, 1)
	require.NoError(t, err)
	pos, err := w.Position(entities.KindColorNote, note)
	require.NoError(t, err)

	_, err = w.Position(entities.KindColorNote, note)
	assert.ErrorIs(t, err, hosterrors.ErrArenaFull)
	_, err = w.NewValue(entities.KindVec2, 1, 2)
	assert.ErrorIs(t, err, hosterrors.ErrArenaFull)

	// Dropping a value frees its slot for the next read.
	require.NoError(t, w.Drop(pos))
	again, err := w.Position(entities.KindColorNote, note)
	require.NoError(t, err)
	assert.NotEqual(t, pos, again, "a reused slot gets a new generation")
}

func TestWithMaxObjects_IgnoresOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 1, MaxObjects + 1} {
		w := New(WithMaxObjects(n))
		assert.Equal(t, MaxObjects, w.config.maxObjects, "n=%d", n)
		assert.False(t, w.LeftSaber().IsNull())
		assert.False(t, w.RightSaber().IsNull())
	}
}

func TestRepeatedReads_DroppedValuesReuseSlots(t *testing.T) {
	w := New()
	wall, err := w.Create(entities.KindWall, 1)
	require.NoError(t, err)

	// More reads than the old 16-bit slot space could hold.
	for i := 0; i < 70000; i++ {
		pos, err := w.Position(entities.KindWall, wall)
		require.NoError(t, err)
		require.NoError(t, w.Drop(pos))
	}
	assert.Equal(t, Stats{Objects: 3}, w.Stats())
	assert.Len(t, w.arena.slots, 4)
}

func TestRepeatedReads_BeyondSixteenBits(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates 70000 values")
	}
	w := New()
	wall, err := w.Create(entities.KindWall, 1)
	require.NoError(t, err)

	var last entities.Handle
	for i := 0; i < 70000; i++ {
		last, err = w.Position(entities.KindWall, wall)
		require.NoError(t, err)
	}
	kind, _, err := w.Value(last)
	require.NoError(t, err)
	assert.Equal(t, entities.KindVec3, kind)
	assert.Equal(t, 70000, w.Stats().Values)
}

func TestArena_HandleRoundTrip(t *testing.T) {
	tests := []struct {
		index      int
		generation uint16
	}{
		{index: 0, generation: 1},
		{index: 65535, generation: 7},
		{index: MaxObjects - 1, generation: maxGeneration},
	}
	for _, tt := range tests {
		h := makeHandle(tt.index, tt.generation)
		assert.Greater(t, int32(h), int32(0))
		index, generation := splitHandle(h)
		assert.Equal(t, tt.index, index)
		assert.Equal(t, tt.generation, generation)
	}
}
