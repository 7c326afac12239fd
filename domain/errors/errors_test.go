package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/turing-sdk/domain/entities"
)

func TestHandleError(t *testing.T) {
	err := &HandleError{Op: "_color_note_get_position", Handle: entities.Handle(0x10001), Err: ErrStaleHandle}

	assert.Equal(t, "_color_note_get_position: stale handle handle(0x10001)", err.Error())
	assert.True(t, errors.Is(err, ErrStaleHandle))
	assert.False(t, errors.Is(err, ErrNullHandle))
	assert.Equal(t, "handle", CodeOf(err))
}

func TestHandleError_NoOp(t *testing.T) {
	err := &HandleError{Handle: entities.NullHandle, Err: ErrNullHandle}
	assert.Equal(t, "null handle handle(null)", err.Error())
}

func TestKindError(t *testing.T) {
	err := &KindError{Op: "_wall_set_color", Handle: entities.Handle(0x10002), Want: entities.KindWall, Got: entities.KindArc}

	assert.Equal(t, "_wall_set_color: handle(0x10002) is a arc, want wall", err.Error())
	assert.True(t, errors.Is(err, ErrKindMismatch))

	var kindErr *KindError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &kindErr))
	assert.Equal(t, entities.KindArc, kindErr.Got)
}

func TestDeclarationError(t *testing.T) {
	err := &DeclarationError{Op: "create", Kind: entities.KindSaber}
	assert.Equal(t, "create is not declared for saber", err.Error())
	assert.True(t, errors.Is(err, ErrNotDeclared))
	assert.Equal(t, "declaration", CodeOf(err))
}

func TestStoreError(t *testing.T) {
	base := fmt.Errorf("disk full")
	err := &StoreError{Op: "put", Key: "score", Kind: entities.StoreI32, Err: base}

	assert.Equal(t, `persistent i32 put "score" failed: disk full`, err.Error())
	assert.True(t, errors.Is(err, base))

	noKey := &StoreError{Op: "load", Err: base}
	assert.Equal(t, "persistent store load failed: disk full", noKey.Error())
}

func TestMemoryError(t *testing.T) {
	err := &MemoryError{Op: "read c string", Ptr: 0x20, Length: 4, Err: ErrOutOfBounds}
	assert.Equal(t, "read c string at 0x20 (len 4): guest memory access out of bounds", err.Error())
	assert.Equal(t, "memory", CodeOf(err))
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "log.level", Err: fmt.Errorf("unknown level")}
	assert.Equal(t, "config validation failed for field 'log.level': unknown level", err.Error())

	noField := &ConfigError{Err: fmt.Errorf("bad yaml")}
	assert.Equal(t, "config validation failed: bad yaml", noField.Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "", CodeOf(nil))
	assert.Equal(t, "internal", CodeOf(fmt.Errorf("plain")))
}
