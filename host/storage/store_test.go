package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

func stores(t *testing.T) map[string]ports.PersistentStore {
	t.Helper()
	fs, err := NewFileStore(WithPath(filepath.Join(t.TempDir(), "data.yaml")))
	require.NoError(t, err)
	return map[string]ports.PersistentStore{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStore_KeySpacesAreSeparate(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("score", entities.IntValue(10)))

			v, ok := s.Lookup(entities.StoreI32, "score")
			require.True(t, ok)
			assert.Equal(t, int32(10), v.Int)

			_, ok = s.Lookup(entities.StoreF32, "score")
			assert.False(t, ok)
			_, ok = s.Lookup(entities.StoreStr, "score")
			assert.False(t, ok)
		})
	}
}

func TestStore_OverwriteAndDelete(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("name", entities.StringValue("first")))
			require.NoError(t, s.Put("name", entities.StringValue("second")))

			v, ok := s.Lookup(entities.StoreStr, "name")
			require.True(t, ok)
			assert.Equal(t, "second", v.Str)

			require.NoError(t, s.Delete(entities.StoreStr, "name"))
			_, ok = s.Lookup(entities.StoreStr, "name")
			assert.False(t, ok)

			// Deleting again is harmless.
			assert.NoError(t, s.Delete(entities.StoreStr, "name"))
		})
	}
}

func TestStore_KeysSorted(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("b", entities.FloatValue(2)))
			require.NoError(t, s.Put("a", entities.FloatValue(1)))
			require.NoError(t, s.Put("c", entities.IntValue(3)))

			assert.Equal(t, []string{"a", "b"}, s.Keys(entities.StoreF32))
			assert.Equal(t, []string{"c"}, s.Keys(entities.StoreI32))
			assert.Empty(t, s.Keys(entities.StoreStr))
		})
	}
}

func TestMemoryStore_UnknownKind(t *testing.T) {
	s := NewMemoryStore()
	err := s.Put("k", entities.StoredValue{Kind: entities.StoreKind(9)})
	assert.Error(t, err)
	assert.Zero(t, s.Len())
}

func TestFileStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.yaml")

	s, err := NewFileStore(WithPath(path))
	require.NoError(t, err)
	require.NoError(t, s.Put("plays", entities.IntValue(3)))
	require.NoError(t, s.Put("speed", entities.FloatValue(1.25)))
	require.NoError(t, s.Put("player", entities.StringValue("ada")))
	assert.Equal(t, path, s.Path())

	reopened, err := NewFileStore(WithPath(path))
	require.NoError(t, err)

	v, ok := reopened.Lookup(entities.StoreI32, "plays")
	require.True(t, ok)
	assert.Equal(t, int32(3), v.Int)
	v, ok = reopened.Lookup(entities.StoreF32, "speed")
	require.True(t, ok)
	assert.Equal(t, float32(1.25), v.Float)
	v, ok = reopened.Lookup(entities.StoreStr, "player")
	require.True(t, ok)
	assert.Equal(t, "ada", v.Str)
}

func TestFileStore_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")

	s, err := NewFileStore(WithPath(path), WithFilePermissions(0o640), WithDirPermissions(0o700))
	require.NoError(t, err)
	require.NoError(t, s.Put("k", entities.IntValue(1)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	s, err := NewFileStore(WithPath(path))
	require.NoError(t, err)
	assert.Empty(t, s.Keys(entities.StoreI32))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "opening must not create the file")
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("i32: [not, a, map"), 0o600))

	_, err := NewFileStore(WithPath(path))
	var storeErr *hosterrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "load", storeErr.Op)
}

func TestFileStore_FailedSaveIsUndone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	s, err := NewFileStore(WithPath(path))
	require.NoError(t, err)
	require.NoError(t, s.Put("plays", entities.IntValue(3)))
	require.NoError(t, s.Put("player", entities.StringValue("ada")))

	// A directory where the data file belongs makes every save fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o700))

	tests := []struct {
		name   string
		mutate func() error
	}{
		{name: "overwrite", mutate: func() error { return s.Put("plays", entities.IntValue(4)) }},
		{name: "new key", mutate: func() error { return s.Put("speed", entities.FloatValue(2)) }},
		{name: "delete", mutate: func() error { return s.Delete(entities.StoreStr, "player") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var storeErr *hosterrors.StoreError
			require.ErrorAs(t, tt.mutate(), &storeErr)
		})
	}

	v, ok := s.Lookup(entities.StoreI32, "plays")
	require.True(t, ok)
	assert.Equal(t, int32(3), v.Int)
	_, ok = s.Lookup(entities.StoreF32, "speed")
	assert.False(t, ok)
	v, ok = s.Lookup(entities.StoreStr, "player")
	require.True(t, ok)
	assert.Equal(t, "ada", v.Str)
}
