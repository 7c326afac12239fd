package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
	"github.com/reglet-dev/turing-sdk/host/storage"
	"github.com/reglet-dev/turing-sdk/host/world"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`
store:
  kind: file
  path: /tmp/turing.yaml
log:
  level: debug
world:
  beat_tolerance: 0.25
  left_saber_color: [0.5, 0, 0, 1]
limits:
  max_string_size: 4096
`))
	require.NoError(t, err)

	assert.Equal(t, StoreFile, cfg.Store.Kind)
	assert.Equal(t, "/tmp/turing.yaml", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset keys keep their defaults")
	assert.Equal(t, float32(0.25), cfg.World.BeatTolerance)
	assert.Equal(t, []float32{0.5, 0, 0, 1}, cfg.World.LeftSaberColor)
	assert.Equal(t, uint32(4096), cfg.Limits.MaxStringSize)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantField string
	}{
		{name: "unknown store", yaml: "store: {kind: redis}", wantField: "store.kind"},
		{name: "file store without path", yaml: "store: {kind: file}", wantField: "store.path"},
		{name: "bad level", yaml: "log: {level: loud}", wantField: "log.level"},
		{name: "negative tolerance", yaml: "world: {beat_tolerance: -1}", wantField: "world.beat_tolerance"},
		{name: "short color", yaml: "world: {right_saber_color: [1, 1]}", wantField: "world.right_saber_color"},
		{name: "channel out of range", yaml: "world: {left_saber_color: [2, 0, 0, 1]}", wantField: "world.left_saber_color[0]"},
		{name: "one object", yaml: "world: {max_objects: 1}", wantField: "world.max_objects"},
		{name: "zero string size", yaml: "limits: {max_string_size: 0}", wantField: "limits.max_string_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			var cfgErr *hosterrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("wrold: {beat_tolerance: 1}"))
	var cfgErr *hosterrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, cfgErr.Field)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turinghost.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: warn, format: json}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1), "debug is below warn")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	cfg := Default()
	s, err := cfg.OpenStore()
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, s)

	cfg.Store = StoreConfig{Kind: StoreFile, Path: filepath.Join(t.TempDir(), "data.yaml")}
	s, err = cfg.OpenStore()
	require.NoError(t, err)
	require.NoError(t, s.Put("k", entities.IntValue(1)))
	assert.FileExists(t, cfg.Store.Path)
}

func TestWorldOptions(t *testing.T) {
	cfg := Default()
	cfg.World.RightSaberColor = []float32{0, 1, 0, 1}

	w := world.New(cfg.WorldOptions()...)
	col, err := w.Color(entities.KindSaber, w.RightSaber())
	require.NoError(t, err)
	_, comps, err := w.Value(col)
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, comps)

	col, err = w.Color(entities.KindSaber, w.LeftSaber())
	require.NoError(t, err)
	_, comps, err = w.Value(col)
	require.NoError(t, err)
	assert.Equal(t, world.DefaultLeftSaberColor, comps)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "turinghost configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "store")
	assert.Contains(t, props, "world")
	assert.Contains(t, string(data), `"max_string_size"`)
}

func TestWorldOptions_MaxObjects(t *testing.T) {
	cfg := Default()
	cfg.World.MaxObjects = 3
	require.NoError(t, Validate(cfg))

	w := world.New(cfg.WorldOptions()...)
	_, err := w.NewValue(entities.KindVec3, 1, 2, 3)
	require.NoError(t, err)
	_, err = w.NewValue(entities.KindVec3, 1, 2, 3)
	assert.ErrorIs(t, err, hosterrors.ErrArenaFull)
}
