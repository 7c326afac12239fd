package wazero

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/host/storage"
	"github.com/reglet-dev/turing-sdk/host/world"
	"github.com/reglet-dev/turing-sdk/hostfuncs"
	"github.com/reglet-dev/turing-sdk/internal/wasmtest"
)

type harness struct {
	ctx     context.Context
	runtime wazero.Runtime
	world   *world.World
	store   *storage.MemoryStore
	logs    *observer.ObservedLogs
}

func newHarness(t *testing.T, opts ...AdapterOption) *harness {
	t.Helper()
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)

	h := &harness{
		ctx:     ctx,
		runtime: wazero.NewRuntime(ctx),
		world:   world.New(),
		store:   storage.NewMemoryStore(),
		logs:    logs,
	}
	t.Cleanup(func() { _ = h.runtime.Close(ctx) })

	reg, err := hostfuncs.NewRegistry(
		hostfuncs.WithMiddleware(hostfuncs.TrapMiddleware()),
		hostfuncs.WithBundle(hostfuncs.AllBundles(h.world, h.store, zap.New(core))),
	)
	require.NoError(t, err)
	require.NoError(t, RegisterWithRuntime(ctx, h.runtime, reg, opts...))
	return h
}

func (h *harness) instantiate(t *testing.T, b *wasmtest.Builder, name string) api.Module {
	t.Helper()
	mod, err := h.runtime.InstantiateWithConfig(h.ctx, b.Bytes(), wazero.NewModuleConfig().WithName(name))
	require.NoError(t, err)
	return mod
}

func TestDefaultAdapterConfig(t *testing.T) {
	cfg := defaultAdapterConfig()

	assert.Equal(t, "env", cfg.ModuleName)
	assert.Equal(t, uint32(hostfuncs.DefaultMaxStringSize), cfg.MaxStringSize)
	assert.NotNil(t, cfg.Logger)
}

func TestAdapterOptions(t *testing.T) {
	cfg := defaultAdapterConfig()
	WithModuleName("custom_module")(&cfg)
	WithMaxStringSize(2048)(&cfg)
	WithLogger(nil)(&cfg)

	assert.Equal(t, "custom_module", cfg.ModuleName)
	assert.Equal(t, uint32(2048), cfg.MaxStringSize)
	assert.NotNil(t, cfg.Logger, "a nil logger keeps the default")
}

func TestRegisterWithRuntime_CreatesAndLogs(t *testing.T) {
	h := newHarness(t)

	b := wasmtest.New()
	create := b.ImportEntry("_create_color_note")
	add := b.ImportEntry("_beatmap_add_color_note")
	logFn := b.ImportEntry("_log")
	msg := b.CString(64, "info: placed a note")
	b.Func("run", nil, nil,
		wasmtest.F32Const(3), wasmtest.Call(create), wasmtest.Call(add),
		wasmtest.I32Const(int32(msg)), wasmtest.Call(logFn),
	)

	mod := h.instantiate(t, b, "placer")
	_, err := mod.ExportedFunction("run").Call(h.ctx)
	require.NoError(t, err)

	beatmap := h.world.Beatmap()
	require.Len(t, beatmap, 1)
	assert.Equal(t, entities.KindColorNote, beatmap[0].Kind)
	assert.Equal(t, float32(3), beatmap[0].Beat)

	entries := h.logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "placed a note", entries[0].Message)
	assert.Equal(t, "placer", entries[0].ContextMap()["plugin"])
}

func TestRegisterWithRuntime_ValueRoundTrip(t *testing.T) {
	h := newHarness(t)

	b := wasmtest.New()
	from := b.ImportEntry("_vec4_from_xyzw")
	getW := b.ImportEntry("_vec4_get_w")
	b.Func("w", nil, []catalog.ValueType{catalog.F32},
		wasmtest.F32Const(1), wasmtest.F32Const(2), wasmtest.F32Const(3), wasmtest.F32Const(4),
		wasmtest.Call(from), wasmtest.Call(getW),
	)

	mod := h.instantiate(t, b, "vectors")
	res, err := mod.ExportedFunction("w").Call(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, float32(4), api.DecodeF32(res[0]))
}

func TestRegisterWithRuntime_StaleHandleTraps(t *testing.T) {
	h := newHarness(t)

	b := wasmtest.New()
	getX := b.ImportEntry("_vec3_get_x")
	b.Func("bad", nil, nil, wasmtest.I32Const(0x7fff), wasmtest.Call(getX), wasmtest.Drop())

	mod := h.instantiate(t, b, "buggy")
	_, err := mod.ExportedFunction("bad").Call(h.ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "host function _vec3_get_x (plugin buggy)")
	assert.ErrorContains(t, err, "unknown handle")
}

func TestRegisterWithRuntime_PersistentStrings(t *testing.T) {
	h := newHarness(t)

	b := wasmtest.New()
	store := b.ImportEntry("_data_store_persistent_str")
	access := b.ImportEntry("_data_access_persistent_str")
	key := b.CString(100, "player")
	value := b.CString(120, "ada")
	b.BumpAllocator(4096)
	b.Func("save", nil, nil, wasmtest.I32Const(int32(key)), wasmtest.I32Const(int32(value)), wasmtest.Call(store))
	b.Func("load", nil, []catalog.ValueType{catalog.I32}, wasmtest.I32Const(int32(key)), wasmtest.Call(access))

	mod := h.instantiate(t, b, "saver")
	_, err := mod.ExportedFunction("save").Call(h.ctx)
	require.NoError(t, err)

	stored, ok := h.store.Lookup(entities.StoreStr, "player")
	require.True(t, ok)
	assert.Equal(t, "ada", stored.Str)

	res, err := mod.ExportedFunction("load").Call(h.ctx)
	require.NoError(t, err)
	ptr := api.DecodeU32(res[0])
	assert.Equal(t, uint32(4096), ptr, "the string lives in a block from the guest's _malloc")

	got, ok := mod.Memory().Read(ptr, 4)
	require.True(t, ok)
	assert.Equal(t, []byte("ada\x00"), got)
}

func TestRegisterWithRuntime_MissingMalloc(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.store.Put("player", entities.StringValue("ada")))

	b := wasmtest.New()
	access := b.ImportEntry("_data_access_persistent_str")
	key := b.CString(100, "player")
	b.Func("load", nil, []catalog.ValueType{catalog.I32}, wasmtest.I32Const(int32(key)), wasmtest.Call(access))

	mod := h.instantiate(t, b, "no-malloc")
	_, err := mod.ExportedFunction("load").Call(h.ctx)
	assert.ErrorContains(t, err, ErrMissingMalloc.Error())
}

func TestRegisterWithRuntime_StringBound(t *testing.T) {
	h := newHarness(t, WithMaxStringSize(4))

	b := wasmtest.New()
	logFn := b.ImportEntry("_log")
	msg := b.CString(64, "info: too long")
	b.Func("run", nil, nil, wasmtest.I32Const(int32(msg)), wasmtest.Call(logFn))

	mod := h.instantiate(t, b, "chatty")
	_, err := mod.ExportedFunction("run").Call(h.ctx)
	assert.ErrorContains(t, err, "out of bounds")
	assert.Zero(t, h.logs.Len())
}

func TestWithPluginName(t *testing.T) {
	h := newHarness(t)

	b := wasmtest.New()
	getX := b.ImportEntry("_vec2_get_x")
	b.Func("bad", nil, nil, wasmtest.I32Const(0), wasmtest.Call(getX), wasmtest.Drop())

	mod := h.instantiate(t, b, "module-name")
	_, err := mod.ExportedFunction("bad").Call(WithPluginName(h.ctx, "pretty-name"))
	assert.ErrorContains(t, err, "(plugin pretty-name)")
	assert.ErrorContains(t, err, "null handle")
}

func TestCustomModuleName(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	reg, err := hostfuncs.NewRegistry(hostfuncs.WithBundle(hostfuncs.SaberBundle(world.New())))
	require.NoError(t, err)
	require.NoError(t, RegisterWithRuntime(ctx, rt, reg, WithModuleName("game")))

	b := wasmtest.New()
	left := b.Import("game", "_get_left_saber", nil, []catalog.ValueType{catalog.I32})
	b.Func("left", nil, []catalog.ValueType{catalog.I32}, wasmtest.Call(left))

	mod, err := rt.Instantiate(ctx, b.Bytes())
	require.NoError(t, err)
	res, err := mod.ExportedFunction("left").Call(ctx)
	require.NoError(t, err)
	assert.NotZero(t, api.DecodeI32(res[0]))
}
