package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/host/storage"
	"github.com/reglet-dev/turing-sdk/host/world"
	"github.com/reglet-dev/turing-sdk/hostfuncs"
	wazeroadapter "github.com/reglet-dev/turing-sdk/infrastructure/wazero"
)

// ErrNoEntryPoint is returned by Run for a module exporting neither _start nor _initialize.
var ErrNoEntryPoint = errors.New("plugin exports neither _start nor _initialize")

// Executor manages the lifecycle of plugins sharing one world and store.
type Executor struct {
	runtime       wazero.Runtime
	registry      *hostfuncs.HandlerRegistry
	world         *world.World
	store         ports.PersistentStore
	logger        *zap.Logger
	stdout        io.Writer
	stderr        io.Writer
	registryOpts  []hostfuncs.RegistryOption
	maxStringSize uint32
}

// NewExecutor creates a runtime with WASI and the catalogue's host module.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{
		logger:        zap.NewNop(),
		stdout:        io.Discard,
		stderr:        io.Discard,
		maxStringSize: hostfuncs.DefaultMaxStringSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.world == nil {
		e.world = world.New()
	}
	if e.store == nil {
		e.store = storage.NewMemoryStore()
	}

	regOpts := []hostfuncs.RegistryOption{
		hostfuncs.WithMiddleware(hostfuncs.TrapMiddleware(), hostfuncs.TracingMiddleware(e.logger)),
		hostfuncs.WithBundle(hostfuncs.AllBundles(e.world, e.store, e.logger.Named("plugin"))),
	}
	reg, err := hostfuncs.NewRegistry(append(regOpts, e.registryOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}
	if err := hostfuncs.Validate(reg); err != nil {
		return nil, fmt.Errorf("registry does not serve the catalogue: %w", err)
	}
	e.registry = reg

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	err = wazeroadapter.RegisterWithRuntime(ctx, rt, reg,
		wazeroadapter.WithLogger(e.logger),
		wazeroadapter.WithMaxStringSize(e.maxStringSize),
	)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// World returns the world plugins act on.
func (e *Executor) World() *world.World {
	return e.world
}

// Store returns the persistent store plugins read and write.
func (e *Executor) Store() ports.PersistentStore {
	return e.store
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// PluginInstance is an instantiated plugin.
type PluginInstance struct {
	module api.Module
	name   string
}

// Load instantiates a plugin without running it. A reactor's _initialize
// export is called; a command's _start is left to Run.
func (e *Executor) Load(ctx context.Context, name string, wasmBytes []byte) (*PluginInstance, error) {
	cfg := wazero.NewModuleConfig().
		WithName(name).
		WithArgs(name).
		WithStdout(e.stdout).
		WithStderr(e.stderr).
		WithStartFunctions()

	mod, err := e.runtime.InstantiateWithConfig(ctx, wasmBytes, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate plugin %s: %w", name, err)
	}
	p := &PluginInstance{module: mod, name: name}
	e.checkGuestExports(p)

	if mod.ExportedFunction("_initialize") != nil {
		if _, err := p.Call(ctx, "_initialize"); err != nil {
			_ = mod.Close(ctx)
			return nil, err
		}
	}
	return p, nil
}

// checkGuestExports warns about missing or mistyped memory-management exports.
// Plugins that never receive strings from the host run fine without them.
func (e *Executor) checkGuestExports(p *PluginInstance) {
	for _, want := range catalog.GuestExports() {
		fn := p.module.ExportedFunction(want.Name)
		if fn == nil {
			e.logger.Warn("plugin does not export "+want.Name, zap.String("plugin", p.name))
			continue
		}
		def := fn.Definition()
		if !slices.Equal(def.ParamTypes(), valueTypes(want.Params)) || !slices.Equal(def.ResultTypes(), valueTypes(want.Results)) {
			e.logger.Warn("plugin export has the wrong signature",
				zap.String("plugin", p.name), zap.String("export", want.Name))
		}
	}
}

func valueTypes(types []catalog.ValueType) []api.ValueType {
	out := make([]api.ValueType, len(types))
	for i, t := range types {
		out[i] = api.ValueType(t)
	}
	return out
}

// Run loads a plugin, runs it to completion and closes it.
// A command plugin exiting with status 0 is a success.
func (e *Executor) Run(ctx context.Context, name string, wasmBytes []byte) error {
	p, err := e.Load(ctx, name, wasmBytes)
	if err != nil {
		return err
	}
	defer p.Close(ctx)

	switch {
	case p.module.ExportedFunction("_start") != nil:
		_, err = p.Call(ctx, "_start")
		return err
	case p.module.ExportedFunction("_initialize") != nil:
		return nil
	default:
		return ErrNoEntryPoint
	}
}

// Name returns the plugin's name.
func (p *PluginInstance) Name() string {
	return p.name
}

// Call invokes an export of the plugin. Host calls made during it are
// attributed to the plugin's name.
func (p *PluginInstance) Call(ctx context.Context, export string, params ...uint64) ([]uint64, error) {
	fn := p.module.ExportedFunction(export)
	if fn == nil {
		return nil, fmt.Errorf("plugin %s does not export %s", p.name, export)
	}

	results, err := fn.Call(wazeroadapter.WithPluginName(ctx, p.name), params...)
	if err != nil {
		var exitErr *sys.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("plugin %s: %s failed: %w", p.name, export, err)
	}
	return results, nil
}

// Close releases the plugin's module.
func (p *PluginInstance) Close(ctx context.Context) error {
	return p.module.Close(ctx)
}
