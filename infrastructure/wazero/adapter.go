package wazero

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/hostfuncs"
)

// ErrMissingMalloc is returned when a plugin does not export _malloc.
var ErrMissingMalloc = errors.New("guest module missing " + catalog.ExportMalloc + " export")

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// Logger receives one entry per trapped call. Default is a no-op logger.
	Logger *zap.Logger

	// ModuleName is the host module name (default: "env").
	ModuleName string

	// MaxStringSize bounds C strings read from guest memory.
	MaxStringSize uint32
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "env").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// WithMaxStringSize sets the maximum C string length read from guest memory.
func WithMaxStringSize(size uint32) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxStringSize = size
	}
}

// WithLogger sets the logger for trapped calls.
func WithLogger(logger *zap.Logger) AdapterOption {
	return func(c *AdapterConfig) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		Logger:        zap.NewNop(),
		ModuleName:    catalog.HostModule,
		MaxStringSize: hostfuncs.DefaultMaxStringSize,
	}
}

// RegisterWithRuntime instantiates a host module exporting every function of
// registry under its catalogue name and signature.
//
// Example:
//
//	registry, _ := hostfuncs.NewRegistry(
//	    hostfuncs.WithBundle(hostfuncs.AllBundles(world, store, logger)),
//	)
//	err := wazero.RegisterWithRuntime(ctx, runtime, registry)
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, registry *hostfuncs.HandlerRegistry, opts ...AdapterOption) error {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)
	for _, name := range registry.Names() {
		fn, _ := registry.Function(name)
		funcName := name // capture for closure
		builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
				handleCall(ctx, mod, stack, registry, funcName, &cfg)
			}), valueTypes(fn.Params), valueTypes(fn.Results)).
			WithName(funcName).
			Export(funcName)
	}

	if _, err := builder.Instantiate(ctx); err != nil {
		return fmt.Errorf("failed to instantiate host module %q: %w", cfg.ModuleName, err)
	}
	return nil
}

// handleCall dispatches one guest call and traps the guest if it fails.
func handleCall(ctx context.Context, mod api.Module, stack []uint64, registry *hostfuncs.HandlerRegistry, name string, cfg *AdapterConfig) {
	ctx = hostfuncs.WithMaxStringSize(ctx, cfg.MaxStringSize)
	guest := &moduleGuest{mod: mod, name: pluginName(ctx, mod)}

	if err := registry.Invoke(ctx, name, guest, hostfuncs.Stack(stack)); err != nil {
		cfg.Logger.Debug("trapping guest", zap.String("function", name), zap.String("plugin", guest.name), zap.Error(err))
		panic(err)
	}
}

func valueTypes(types []catalog.ValueType) []api.ValueType {
	out := make([]api.ValueType, len(types))
	for i, t := range types {
		out[i] = api.ValueType(t)
	}
	return out
}

// moduleGuest adapts an instantiated module to hostfuncs.Guest.
type moduleGuest struct {
	mod  api.Module
	name string
}

func (g *moduleGuest) Name() string {
	return g.name
}

func (g *moduleGuest) Memory() hostfuncs.Memory {
	mem := g.mod.Memory()
	if mem == nil {
		return emptyMemory{}
	}
	return mem
}

func (g *moduleGuest) Malloc(ctx context.Context, size uint32) (uint32, error) {
	malloc := g.mod.ExportedFunction(catalog.ExportMalloc)
	if malloc == nil {
		return 0, ErrMissingMalloc
	}
	results, err := malloc.Call(ctx, uint64(size))
	if err != nil {
		return 0, fmt.Errorf("guest %s failed: %w", catalog.ExportMalloc, err)
	}
	return api.DecodeU32(results[0]), nil
}

// emptyMemory stands in for a module that exports no memory; every access is out of bounds.
type emptyMemory struct{}

func (emptyMemory) Size() uint32                    { return 0 }
func (emptyMemory) Read(_, _ uint32) ([]byte, bool) { return nil, false }
func (emptyMemory) Write(_ uint32, _ []byte) bool   { return false }
