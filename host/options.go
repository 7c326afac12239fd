package host

import (
	"io"

	"go.uber.org/zap"

	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/host/world"
	"github.com/reglet-dev/turing-sdk/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithLogger sets the host logger. Plugin log lines go to its "plugin" child.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStore sets the persistent store. Default is an in-memory store.
func WithStore(store ports.PersistentStore) Option {
	return func(e *Executor) {
		e.store = store
	}
}

// WithWorld sets the game world. Default is world.New().
func WithWorld(w *world.World) Option {
	return func(e *Executor) {
		e.world = w
	}
}

// WithRegistryOptions adds registry options after the built-in bundles, for
// extra functions or middleware.
func WithRegistryOptions(opts ...hostfuncs.RegistryOption) Option {
	return func(e *Executor) {
		e.registryOpts = append(e.registryOpts, opts...)
	}
}

// WithMaxStringSize bounds C strings read from plugin memory.
func WithMaxStringSize(n uint32) Option {
	return func(e *Executor) {
		e.maxStringSize = n
	}
}

// WithOutput sets where plugins' WASI stdout and stderr go. Default is discard.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}
