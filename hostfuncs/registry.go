package hostfuncs

import (
	"context"
	"fmt"
	"sort"
)

// HandlerRegistry is an immutable collection of named host functions.
// Once created via NewRegistry, functions cannot be added or removed, so
// lookups during execution need no locking.
type HandlerRegistry struct {
	functions map[string]Function
	names     []string // sorted for consistent iteration
}

// registryBuilder accumulates configuration during registry construction.
type registryBuilder struct {
	functions  map[string]Function
	middleware []Middleware
	errors     []error
}

// RegistryOption is a functional option for configuring a HandlerRegistry.
type RegistryOption func(*registryBuilder)

// NewRegistry creates an immutable HandlerRegistry with the given options.
// Returns an error if any function name is registered twice.
//
// Example usage:
//
//	registry, err := NewRegistry(
//	    WithMiddleware(TrapMiddleware(), TracingMiddleware(logger)),
//	    WithBundle(AllBundles(world, store, logger)),
//	)
func NewRegistry(opts ...RegistryOption) (*HandlerRegistry, error) {
	b := &registryBuilder{functions: make(map[string]Function)}
	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	names := make([]string, 0, len(b.functions))
	for name := range b.functions {
		names = append(names, name)
	}
	sort.Strings(names)

	// First middleware wraps outermost.
	wrapped := make(map[string]Function, len(b.functions))
	for name, fn := range b.functions {
		h := fn.Handler
		for i := len(b.middleware) - 1; i >= 0; i-- {
			h = b.middleware[i](h)
		}
		fn.Handler = h
		wrapped[name] = fn
	}

	return &HandlerRegistry{functions: wrapped, names: names}, nil
}

// Invoke dispatches a host call by name.
func (r *HandlerRegistry) Invoke(ctx context.Context, name string, guest Guest, stack Stack) error {
	fn, ok := r.functions[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	return fn.Handler(NewHostContext(ctx, name), guest, stack)
}

// Function returns the registered function with its middleware applied.
func (r *HandlerRegistry) Function(name string) (Function, bool) {
	fn, ok := r.functions[name]
	return fn, ok
}

// Has returns true if a function with the given name is registered.
func (r *HandlerRegistry) Has(name string) bool {
	_, ok := r.functions[name]
	return ok
}

// Names returns a sorted list of all registered function names.
func (r *HandlerRegistry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

func (b *registryBuilder) addFunction(fn Function) error {
	if fn.Name == "" {
		return fmt.Errorf("host function name cannot be empty")
	}
	if fn.Handler == nil {
		return fmt.Errorf("host function %q has no handler", fn.Name)
	}
	if _, exists := b.functions[fn.Name]; exists {
		return fmt.Errorf("duplicate host function name: %q", fn.Name)
	}
	b.functions[fn.Name] = fn
	return nil
}

// WithFunction registers a single function.
func WithFunction(fn Function) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addFunction(fn); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}

// WithBundle registers every function of a bundle.
func WithBundle(bundle Bundle) RegistryOption {
	return func(b *registryBuilder) {
		for _, fn := range bundle.Functions() {
			if err := b.addFunction(fn); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}

// WithMiddleware adds middleware to the registry.
// Middleware executes in FIFO order (first added wraps first).
func WithMiddleware(mw ...Middleware) RegistryOption {
	return func(b *registryBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}
