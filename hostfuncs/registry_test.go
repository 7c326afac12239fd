package hostfuncs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
)

func constant(name string, v int32) Function {
	return Function{
		Name:    name,
		Results: []catalog.ValueType{catalog.I32},
		Handler: func(_ context.Context, _ Guest, stack Stack) error {
			stack.SetI32(0, v)
			return nil
		},
	}
}

func TestNewRegistry_Names(t *testing.T) {
	reg, err := NewRegistry(
		WithFunction(constant("b", 2)),
		WithFunction(constant("a", 1)),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, reg.Names())
	assert.True(t, reg.Has("a"))
	assert.False(t, reg.Has("c"))

	stack := make(Stack, 1)
	require.NoError(t, reg.Invoke(context.Background(), "b", newFakeGuest(), stack))
	assert.Equal(t, int32(2), stack.I32(0))
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []RegistryOption
	}{
		{name: "duplicate", opts: []RegistryOption{WithFunction(constant("a", 1)), WithFunction(constant("a", 2))}},
		{name: "empty name", opts: []RegistryOption{WithFunction(constant("", 1))}},
		{name: "nil handler", opts: []RegistryOption{WithFunction(Function{Name: "x"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestInvoke_NotFound(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	err = reg.Invoke(context.Background(), "_nope", newFakeGuest(), nil)
	assert.ErrorIs(t, err, ErrFunctionNotFound)
}

func TestMiddleware_Order(t *testing.T) {
	var order []string
	mark := func(tag string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, g Guest, s Stack) error {
				order = append(order, tag+":"+FunctionName(ctx))
				return next(ctx, g, s)
			}
		}
	}

	reg, err := NewRegistry(
		WithMiddleware(mark("outer"), mark("inner")),
		WithFunction(constant("f", 0)),
	)
	require.NoError(t, err)
	require.NoError(t, reg.Invoke(context.Background(), "f", newFakeGuest(), make(Stack, 1)))

	assert.Equal(t, []string{"outer:f", "inner:f"}, order)
}

func TestTrapMiddleware(t *testing.T) {
	failing := Function{Name: "fails", Handler: func(context.Context, Guest, Stack) error {
		return hosterrors.ErrStaleHandle
	}}
	panicking := Function{Name: "panics", Handler: func(context.Context, Guest, Stack) error {
		panic("boom")
	}}

	reg, err := NewRegistry(WithMiddleware(TrapMiddleware()), WithFunction(failing), WithFunction(panicking))
	require.NoError(t, err)

	err = reg.Invoke(context.Background(), "fails", newFakeGuest(), nil)
	var hostErr *HostError
	require.True(t, errors.As(err, &hostErr))
	assert.Equal(t, "fails", hostErr.Function)
	assert.Equal(t, "fake", hostErr.Plugin)
	assert.ErrorIs(t, err, hosterrors.ErrStaleHandle)
	assert.Equal(t, "host function fails (plugin fake): stale handle", err.Error())

	err = reg.Invoke(context.Background(), "panics", newFakeGuest(), nil)
	require.True(t, errors.As(err, &hostErr))
	var panicErr *PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "boom", panicErr.Value)
	assert.Equal(t, "panic", hosterrors.CodeOf(err))
}

func TestTracingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	failing := Function{Name: "fails", Handler: func(context.Context, Guest, Stack) error {
		return errors.New("nope")
	}}

	reg, err := NewRegistry(
		WithMiddleware(TracingMiddleware(zap.New(core))),
		WithFunction(constant("ok", 1)),
		WithFunction(failing),
	)
	require.NoError(t, err)

	require.NoError(t, reg.Invoke(context.Background(), "ok", newFakeGuest(), make(Stack, 1)))
	require.Error(t, reg.Invoke(context.Background(), "fails", newFakeGuest(), nil))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "ok", entries[0].ContextMap()["function"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "nope", entries[1].ContextMap()["error"])
}

func TestHostContext(t *testing.T) {
	assert.Equal(t, "unknown", FunctionName(context.Background()))
	assert.Equal(t, "_log", FunctionName(NewHostContext(context.Background(), "_log")))
}

func TestMaxStringSize(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, uint32(DefaultMaxStringSize), MaxStringSize(ctx))
	assert.Equal(t, uint32(16), MaxStringSize(WithMaxStringSize(ctx, 16)))
	assert.Equal(t, uint32(DefaultMaxStringSize), MaxStringSize(WithMaxStringSize(ctx, 0)))

	// The bound survives the host context wrapper.
	assert.Equal(t, uint32(16), MaxStringSize(NewHostContext(WithMaxStringSize(ctx, 16), "_log")))
}
