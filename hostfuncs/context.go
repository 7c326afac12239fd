package hostfuncs

import (
	"context"
)

// HostContext carries the name of the host function being invoked.
type HostContext interface {
	context.Context

	// FunctionName returns the name of the host function being invoked.
	FunctionName() string
}

type hostContext struct {
	context.Context
	funcName string
}

// NewHostContext wraps ctx for a call to funcName.
func NewHostContext(ctx context.Context, funcName string) HostContext {
	return &hostContext{Context: ctx, funcName: funcName}
}

func (c *hostContext) FunctionName() string {
	return c.funcName
}

// FunctionName returns the host function name carried by ctx, or "unknown".
func FunctionName(ctx context.Context) string {
	if hc, ok := ctx.(HostContext); ok {
		return hc.FunctionName()
	}
	return "unknown"
}

type maxStringSizeKey struct{}

// WithMaxStringSize bounds the C strings host functions read during calls made with ctx.
func WithMaxStringSize(ctx context.Context, n uint32) context.Context {
	return context.WithValue(ctx, maxStringSizeKey{}, n)
}

// MaxStringSize returns the string bound carried by ctx, or DefaultMaxStringSize.
func MaxStringSize(ctx context.Context) uint32 {
	if n, ok := ctx.Value(maxStringSizeKey{}).(uint32); ok && n > 0 {
		return n
	}
	return DefaultMaxStringSize
}
