package hostfuncs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Middleware wraps a Handler to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
type Middleware func(next Handler) Handler

// TrapMiddleware turns every failure of the wrapped handler, including a
// panic, into a *HostError naming the function and the calling plugin.
func TrapMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, guest Guest, stack Stack) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &PanicError{Value: r}
				}
				if err == nil {
					return
				}
				var hostErr *HostError
				if !errors.As(err, &hostErr) {
					err = &HostError{Function: FunctionName(ctx), Plugin: guest.Name(), Err: err}
				}
			}()
			return next(ctx, guest, stack)
		}
	}
}

// TracingMiddleware logs every host call at debug level and every failed
// call at warn level.
func TracingMiddleware(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, guest Guest, stack Stack) error {
			start := time.Now()
			err := next(ctx, guest, stack)

			fields := []zap.Field{
				zap.String("function", FunctionName(ctx)),
				zap.String("plugin", guest.Name()),
				zap.Duration("elapsed", time.Since(start)),
			}
			if err != nil {
				logger.Warn("host call failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("host call", fields...)
			return nil
		}
	}
}
