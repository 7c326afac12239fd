package hostfuncs

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
)

// severities maps the guest's log prefixes to zap levels.
var severities = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// ParseLogLine splits a guest log line of the form "<severity>: <text>".
// A line without a known severity is logged at info level unchanged.
func ParseLogLine(line string) (zapcore.Level, string) {
	prefix, text, ok := strings.Cut(line, ": ")
	if !ok {
		return zapcore.InfoLevel, line
	}
	level, known := severities[prefix]
	if !known {
		return zapcore.InfoLevel, line
	}
	return level, text
}

// LogBundle serves _log, writing each plugin line to logger at the level
// named by its prefix.
func LogBundle(logger *zap.Logger) Bundle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return bindOps([]catalog.Op{catalog.OpLog}, func(catalog.EntryPoint) Handler {
		return func(ctx context.Context, guest Guest, stack Stack) error {
			line, err := ReadCString(guest.Memory(), stack.Ptr(0), MaxStringSize(ctx))
			if err != nil {
				return err
			}
			level, text := ParseLogLine(line)
			if ce := logger.Check(level, text); ce != nil {
				ce.Write(zap.String("plugin", guest.Name()))
			}
			return nil
		}
	})
}
