// Package log writes plugin log lines to the host.
//
// Every line crosses the boundary through the single _log entry point as
// "<severity>: <text>", where severity is debug, info, warning or error.
// The package also provides a log/slog handler that does the same.
package log

import (
	"fmt"

	"github.com/reglet-dev/turing-sdk/internal/binding"
)

// Severity is the prefix the host uses to pick a log level.
type Severity string

const (
	SeverityDebug   Severity = "debug"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Line formats message the way the host expects it.
func Line(s Severity, message string) string {
	return string(s) + ": " + message
}

func write(s Severity, message string) {
	binding.Host().Log(Line(s, message))
}

func Info(message string) {
	write(SeverityInfo, message)
}

func Warning(message string) {
	write(SeverityWarning, message)
}

func Error(message string) {
	write(SeverityError, message)
}

func Debug(message string) {
	write(SeverityDebug, message)
}

// Infof formats according to a format specifier and logs at info.
func Infof(format string, args ...any) {
	write(SeverityInfo, fmt.Sprintf(format, args...))
}

func Warningf(format string, args ...any) {
	write(SeverityWarning, fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	write(SeverityError, fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) {
	write(SeverityDebug, fmt.Sprintf(format, args...))
}
