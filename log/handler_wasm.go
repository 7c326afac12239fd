//go:build wasip1

package log

import "log/slog"

// init routes the default slog logger through the host.
func init() {
	slog.SetDefault(slog.New(NewHandler()))
}
