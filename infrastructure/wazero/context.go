package wazero

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

type pluginNameKey struct{}

// WithPluginName names the plugin for host calls made under ctx.
// Host functions use the name in logs and trap errors.
func WithPluginName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, pluginNameKey{}, name)
}

// pluginName returns the name set by WithPluginName, falling back to the module name.
func pluginName(ctx context.Context, mod api.Module) string {
	if name, ok := ctx.Value(pluginNameKey{}).(string); ok && name != "" {
		return name
	}
	return mod.Name()
}
