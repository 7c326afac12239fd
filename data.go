package turing

import (
	"github.com/reglet-dev/turing-sdk/scratch"
	"github.com/reglet-dev/turing-sdk/store"
)

// Data bundles a plugin's transient scratch values with the host's
// persistent store. The zero value is ready to use. A Data is owned by the
// code driving the plugin and handed to whatever needs it.
type Data struct {
	scratch.Map
	store.Persistent
}

// SetTemp stores a transient value under key.
func (d *Data) SetTemp(key string, v any) {
	scratch.Set(&d.Map, key, v)
}

// RemoveTemp deletes a transient value.
func (d *Data) RemoveTemp(key string) {
	d.Map.Remove(key)
}

// GetTemp returns the transient value under key if it is a T.
func GetTemp[T any](d *Data, key string) (T, bool) {
	return scratch.Get[T](&d.Map, key)
}
