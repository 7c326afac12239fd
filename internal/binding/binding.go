// Package binding holds the host implementation the SDK's wrappers forward to.
//
// The imports a plugin declares are process-wide by nature, so the binding is
// too. Tests swap it for an in-memory host with Swap.
package binding

import (
	"sync"

	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/infrastructure/wasm"
)

var current = struct {
	host ports.Host
	sync.RWMutex
}{
	host: wasm.NewHostAdapter(),
}

// Host returns the host every wrapper call goes to.
func Host() ports.Host {
	current.RLock()
	defer current.RUnlock()
	return current.host
}

// Swap installs h and returns a function restoring the previous host.
func Swap(h ports.Host) (restore func()) {
	current.Lock()
	prev := current.host
	current.host = h
	current.Unlock()

	return func() {
		current.Lock()
		current.host = prev
		current.Unlock()
	}
}
