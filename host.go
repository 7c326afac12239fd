package turing

import (
	"github.com/reglet-dev/turing-sdk/domain/ports"
	"github.com/reglet-dev/turing-sdk/internal/binding"
)

// SetHost routes every wrapper call to h and returns a function that
// restores the previous host. Inside the game the default host is the
// module's imports; tests usually call turingtest.Install instead.
func SetHost(h ports.Host) (restore func()) {
	return binding.Swap(h)
}
