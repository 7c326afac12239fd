package hostfuncs

import (
	"go.uber.org/zap"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

// Bundle is a pre-configured set of related host functions.
type Bundle interface {
	Functions() []Function
}

// staticBundle implements Bundle with a fixed set of functions.
type staticBundle struct {
	functions []Function
}

func (b *staticBundle) Functions() []Function {
	return b.functions
}

// compositeBundle combines multiple bundles into one.
type compositeBundle struct {
	bundles []Bundle
}

func (b *compositeBundle) Functions() []Function {
	var out []Function
	for _, bundle := range b.bundles {
		out = append(out, bundle.Functions()...)
	}
	return out
}

// bindOps builds one function per catalogue entry point whose op is in ops.
func bindOps(ops []catalog.Op, bind func(catalog.EntryPoint) Handler) Bundle {
	want := make(map[catalog.Op]bool, len(ops))
	for _, op := range ops {
		want[op] = true
	}

	b := &staticBundle{}
	for _, ep := range catalog.EntryPoints() {
		if want[ep.Op] {
			b.functions = append(b.functions, fromEntryPoint(ep, bind(ep)))
		}
	}
	return b
}

// AllBundles returns every catalogue entry point backed by the given world,
// store and plugin log sink.
func AllBundles(world ports.World, store ports.PersistentStore, logger *zap.Logger) Bundle {
	return &compositeBundle{
		bundles: []Bundle{
			ObjectBundle(world),
			ValueBundle(world),
			SaberBundle(world),
			ReferenceBundle(world),
			StoreBundle(store),
			LogBundle(logger),
		},
	}
}
