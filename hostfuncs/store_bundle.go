package hostfuncs

import (
	"context"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

// StoreBundle serves the persistent store entry points for every value type:
// _data_contains_persistent_*, _data_store_persistent_*,
// _data_access_persistent_*, _data_remove_persistent_*.
//
// Keys arrive as C strings in guest memory. String values are returned in a
// block allocated through the guest's _malloc; the guest owns and frees it.
func StoreBundle(store ports.PersistentStore) Bundle {
	ops := []catalog.Op{catalog.OpStoreContains, catalog.OpStoreSet, catalog.OpStoreAccess, catalog.OpStoreRemove}
	return bindOps(ops, func(ep catalog.EntryPoint) Handler {
		kind := ep.Store
		switch ep.Op {
		case catalog.OpStoreContains:
			return func(ctx context.Context, guest Guest, stack Stack) error {
				key, err := ReadCString(guest.Memory(), stack.Ptr(0), MaxStringSize(ctx))
				if err != nil {
					return err
				}
				_, ok := store.Lookup(kind, key)
				stack.SetI32(0, boolI32(ok))
				return nil
			}
		case catalog.OpStoreSet:
			return func(ctx context.Context, guest Guest, stack Stack) error {
				key, err := ReadCString(guest.Memory(), stack.Ptr(0), MaxStringSize(ctx))
				if err != nil {
					return err
				}
				var value entities.StoredValue
				switch kind {
				case entities.StoreI32:
					value = entities.IntValue(stack.I32(1))
				case entities.StoreF32:
					value = entities.FloatValue(stack.F32(1))
				default:
					s, err := ReadCString(guest.Memory(), stack.Ptr(1), MaxStringSize(ctx))
					if err != nil {
						return err
					}
					value = entities.StringValue(s)
				}
				return store.Put(key, value)
			}
		case catalog.OpStoreAccess:
			return func(ctx context.Context, guest Guest, stack Stack) error {
				key, err := ReadCString(guest.Memory(), stack.Ptr(0), MaxStringSize(ctx))
				if err != nil {
					return err
				}
				value, ok := store.Lookup(kind, key)
				if !ok {
					return &hosterrors.StoreError{Op: "access", Key: key, Kind: kind, Err: hosterrors.ErrMissingKey}
				}
				switch kind {
				case entities.StoreI32:
					stack.SetI32(0, value.Int)
				case entities.StoreF32:
					stack.SetF32(0, value.Float)
				default:
					ptr, err := WriteCString(ctx, guest, value.Str)
					if err != nil {
						return err
					}
					stack.SetI32(0, int32(ptr)) //nolint:gosec // G115: wasm32 pointers are 32-bit
				}
				return nil
			}
		default:
			return func(ctx context.Context, guest Guest, stack Stack) error {
				key, err := ReadCString(guest.Memory(), stack.Ptr(0), MaxStringSize(ctx))
				if err != nil {
					return err
				}
				return store.Delete(kind, key)
			}
		}
	})
}
