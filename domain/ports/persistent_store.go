package ports

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
)

// PersistentStore is the reference host's backing storage for plugin data.
// Entries of different StoreKind live in separate key spaces.
type PersistentStore interface {
	// Lookup returns the value stored under key for the kind.
	Lookup(kind entities.StoreKind, key string) (entities.StoredValue, bool)

	// Put stores a value under key in the value's key space.
	Put(key string, value entities.StoredValue) error

	// Delete removes key from the kind's key space. Deleting a missing key is not an error.
	Delete(kind entities.StoreKind, key string) error

	// Keys returns the sorted keys of the kind's key space.
	Keys(kind entities.StoreKind) []string
}
