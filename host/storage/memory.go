// Package storage provides the reference host's persistent key/value stores.
//
// Each StoreKind is its own key space: storing "score" as an i32 does not
// make "score" visible to the f32 or str accessors.
package storage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

// MemoryStore keeps plugin data in memory for the lifetime of the process.
type MemoryStore struct {
	spaces map[entities.StoreKind]map[string]entities.StoredValue
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{spaces: make(map[entities.StoreKind]map[string]entities.StoredValue)}
	for _, k := range entities.StoreKinds() {
		s.spaces[k] = make(map[string]entities.StoredValue)
	}
	return s
}

var _ ports.PersistentStore = (*MemoryStore)(nil)

// Lookup implements ports.PersistentStore.
func (s *MemoryStore) Lookup(kind entities.StoreKind, key string) (entities.StoredValue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.spaces[kind][key]
	return v, ok
}

// Put implements ports.PersistentStore.
func (s *MemoryStore) Put(key string, value entities.StoredValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	space, ok := s.spaces[value.Kind]
	if !ok {
		return fmt.Errorf("unknown store kind %d", value.Kind)
	}
	space[key] = value
	return nil
}

// Delete implements ports.PersistentStore.
func (s *MemoryStore) Delete(kind entities.StoreKind, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.spaces[kind], key)
	return nil
}

// Keys implements ports.PersistentStore.
func (s *MemoryStore) Keys(kind entities.StoreKind) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.spaces[kind]))
	for k := range s.spaces[kind] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries across all key spaces.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, space := range s.spaces {
		n += len(space)
	}
	return n
}
