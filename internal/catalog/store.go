package catalog

import (
	"sync"

	"github.com/techgear-labs/techgear/pkg/types"
)

// Store owns the canonical product collection. It is populated once at
// startup by an external loader and treated as read-only afterwards.
type Store struct {
	mu       sync.RWMutex
	products []types.Product
	version  uint64
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the canonical collection with a copy of the given products.
// No uniqueness validation is performed; duplicate IDs are permitted at this
// layer and FindByID resolves them first-match-wins.
func (s *Store) Load(products []types.Product) {
	cp := make([]types.Product, len(products))
	copy(cp, products)

	s.mu.Lock()
	s.products = cp
	s.version++
	s.mu.Unlock()
}

// All returns a snapshot of the collection. Mutating the returned slice does
// not affect the store, and later loads are not observable through it.
func (s *Store) All() []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]types.Product, len(s.products))
	copy(cp, s.products)
	return cp
}

// FindByID returns the first product with the given ID.
func (s *Store) FindByID(id int64) (types.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return types.Product{}, false
}

// Len returns the number of products currently loaded.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Version increments on every Load. Derived-view caches key off it so a
// reload can never serve a stale window.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
