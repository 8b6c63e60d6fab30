// Package catalog implements the canonical product collection.
//
// The store is populated exactly once at startup and read-only afterwards.
// It performs no I/O itself; the seed loader hands it the embedded product
// data, and the engine owns that wiring.
//
// # Basic Usage
//
//	store := catalog.NewStore()
//
//	products, err := catalog.Seed()
//	if err != nil {
//	    return err
//	}
//	store.Load(products)
//
//	p, ok := store.FindByID(3)
//
// Lookups resolve duplicate IDs first-match-wins; the store deliberately
// does not validate uniqueness.
package catalog
