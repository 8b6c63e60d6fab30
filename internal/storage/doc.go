// Package storage provides SQLite-based persistence for the cart.
//
// The engine owns exactly one piece of durable state: the serialized cart,
// stored as JSON in a named key-value slot. The slot is small, replaceable,
// and safe to lose.
//
// # Database Schema
//
// Tables:
//   - schema_version: applied migration versions
//   - kv_slots: named slots; the cart lives under "techgear-cart"
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage("~/.techgear/techgear.db", logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	if err := store.SaveCart(ctx, ledger.Lines()); err != nil {
//	    // non-fatal: log and continue, the in-memory cart stays authoritative
//	}
//
//	lines, err := store.LoadCart(ctx)
//
// # Failure Semantics
//
// Save failures are reported to the caller but are non-fatal by contract:
// the attempted write is simply lost. Load treats an absent slot as an
// empty cart and a corrupted slot (unparseable JSON, or lines violating
// the quantity invariant) the same way, after logging a diagnostic.
// Corrupted state must never block startup.
//
// # Build Tags
//
// The storage package supports two build configurations:
//
// CGO Build (sqlite_cgo tag):
//
//   - Uses github.com/mattn/go-sqlite3 driver
//
//   - Requires C compiler
//
//     CGO_ENABLED=1 go build -tags "sqlite_cgo"
//
// Pure Go Build (default):
//
//   - Uses modernc.org/sqlite driver
//
//   - No C compiler needed
//
//     CGO_ENABLED=0 go build
package storage
