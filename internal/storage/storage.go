package storage

import (
	"context"
	"errors"

	"github.com/techgear-labs/techgear/pkg/types"
)

var (
	// ErrUnavailable is returned when the storage medium cannot be reached.
	// Callers on non-essential paths log it and continue; the in-memory cart
	// remains the source of truth for the session.
	ErrUnavailable = errors.New("storage unavailable")
)

// Storage is the persistence boundary for durable cart state. The cart is
// serialized into a single named slot; no other on-disk state is owned by
// the engine.
type Storage interface {
	// SaveCart serializes the cart lines into the cart slot, replacing any
	// previous value.
	SaveCart(ctx context.Context, lines []types.CartLine) error

	// LoadCart returns the persisted cart lines. An absent slot yields
	// (nil, nil). A present but unparseable value also yields an empty cart:
	// corrupted state must never block startup.
	LoadCart(ctx context.Context) ([]types.CartLine, error)

	// Close releases the underlying storage.
	Close() error
}
