package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/techgear-labs/techgear/internal/catalog"
	"github.com/techgear-labs/techgear/internal/notify"
	"github.com/techgear-labs/techgear/internal/storage"
	"github.com/techgear-labs/techgear/pkg/types"
)

// Ledger owns the cart lines for one session, in insertion order. All
// mutations are serialized by a single mutex and applied in invocation
// order; each mutation's persistence write is issued only after its
// in-memory effect is visible, so memory is always at least as fresh as
// the last successful write.
//
// Every operation is total: lookups that miss and storage failures are
// absorbed here and surface only as logged diagnostics.
type Ledger struct {
	mu       sync.Mutex
	lines    []types.CartLine
	catalog  *catalog.Store
	store    storage.Storage
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewLedger creates an empty ledger. The notifier and logger may be nil;
// defaults are substituted.
func NewLedger(cat *catalog.Store, store storage.Storage, notifier notify.Notifier, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}
	return &Ledger{
		catalog:  cat,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Rehydrate replaces the cart with the persisted lines. Called exactly once
// at startup, before the first cart-dependent read. Any load failure yields
// an empty cart, never an error: corrupted or missing state must not block
// startup.
func (l *Ledger) Rehydrate(ctx context.Context) {
	lines, err := l.store.LoadCart(ctx)
	if err != nil {
		l.logger.Warn("failed to load persisted cart, starting empty", "error", err)
		return
	}

	l.mu.Lock()
	l.lines = lines
	l.mu.Unlock()
}

// Add puts one unit of the product in the cart. An unknown product ID is a
// logged no-op, not an error to the caller. The product's name and price
// are snapshotted on the first add; repeated adds only increment quantity.
func (l *Ledger) Add(ctx context.Context, productID int64) {
	product, ok := l.catalog.FindByID(productID)
	if !ok {
		l.logger.Error("add to cart failed", "productId", productID, "error", types.ErrProductNotFound)
		return
	}

	l.mu.Lock()
	if line := l.findLocked(productID); line != nil {
		line.Quantity++
	} else {
		l.lines = append(l.lines, types.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		})
	}
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.persist(ctx, snapshot)
	l.notifier.Notify(notify.SeverityInfo, fmt.Sprintf("%s added to cart!", product.Name))
}

// Remove deletes the line for the product if present. Removing an absent
// product is a no-op, and doing it twice is the same as doing it once.
func (l *Ledger) Remove(ctx context.Context, productID int64) {
	l.mu.Lock()
	removed := l.removeLocked(productID)
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	if removed {
		l.persist(ctx, snapshot)
	}
}

// SetQuantity sets the line quantity directly. A quantity of zero or less
// removes the line; a zero-quantity line is never retained.
func (l *Ledger) SetQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		l.Remove(ctx, productID)
		return
	}

	l.mu.Lock()
	line := l.findLocked(productID)
	if line == nil {
		l.mu.Unlock()
		l.logger.Warn("set quantity on product not in cart", "productId", productID)
		return
	}
	line.Quantity = quantity
	snapshot := l.snapshotLocked()
	l.mu.Unlock()

	l.persist(ctx, snapshot)
}

// Clear empties the cart.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()

	l.persist(ctx, nil)
	l.notifier.Notify(notify.SeverityInfo, "Cart cleared!")
}

// Totals returns the aggregate item count and subtotal, computed from the
// snapshotted prices, not the live catalog.
func (l *Ledger) Totals() types.Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return types.TotalsOf(l.lines)
}

// Lines returns a copy of the cart lines in insertion order.
func (l *Ledger) Lines() []types.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Len returns the number of distinct lines.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func (l *Ledger) findLocked(productID int64) *types.CartLine {
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			return &l.lines[i]
		}
	}
	return nil
}

func (l *Ledger) removeLocked(productID int64) bool {
	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) snapshotLocked() []types.CartLine {
	cp := make([]types.CartLine, len(l.lines))
	copy(cp, l.lines)
	return cp
}

// persist mirrors the snapshot to storage. Failures are logged and dropped
// with no retry; the in-memory cart stays authoritative for the session.
func (l *Ledger) persist(ctx context.Context, lines []types.CartLine) {
	if err := l.store.SaveCart(ctx, lines); err != nil {
		l.logger.Warn("failed to persist cart", "error", err)
	}
}
