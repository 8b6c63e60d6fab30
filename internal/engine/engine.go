// Package engine wires the catalog store, view pipeline, cart ledger, and
// checkout simulation into one owned instance per running session. Nothing
// here is ambient or global: hosts construct an Engine, use it, close it.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/techgear-labs/techgear/internal/cart"
	"github.com/techgear-labs/techgear/internal/catalog"
	"github.com/techgear-labs/techgear/internal/checkout"
	"github.com/techgear-labs/techgear/internal/config"
	"github.com/techgear-labs/techgear/internal/notify"
	"github.com/techgear-labs/techgear/internal/storage"
	"github.com/techgear-labs/techgear/internal/view"
	"github.com/techgear-labs/techgear/pkg/types"
)

// BrowseResult pairs a derived product page with the state that produced it.
type BrowseResult struct {
	Products []types.Product
	Total    int
	HasMore  bool
	State    types.ViewState
}

// Engine is one session's state-and-transformation engine.
type Engine struct {
	logger   *slog.Logger
	store    storage.Storage
	catalog  *catalog.Store
	pipeline *view.Pipeline
	ledger   *cart.Ledger
	sim      *checkout.Simulator

	mu      sync.Mutex
	seq     view.Sequencer
	state   types.ViewState
	current BrowseResult
}

// New opens the configured storage and builds a fully wired engine.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, notifier notify.Notifier) (*Engine, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	e, err := NewWithStorage(ctx, cfg, logger, notifier, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return e, nil
}

// NewWithStorage builds an engine over existing storage, for hosts and tests
// that manage the storage lifecycle themselves. The seed catalog is loaded
// and the cart rehydrated before the engine is handed out, so the first
// render always sees both.
func NewWithStorage(ctx context.Context, cfg config.Config, logger *slog.Logger, notifier notify.Notifier, store storage.Storage) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	cat := catalog.NewStore()
	ledger := cart.NewLedger(cat, store, notifier, logger)

	failureRate := cfg.CheckoutFailureRate
	sim := checkout.New(ledger, notifier, logger, checkout.Options{
		FailureRate: &failureRate,
		Delay:       time.Duration(cfg.CheckoutDelayMS) * time.Millisecond,
	})

	e := &Engine{
		logger:   logger,
		store:    store,
		catalog:  cat,
		pipeline: view.New(view.Options{PageSize: cfg.PageSize}),
		ledger:   ledger,
		sim:      sim,
		state:    types.ViewState{Page: 1},
	}

	// Seed load and cart rehydration are independent; do both before the
	// first cart-dependent render.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := catalog.Seed()
		if err != nil {
			return err
		}
		cat.Load(products)
		logger.Info("catalog loaded", "products", len(products))
		return nil
	})
	g.Go(func() error {
		ledger.Rehydrate(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.current = e.compute(e.state)
	return e, nil
}

// Close releases the engine's storage.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Browse applies new filter parameters. Any filter or sort change resets the
// view to page 1 so a stale window can never be extended. An empty sort key
// defaults to name order; an unknown one degrades to identity order.
func (e *Engine) Browse(category string, maxPrice *float64, sortKey string) BrowseResult {
	sort := types.SortKey(sortKey)
	if sortKey == "" {
		sort = types.SortName
	} else if !sort.Valid() {
		e.logger.Warn("unknown sort key, using identity order", "sort", sortKey)
	}

	e.mu.Lock()
	e.state = types.ViewState{Category: category, MaxPrice: maxPrice, Sort: sort, Page: 1}
	state := e.state
	seq := e.seq.Next()
	e.mu.Unlock()

	return e.derive(state, seq)
}

// LoadMore extends the cumulative window by one page.
func (e *Engine) LoadMore() BrowseResult {
	e.mu.Lock()
	e.state = e.state.WithPage(e.state.Page + 1)
	state := e.state
	seq := e.seq.Next()
	e.mu.Unlock()

	return e.derive(state, seq)
}

// View returns the most recently applied browse result.
func (e *Engine) View() BrowseResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// derive runs the pipeline for the given state and applies the result unless
// a later derivation has already landed, in which case the later view wins.
// The stamp is issued inside the same critical section that set the state,
// so stamp order always agrees with state-mutation order.
func (e *Engine) derive(state types.ViewState, seq uint64) BrowseResult {
	res := e.compute(state)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.seq.Apply(seq) {
		e.current = res
		return res
	}
	return e.current
}

func (e *Engine) compute(state types.ViewState) BrowseResult {
	page := e.pipeline.Derive(e.catalog.All(), e.catalog.Version(), state)
	return BrowseResult{
		Products: page.Products,
		Total:    page.Total,
		HasMore:  page.HasMore,
		State:    state,
	}
}

// Product looks a product up by ID, first match wins.
func (e *Engine) Product(id int64) (types.Product, bool) {
	return e.catalog.FindByID(id)
}

// Catalog exposes the product store for read-only use.
func (e *Engine) Catalog() *catalog.Store {
	return e.catalog
}

// AddToCart puts one unit of the product in the cart. Unknown IDs are a
// logged no-op.
func (e *Engine) AddToCart(ctx context.Context, productID int64) {
	e.ledger.Add(ctx, productID)
}

// RemoveFromCart deletes the product's line; absent is a no-op.
func (e *Engine) RemoveFromCart(ctx context.Context, productID int64) {
	e.ledger.Remove(ctx, productID)
}

// SetCartQuantity sets a line's quantity; zero or less removes the line.
func (e *Engine) SetCartQuantity(ctx context.Context, productID int64, quantity int) {
	e.ledger.SetQuantity(ctx, productID, quantity)
}

// ClearCart empties the cart.
func (e *Engine) ClearCart(ctx context.Context) {
	e.ledger.Clear(ctx)
}

// CartLines returns the cart lines in insertion order.
func (e *Engine) CartLines() []types.CartLine {
	return e.ledger.Lines()
}

// CartTotals returns the aggregate item count and subtotal.
func (e *Engine) CartTotals() types.Totals {
	return e.ledger.Totals()
}

// Checkout runs the simulated checkout flow.
func (e *Engine) Checkout(ctx context.Context) checkout.Result {
	return e.sim.Checkout(ctx)
}
