// Package checkout implements the simulated checkout flow. There is no real
// payment integration: outcomes are randomized, and the only durable effect
// of a successful checkout is clearing the cart ledger.
package checkout

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/techgear-labs/techgear/internal/cart"
	"github.com/techgear-labs/techgear/internal/notify"
)

// DefaultFailureRate matches the original simulation's one-in-five
// gateway timeout.
const DefaultFailureRate = 0.2

// Result reports the outcome of one simulated checkout.
type Result struct {
	Placed  bool   `json:"placed"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}

// Options configures a Simulator.
type Options struct {
	// FailureRate in [0, 1]; nil uses DefaultFailureRate.
	FailureRate *float64
	// Delay simulates payment processing latency. Zero means none.
	Delay time.Duration
	// Seed for the outcome generator; zero seeds from the clock.
	Seed int64
}

// Simulator runs the payment simulation against a cart ledger.
type Simulator struct {
	ledger      *cart.Ledger
	notifier    notify.Notifier
	logger      *slog.Logger
	failureRate float64
	delay       time.Duration

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New creates a Simulator. The notifier and logger may be nil; defaults are
// substituted.
func New(ledger *cart.Ledger, notifier notify.Notifier, logger *slog.Logger, opts Options) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	failureRate := DefaultFailureRate
	if opts.FailureRate != nil {
		failureRate = *opts.FailureRate
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulator{
		ledger:      ledger,
		notifier:    notifier,
		logger:      logger,
		failureRate: failureRate,
		delay:       opts.Delay,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Checkout runs one simulated checkout. It is total: every path returns a
// Result, and a failed or cancelled checkout leaves the cart untouched.
// The simulation never holds the ledger lock, so a slow checkout cannot
// block catalog display or cart mutation.
func (s *Simulator) Checkout(ctx context.Context) Result {
	if s.ledger.Len() == 0 {
		s.notifier.Notify(notify.SeverityInfo, "Your cart is empty!")
		return Result{Message: "Your cart is empty!"}
	}

	s.notifier.Notify(notify.SeverityInfo, "Processing payment...")

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			s.logger.Warn("checkout superseded", "error", ctx.Err())
			return Result{Message: "Checkout cancelled."}
		}
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()

	if roll < s.failureRate {
		s.logger.Error("payment processing failed", "error", "gateway timeout")
		s.notifier.Notify(notify.SeverityError, "Payment failed. Please try again.")
		return Result{Message: "Payment failed. Please try again."}
	}

	orderID := uuid.NewString()
	s.ledger.Clear(ctx)
	s.notifier.Notify(notify.SeverityInfo, "Order placed successfully!")

	return Result{
		Placed:  true,
		OrderID: orderID,
		Message: "Order placed successfully!",
	}
}
