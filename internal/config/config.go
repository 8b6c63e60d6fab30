// Package config loads the engine's environment-driven settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/techgear-labs/techgear/internal/checkout"
	"github.com/techgear-labs/techgear/internal/view"
)

// Config holds every tunable the engine reads from the environment.
type Config struct {
	// DBPath is the SQLite file holding the persisted cart slot. Empty
	// resolves to ~/.techgear/techgear.db.
	DBPath string `env:"TECHGEAR_DB_PATH"`

	// PageSize is the cumulative pagination window size.
	PageSize int `env:"TECHGEAR_PAGE_SIZE" envDefault:"9"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"TECHGEAR_LOG_LEVEL" envDefault:"info"`

	// CheckoutFailureRate overrides the simulated payment failure rate.
	CheckoutFailureRate float64 `env:"TECHGEAR_CHECKOUT_FAILURE_RATE" envDefault:"0.2"`

	// CheckoutDelayMS simulates payment processing latency in milliseconds.
	CheckoutDelayMS int `env:"TECHGEAR_CHECKOUT_DELAY_MS" envDefault:"0"`
}

// Load parses configuration from the environment and normalizes out-of-range
// values to safe defaults rather than failing startup.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".techgear", "techgear.db")
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = view.DefaultPageSize
	}
	if cfg.CheckoutFailureRate < 0 || cfg.CheckoutFailureRate > 1 {
		cfg.CheckoutFailureRate = checkout.DefaultFailureRate
	}
	if cfg.CheckoutDelayMS < 0 {
		cfg.CheckoutDelayMS = 0
	}

	return cfg, nil
}
