package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/techgear-labs/techgear/pkg/types"
)

// CartSlot is the fixed key the serialized cart lives under, carried over
// from the original storage layout.
const CartSlot = "techgear-cart"

// SQLiteStorage implements the Storage interface using a local SQLite file.
// It is the durable key-value slot the cart survives restarts in.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// NewSQLiteStorage opens (or creates) the storage file and applies
// migrations. A nil logger falls back to slog.Default.
func NewSQLiteStorage(dbPath string, logger *slog.Logger) (*SQLiteStorage, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db, logger: logger}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveCart serializes the cart lines as JSON and upserts them into the cart
// slot. The serialized form is a flat ordered sequence of line records.
func (s *SQLiteStorage) SaveCart(ctx context.Context, lines []types.CartLine) error {
	if lines == nil {
		lines = []types.CartLine{}
	}

	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	query := `
		INSERT INTO kv_slots (slot, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, CartSlot, string(payload)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// LoadCart reads the cart slot back. An absent slot is an empty cart. A
// corrupted value is logged and also treated as an empty cart: persisted
// state is a convenience, never a startup blocker.
func (s *SQLiteStorage) LoadCart(ctx context.Context) ([]types.CartLine, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_slots WHERE slot = ?`, CartSlot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var lines []types.CartLine
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		s.logger.Warn("discarding unparseable cart slot", "slot", CartSlot, "error", err)
		return nil, nil
	}

	// A payload that parses but breaks the line invariants counts as
	// corrupted state too.
	for i := range lines {
		if err := lines[i].Validate(); err != nil {
			s.logger.Warn("discarding cart slot with invalid line",
				"slot", CartSlot, "line", i, "error", err)
			return nil, nil
		}
	}

	return lines, nil
}
