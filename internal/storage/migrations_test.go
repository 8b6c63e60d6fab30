package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBareDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	db := openBareDB(t)
	ctx := context.Background()

	require.NoError(t, ApplyMigrations(ctx, db))

	var version string
	err := db.QueryRowContext(ctx, "SELECT version FROM schema_version ORDER BY applied_at DESC LIMIT 1").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	// The cart slot table must exist
	var name string
	err = db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='kv_slots'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_slots", name)
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	db := openBareDB(t)
	ctx := context.Background()

	require.NoError(t, ApplyMigrations(ctx, db))
	require.NoError(t, ApplyMigrations(ctx, db))

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_version").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRollbackMigration(t *testing.T) {
	db := openBareDB(t)
	ctx := context.Background()

	require.NoError(t, ApplyMigrations(ctx, db))
	require.NoError(t, RollbackMigration(ctx, db))

	var name string
	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='kv_slots'").Scan(&name)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRollbackMigration_NothingApplied(t *testing.T) {
	db := openBareDB(t)

	err := RollbackMigration(context.Background(), db)
	assert.Error(t, err)
}
