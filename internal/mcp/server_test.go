package mcp

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgear-labs/techgear/internal/config"
	"github.com/techgear-labs/techgear/pkg/logger"
)

func TestServer_Initialization(t *testing.T) {
	t.Run("server has all required components", func(t *testing.T) {
		cfg := config.Config{
			DBPath:   filepath.Join(t.TempDir(), "techgear.db"),
			PageSize: 9,
		}
		log := logger.New(io.Discard, logger.Options{Service: ServerName})

		server, err := NewServer(context.Background(), cfg, log)
		require.NoError(t, err)
		defer server.engine.Close()

		assert.NotNil(t, server.mcp, "MCP server should be initialized")
		assert.NotNil(t, server.engine, "Engine should be initialized")
		assert.NotNil(t, server.alerts, "Notification recorder should be initialized")
	})

	t.Run("database directory is created", func(t *testing.T) {
		cfg := config.Config{
			DBPath:   filepath.Join(t.TempDir(), "nested", "dir", "techgear.db"),
			PageSize: 9,
		}

		server, err := NewServer(context.Background(), cfg, nil)
		require.NoError(t, err)
		defer server.engine.Close()

		assert.NotNil(t, server)
	})

	t.Run("cart persists across server restarts", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "techgear.db")
		cfg := config.Config{DBPath: dbPath, PageSize: 9}
		ctx := context.Background()

		first, err := NewServer(ctx, cfg, nil)
		require.NoError(t, err)

		_, err = first.handleAddToCart(ctx, callRequest("add_to_cart", map[string]interface{}{
			"id": float64(1),
		}))
		require.NoError(t, err)
		require.NoError(t, first.engine.Close())

		second, err := NewServer(ctx, cfg, nil)
		require.NoError(t, err)
		defer second.engine.Close()

		result, err := second.handleGetCart(ctx, callRequest("get_cart", nil))
		require.NoError(t, err)

		response := decodeResult(t, result)
		assert.Equal(t, float64(1), response["item_count"])
		assert.Equal(t, float64(999), response["subtotal"])
	})
}
