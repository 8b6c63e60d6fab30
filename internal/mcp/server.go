package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/techgear-labs/techgear/internal/config"
	"github.com/techgear-labs/techgear/internal/engine"
	"github.com/techgear-labs/techgear/internal/notify"
)

const (
	// ServerName is the MCP server name
	ServerName = "techgear"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the shopping engine
type Server struct {
	mcp    *server.MCPServer
	engine *engine.Engine
	alerts *notify.Recorder
	logger *slog.Logger
}

// NewServer creates a new MCP server instance. Notifications the engine
// emits are captured and attached to the next tool response, mirroring the
// transient toasts the original storefront showed.
func NewServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	alerts := &notify.Recorder{}
	notifier := notify.Multi{notify.NewLogNotifier(logger), alerts}

	eng, err := engine.New(ctx, cfg, logger, notifier)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}

	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		engine: eng,
		alerts: alerts,
		logger: logger,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		_ = eng.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.engine.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(listProductsTool(), s.handleListProducts)
	s.mcp.AddTool(loadMoreProductsTool(), s.handleLoadMoreProducts)
	s.mcp.AddTool(getProductTool(), s.handleGetProduct)
	s.mcp.AddTool(addToCartTool(), s.handleAddToCart)
	s.mcp.AddTool(removeFromCartTool(), s.handleRemoveFromCart)
	s.mcp.AddTool(setCartQuantityTool(), s.handleSetCartQuantity)
	s.mcp.AddTool(clearCartTool(), s.handleClearCart)
	s.mcp.AddTool(getCartTool(), s.handleGetCart)
	s.mcp.AddTool(checkoutTool(), s.handleCheckout)
	return nil
}
