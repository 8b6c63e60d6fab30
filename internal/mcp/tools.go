package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/techgear-labs/techgear/internal/engine"
	"github.com/techgear-labs/techgear/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeProductNotFound = -32001 // No product with the given ID
)

// handleListProducts handles the list_products tool invocation
func (s *Server) handleListProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := argsOf(request)

	category := getStringDefault(args, "category", "")
	sortKey := getStringDefault(args, "sort", "")

	var maxPrice *float64
	if raw, ok := args["max_price"]; ok {
		price, ok := raw.(float64)
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "max_price must be a number", map[string]interface{}{
				"param": "max_price",
				"value": raw,
			})
		}
		if price < 0 {
			return nil, newMCPError(ErrorCodeInvalidParams, "max_price must not be negative", map[string]interface{}{
				"param": "max_price",
				"value": price,
			})
		}
		maxPrice = &price
	}

	res := s.engine.Browse(category, maxPrice, sortKey)
	return mcp.NewToolResultText(formatJSON(s.browseResponse(res))), nil
}

// handleLoadMoreProducts handles the load_more_products tool invocation
func (s *Server) handleLoadMoreProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.engine.LoadMore()
	return mcp.NewToolResultText(formatJSON(s.browseResponse(res))), nil
}

// handleGetProduct handles the get_product tool invocation
func (s *Server) handleGetProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := productIDArg(request)
	if err != nil {
		return nil, err
	}

	product, ok := s.engine.Product(id)
	if !ok {
		return nil, newMCPError(ErrorCodeProductNotFound, "product not found", map[string]interface{}{
			"id": id,
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"product": productJSON(product),
	})), nil
}

// handleAddToCart handles the add_to_cart tool invocation
func (s *Server) handleAddToCart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := productIDArg(request)
	if err != nil {
		return nil, err
	}

	s.engine.AddToCart(ctx, id)
	return mcp.NewToolResultText(formatJSON(s.cartResponse())), nil
}

// handleRemoveFromCart handles the remove_from_cart tool invocation
func (s *Server) handleRemoveFromCart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := productIDArg(request)
	if err != nil {
		return nil, err
	}

	s.engine.RemoveFromCart(ctx, id)
	return mcp.NewToolResultText(formatJSON(s.cartResponse())), nil
}

// handleSetCartQuantity handles the set_cart_quantity tool invocation
func (s *Server) handleSetCartQuantity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := productIDArg(request)
	if err != nil {
		return nil, err
	}

	args := argsOf(request)
	raw, ok := args["quantity"]
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "quantity parameter is required", map[string]interface{}{
			"param":  "quantity",
			"reason": "missing",
		})
	}
	quantity, ok := raw.(float64)
	if !ok || quantity != float64(int(quantity)) {
		return nil, newMCPError(ErrorCodeInvalidParams, "quantity must be an integer", map[string]interface{}{
			"param": "quantity",
			"value": raw,
		})
	}

	s.engine.SetCartQuantity(ctx, id, int(quantity))
	return mcp.NewToolResultText(formatJSON(s.cartResponse())), nil
}

// handleClearCart handles the clear_cart tool invocation
func (s *Server) handleClearCart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.ClearCart(ctx)
	return mcp.NewToolResultText(formatJSON(s.cartResponse())), nil
}

// handleGetCart handles the get_cart tool invocation
func (s *Server) handleGetCart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatJSON(s.cartResponse())), nil
}

// handleCheckout handles the checkout tool invocation
func (s *Server) handleCheckout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.engine.Checkout(ctx)

	response := map[string]interface{}{
		"placed":  result.Placed,
		"message": result.Message,
		"cart":    s.cartResponse(),
	}
	if result.OrderID != "" {
		response["order_id"] = result.OrderID
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Response builders

// browseResponse formats a derived product page plus any pending
// notifications.
func (s *Server) browseResponse(res engine.BrowseResult) map[string]interface{} {
	products := make([]map[string]interface{}, len(res.Products))
	for i, p := range res.Products {
		products[i] = productJSON(p)
	}

	response := map[string]interface{}{
		"products": products,
		"shown":    len(res.Products),
		"total":    res.Total,
		"has_more": res.HasMore,
		"page":     res.State.Page,
	}
	if res.State.Category != "" {
		response["category"] = res.State.Category
	}
	if res.State.MaxPrice != nil {
		response["max_price"] = *res.State.MaxPrice
	}
	if res.State.Sort != "" {
		response["sort"] = string(res.State.Sort)
	}
	if alerts := s.drainAlerts(); len(alerts) > 0 {
		response["notifications"] = alerts
	}
	return response
}

// cartResponse formats the current cart state plus any pending
// notifications.
func (s *Server) cartResponse() map[string]interface{} {
	lines := s.engine.CartLines()
	totals := s.engine.CartTotals()

	items := make([]map[string]interface{}, len(lines))
	for i, line := range lines {
		items[i] = map[string]interface{}{
			"product_id": line.ProductID,
			"name":       line.Name,
			"price":      line.Price,
			"quantity":   line.Quantity,
			"line_total": line.Price * float64(line.Quantity),
		}
	}

	response := map[string]interface{}{
		"items":      items,
		"item_count": totals.ItemCount,
		"subtotal":   totals.Subtotal,
	}
	if alerts := s.drainAlerts(); len(alerts) > 0 {
		response["notifications"] = alerts
	}
	return response
}

// drainAlerts collects the notifications emitted since the last tool
// response.
func (s *Server) drainAlerts() []map[string]interface{} {
	pending := s.alerts.All()
	s.alerts.Reset()
	if len(pending) == 0 {
		return nil
	}

	out := make([]map[string]interface{}, len(pending))
	for i, n := range pending {
		out[i] = map[string]interface{}{
			"severity": string(n.Severity),
			"message":  n.Message,
		}
	}
	return out
}

// productJSON formats one product for a tool response.
func productJSON(p types.Product) map[string]interface{} {
	out := map[string]interface{}{
		"id":       p.ID,
		"name":     p.Name,
		"category": p.Category,
		"price":    p.Price,
		"rating":   p.Rating,
		"reviews":  p.Reviews,
	}
	if p.Discounted() {
		out["original_price"] = *p.OriginalPrice
	}
	if p.Description != "" {
		out["description"] = p.Description
	}
	if p.Badge != "" {
		out["badge"] = p.Badge
	}
	return out
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// argsOf extracts the request's argument map; tools without arguments may
// carry none at all.
func argsOf(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	return args
}

// productIDArg extracts and validates the required id parameter.
func productIDArg(request mcp.CallToolRequest) (int64, error) {
	args := argsOf(request)
	raw, ok := args["id"]
	if !ok {
		return 0, newMCPError(ErrorCodeInvalidParams, "id parameter is required", map[string]interface{}{
			"param":  "id",
			"reason": "missing",
		})
	}

	id, ok := raw.(float64)
	if !ok {
		return 0, newMCPError(ErrorCodeInvalidParams, "id must be an integer", map[string]interface{}{
			"param": "id",
			"value": raw,
		})
	}
	if id <= 0 || id != float64(int64(id)) {
		return 0, newMCPError(ErrorCodeInvalidParams, "id must be a positive integer", map[string]interface{}{
			"param": "id",
			"value": id,
		})
	}

	return int64(id), nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
