package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listProductsTool returns the tool definition for list_products
func listProductsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_products",
		Description: "Browse the product catalog with optional category, price, and sort parameters. Resets pagination to the first page.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Category to filter by; empty or omitted shows all categories",
					"enum":        []string{"smartphones", "laptops", "tablets", "headphones"},
				},
				"max_price": map[string]interface{}{
					"type":        "number",
					"description": "Only include products priced at or below this value",
					"minimum":     0,
				},
				"sort": map[string]interface{}{
					"type":        "string",
					"description": "Sort order: name (default), price-asc, price-desc, or rating",
					"enum":        []string{"name", "price-asc", "price-desc", "rating"},
					"default":     "name",
				},
			},
		},
	}
}

// loadMoreProductsTool returns the tool definition for load_more_products
func loadMoreProductsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "load_more_products",
		Description: "Extend the current product listing by one more page. The result always contains everything shown so far plus the next window.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getProductTool returns the tool definition for get_product
func getProductTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_product",
		Description: "Look up a single product by its ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Product ID",
				},
			},
			Required: []string{"id"},
		},
	}
}

// addToCartTool returns the tool definition for add_to_cart
func addToCartTool() mcp.Tool {
	return mcp.Tool{
		Name:        "add_to_cart",
		Description: "Add one unit of a product to the cart. Adding the same product again increments its quantity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Product ID",
				},
			},
			Required: []string{"id"},
		},
	}
}

// removeFromCartTool returns the tool definition for remove_from_cart
func removeFromCartTool() mcp.Tool {
	return mcp.Tool{
		Name:        "remove_from_cart",
		Description: "Remove a product's line from the cart regardless of quantity. Removing a product that is not in the cart is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Product ID",
				},
			},
			Required: []string{"id"},
		},
	}
}

// setCartQuantityTool returns the tool definition for set_cart_quantity
func setCartQuantityTool() mcp.Tool {
	return mcp.Tool{
		Name:        "set_cart_quantity",
		Description: "Set the quantity of a cart line. A quantity of zero or less removes the line.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Product ID",
				},
				"quantity": map[string]interface{}{
					"type":        "integer",
					"description": "New quantity; zero or less removes the line",
				},
			},
			Required: []string{"id", "quantity"},
		},
	}
}

// clearCartTool returns the tool definition for clear_cart
func clearCartTool() mcp.Tool {
	return mcp.Tool{
		Name:        "clear_cart",
		Description: "Remove every line from the cart",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getCartTool returns the tool definition for get_cart
func getCartTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_cart",
		Description: "Return the current cart lines and totals",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// checkoutTool returns the tool definition for checkout
func checkoutTool() mcp.Tool {
	return mcp.Tool{
		Name:        "checkout",
		Description: "Run the simulated checkout flow for the current cart. A successful checkout empties the cart; a failed one leaves it untouched.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
