// Package mcp implements the Model Context Protocol (MCP) server for TechGear.
//
// The MCP server exposes the shopping engine as nine tools:
//   - list_products: Browse the catalog with category, price, and sort parameters
//   - load_more_products: Extend the current listing by one page
//   - get_product: Look up a single product by ID
//   - add_to_cart: Add one unit of a product to the cart
//   - remove_from_cart: Remove a product's line from the cart
//   - set_cart_quantity: Set a cart line's quantity
//   - clear_cart: Empty the cart
//   - get_cart: Return the current cart lines and totals
//   - checkout: Run the simulated checkout flow
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates with MCP clients via standard input/output,
// making it simple to integrate with any MCP-compatible client.
//
// # Tool: list_products
//
// Browse the catalog:
//
//	Request:
//	{
//	  "name": "list_products",
//	  "arguments": {
//	    "category": "laptops",
//	    "max_price": 1500,
//	    "sort": "price-asc"
//	  }
//	}
//
//	Response:
//	{
//	  "products": [...],
//	  "shown": 2,
//	  "total": 2,
//	  "has_more": false,
//	  "page": 1
//	}
//
// Pagination is cumulative: load_more_products re-returns everything already
// shown plus the next window, so a client can always render the full listing
// from the latest response alone.
//
// # Tool: add_to_cart
//
// Cart mutations return the resulting cart state, so clients never need a
// follow-up get_cart call:
//
//	Request:
//	{
//	  "name": "add_to_cart",
//	  "arguments": {"id": 3}
//	}
//
//	Response:
//	{
//	  "items": [
//	    {"product_id": 3, "name": "AirPods Pro 2nd Gen", "price": 249, "quantity": 1, "line_total": 249}
//	  ],
//	  "item_count": 1,
//	  "subtotal": 249,
//	  "notifications": [
//	    {"severity": "info", "message": "AirPods Pro 2nd Gen added to cart!"}
//	  ]
//	}
//
// The notifications array carries the transient status messages the engine
// emitted since the previous tool response.
//
// # Error Handling
//
// The MCP server returns standard JSON-RPC error responses:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "Invalid params",
//	    "data": {
//	      "param": "id",
//	      "reason": "missing"
//	    }
//	  }
//	}
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error
//   - -32001: Product not found (get_product only; cart tools treat unknown
//     IDs as no-ops, matching the engine's never-fail semantics)
//
// # Logging
//
// The MCP server logs to stderr (stdout is reserved for MCP protocol).
// Set log level via environment:
//
//	TECHGEAR_LOG_LEVEL=debug techgear
package mcp
