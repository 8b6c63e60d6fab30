// Package types provides shared type definitions for the TechGear engine.
//
// This package defines the domain types used across the engine's components:
// products, cart lines, view state, and aggregate totals.
//
// # Core Types
//
// Product represents one catalog entry:
//
//	product := types.Product{
//	    ID:       1,
//	    Name:     "iPhone 15 Pro",
//	    Category: types.CategorySmartphones,
//	    Price:    999,
//	    Rating:   4.8,
//	}
//
// CartLine represents one product's quantity entry in the cart. Name and
// Price are denormalized copies captured when the product is first added,
// so cart totals are frozen against later catalog changes:
//
//	line := types.CartLine{
//	    ProductID: product.ID,
//	    Name:      product.Name,
//	    Price:     product.Price,
//	    Quantity:  1,
//	}
//
// ViewState carries the filter, sort, and pagination parameters chosen by
// the user. Pagination is cumulative: page N always includes every item
// from page 1 through N, which is what a "load more" control expects:
//
//	state := types.ViewState{
//	    Category: "laptops",
//	    Sort:     types.SortPriceAsc,
//	    Page:     1,
//	}
//
// # Error Handling
//
// Sentinel errors (ErrProductNotFound and the validation errors) are
// matched with errors.Is. Engine components absorb
// failures on non-essential paths; these sentinels are diagnostics, not
// control flow the caller must handle.
package types
