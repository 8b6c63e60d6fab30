// Package view derives the currently-displayed product subset from the
// catalog given filter, sort, and pagination parameters.
//
// Derivation applies three steps in a fixed order:
//
//  1. Filter: category match (empty = all) AND price <= max (absent = +Inf)
//  2. Sort: stable total order per the sort key; unknown keys keep the
//     filtered order unchanged
//  3. Paginate: cumulative windows of PageSize items; page N returns the
//     first N*PageSize items, which is what a "load more" control expects
//
// # Basic Usage
//
//	pl := view.New(view.Options{PageSize: 9})
//
//	page := pl.Derive(store.All(), store.Version(), types.ViewState{
//	    Category: "laptops",
//	    Sort:     types.SortPriceAsc,
//	    Page:     1,
//	})
//
//	for _, p := range page.Products {
//	    fmt.Println(p.Name, p.Price)
//	}
//	if page.HasMore {
//	    // offer "load more"
//	}
//
// Derive is deterministic and never fails for well-formed input, so the
// pipeline memoizes results in an LRU cache keyed by catalog version and
// view state. Callers must reset Page to 1 whenever any other parameter
// changes; the pipeline itself is stateless per call.
//
// Sequencer guards against a superseded in-flight derivation overwriting a
// later view: last issued wins, not last finished.
package view
