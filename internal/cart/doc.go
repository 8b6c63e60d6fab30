// Package cart implements the shopping cart ledger.
//
// The ledger holds at most one line per product; repeated adds increment
// the quantity. Name and price are denormalized copies captured at add
// time: a later catalog change never reprices a line already in the cart.
//
// Mutations are serialized and mirrored to storage after every change.
// Persistence is best-effort: a failed write is logged and dropped, and a
// failed or corrupted load rehydrates as an empty cart.
package cart
