package types

import "errors"

// Domain errors shared across engine components
var (
	// Lookup errors
	ErrProductNotFound = errors.New("product not found")

	// Validation errors
	ErrInvalidProductID = errors.New("product ID must be positive")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price must be >= 0")
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrNegativeReviews  = errors.New("reviews count must be >= 0")
	ErrInvalidQuantity  = errors.New("quantity must be >= 1")
)
