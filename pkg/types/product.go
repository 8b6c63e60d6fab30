package types

// Well-known category values from the seed catalog. The catalog store does
// not restrict products to this set; filtering compares raw strings.
const (
	CategorySmartphones = "smartphones"
	CategoryLaptops     = "laptops"
	CategoryHeadphones  = "headphones"
	CategoryTablets     = "tablets"
)

// Product is one catalog entry. Products are immutable once loaded; the
// catalog store hands out copies, never shared references.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"` // display-only strike-through price
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Description   string   `json:"description"`
	Badge         string   `json:"badge,omitempty"`
	Image         string   `json:"image"` // opaque display-icon reference
}

// Validate checks the structural invariants of a product record.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidProductID
	}
	if p.Name == "" {
		return ErrEmptyProductName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Rating < 0 || p.Rating > 5 {
		return ErrRatingOutOfRange
	}
	if p.Reviews < 0 {
		return ErrNegativeReviews
	}
	return nil
}

// Discounted reports whether the product carries an original price for
// strike-through display. No relation between the two prices is enforced.
func (p *Product) Discounted() bool {
	return p.OriginalPrice != nil
}
