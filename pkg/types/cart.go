package types

// CartLine is one product's entry in the cart. Name and Price are snapshots
// taken at add time; later catalog changes never reprice an existing line.
type CartLine struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Validate checks the structural invariants of a cart line.
func (l *CartLine) Validate() error {
	if l.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if l.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Totals aggregates a cart. ItemCount sums line quantities (not the line
// count); Subtotal sums snapshot price times quantity.
type Totals struct {
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
}

// TotalsOf computes aggregate totals over a sequence of cart lines.
func TotalsOf(lines []CartLine) Totals {
	var t Totals
	for _, l := range lines {
		t.ItemCount += l.Quantity
		t.Subtotal += l.Price * float64(l.Quantity)
	}
	return t
}
