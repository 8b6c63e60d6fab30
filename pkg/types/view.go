package types

// SortKey selects the ordering applied to the filtered catalog view.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

// Valid reports whether the key names a known ordering. Unknown keys are not
// an error: derivation degrades to the identity order.
func (k SortKey) Valid() bool {
	switch k {
	case SortName, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	}
	return false
}

// ViewState holds the filter, sort, and pagination parameters for one derived
// view. An empty Category means no category filter; a nil MaxPrice means
// unbounded. Page is 1-based and cumulative: page N covers the first N windows
// of the filtered sequence.
type ViewState struct {
	Category string   `json:"category,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Sort     SortKey  `json:"sort"`
	Page     int      `json:"page"`
}

// WithPage returns a copy of the state pointed at the given page.
func (s ViewState) WithPage(page int) ViewState {
	s.Page = page
	return s
}
