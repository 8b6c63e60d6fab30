package view

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/techgear-labs/techgear/pkg/types"
)

// DefaultPageSize matches the original nine-card product grid.
const DefaultPageSize = 9

// Page is one derived, cumulative window over the filtered catalog.
// Page N contains the first N windows of the filtered sequence, so a
// "load more" control only ever extends what is already shown.
type Page struct {
	Products []types.Product
	Total    int // filtered count before windowing
	HasMore  bool
}

var (
	collatorOnce sync.Once
	collatorMu   sync.Mutex
	collator     *collate.Collator
)

// compareNames does a locale-aware comparison of product names. The
// collator is not safe for concurrent use, hence the mutex.
func compareNames(a, b string) int {
	collatorOnce.Do(func() {
		collator = collate.New(language.English)
	})
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Derive applies filter, stable sort, and cumulative pagination in that
// fixed order. It never fails for well-formed input: an unknown sort key
// keeps the filtered sequence in its original relative order, and a page
// below 1 is treated as page 1.
func Derive(products []types.Product, state types.ViewState, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	maxPrice := math.Inf(1)
	if state.MaxPrice != nil {
		maxPrice = *state.MaxPrice
	}

	filtered := make([]types.Product, 0, len(products))
	for _, p := range products {
		if state.Category != "" && p.Category != state.Category {
			continue
		}
		if p.Price > maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	// Stable sorts only: products comparing equal under the active key keep
	// their relative order from the filtered sequence.
	switch state.Sort {
	case types.SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return compareNames(filtered[i].Name, filtered[j].Name) < 0
		})
	case types.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case types.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case types.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	default:
		// Unknown key: identity order (MalformedInput falls back, never fails).
	}

	page := state.Page
	if page < 1 {
		page = 1
	}
	end := page * pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Products: filtered[:end],
		Total:    len(filtered),
		HasMore:  end < len(filtered),
	}
}

// cacheEntry pairs a derived page with its expiration time.
type cacheEntry struct {
	page      Page
	expiresAt time.Time
}

// Options configures a Pipeline.
type Options struct {
	PageSize  int
	CacheSize int           // LRU entries; 0 uses the default
	CacheTTL  time.Duration // 0 uses the default
}

const (
	defaultCacheSize = 256
	defaultCacheTTL  = time.Minute
)

// Pipeline derives views and memoizes the results keyed by catalog version
// and view state. Derivation is deterministic, so a cache hit is
// indistinguishable from a recomputation.
type Pipeline struct {
	pageSize int
	cacheTTL time.Duration
	cache    *lru.Cache[[32]byte, cacheEntry]
}

// New creates a Pipeline with the given options.
func New(opts Options) *Pipeline {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	cacheSize := opts.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cacheTTL := opts.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	cache, err := lru.New[[32]byte, cacheEntry](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size, which is guarded above.
		panic(fmt.Sprintf("failed to create view cache: %v", err))
	}

	return &Pipeline{
		pageSize: pageSize,
		cacheTTL: cacheTTL,
		cache:    cache,
	}
}

// PageSize returns the configured window size.
func (pl *Pipeline) PageSize() int {
	return pl.pageSize
}

// Derive returns the view for the given catalog snapshot and state, serving
// from cache when a fresh entry exists. The catalog version participates in
// the key, so a reload can never serve a stale window.
func (pl *Pipeline) Derive(products []types.Product, version uint64, state types.ViewState) Page {
	key := cacheKey(version, state, pl.pageSize)
	if entry, ok := pl.cache.Get(key); ok && time.Now().Before(entry.expiresAt) {
		return entry.page
	}

	page := Derive(products, state, pl.pageSize)
	pl.cache.Add(key, cacheEntry{page: page, expiresAt: time.Now().Add(pl.cacheTTL)})
	return page
}

// cacheKey hashes the inputs that determine a derived view. Free-form
// string fields are length-prefixed so field boundaries stay unambiguous
// no matter what characters a host sends.
func cacheKey(version uint64, state types.ViewState, pageSize int) [32]byte {
	h := sha256.New()

	var buf [8]byte
	writeUint := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeString := func(s string) {
		writeUint(uint64(len(s)))
		h.Write([]byte(s))
	}

	writeUint(version)
	writeString(state.Category)
	writeString(string(state.Sort))
	writeUint(uint64(state.Page))
	writeUint(uint64(pageSize))
	if state.MaxPrice != nil {
		h.Write([]byte{1})
		writeUint(math.Float64bits(*state.MaxPrice))
	} else {
		h.Write([]byte{0})
	}

	var key [32]byte
	h.Sum(key[:0])
	return key
}
