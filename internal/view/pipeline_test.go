package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgear-labs/techgear/pkg/types"
)

func f64(v float64) *float64 { return &v }

func testCatalog() []types.Product {
	return []types.Product{
		{ID: 1, Name: "iPhone 15 Pro", Category: "smartphones", Price: 999, Rating: 4.8},
		{ID: 2, Name: "MacBook Pro 16\"", Category: "laptops", Price: 2399, Rating: 4.9},
		{ID: 3, Name: "AirPods Pro 2nd Gen", Category: "headphones", Price: 249, Rating: 4.7},
		{ID: 4, Name: "iPad Air", Category: "tablets", Price: 599, Rating: 4.6},
		{ID: 5, Name: "Samsung Galaxy S24 Ultra", Category: "smartphones", Price: 1199, Rating: 4.5},
		{ID: 6, Name: "Dell XPS 13", Category: "laptops", Price: 1299, Rating: 4.4},
	}
}

func ids(products []types.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestDerive_CategoryFilter(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{Category: "smartphones", Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{1, 5}, ids(page.Products))
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasMore)
}

func TestDerive_EmptyCategoryMatchesAll(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{Page: 1}, DefaultPageSize)
	assert.Len(t, page.Products, 6)
}

func TestDerive_MaxPriceFilter(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{MaxPrice: f64(999), Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{1, 3, 4}, ids(page.Products))
}

func TestDerive_MaxPriceIsInclusive(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{MaxPrice: f64(249), Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{3}, ids(page.Products))
}

func TestDerive_MaxPriceZeroKeepsFreeProducts(t *testing.T) {
	products := append(testCatalog(), types.Product{ID: 7, Name: "Sticker Pack", Category: "accessories", Price: 0})
	page := Derive(products, types.ViewState{MaxPrice: f64(0), Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{7}, ids(page.Products))
}

func TestDerive_SortName(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{Sort: types.SortName, Page: 1}, DefaultPageSize)
	names := make([]string, len(page.Products))
	for i, p := range page.Products {
		names[i] = p.Name
	}
	assert.Equal(t, []string{
		"AirPods Pro 2nd Gen",
		"Dell XPS 13",
		"iPad Air",
		"iPhone 15 Pro",
		"MacBook Pro 16\"",
		"Samsung Galaxy S24 Ultra",
	}, names)
}

func TestDerive_SortPrice(t *testing.T) {
	asc := Derive(testCatalog(), types.ViewState{Sort: types.SortPriceAsc, Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{3, 4, 1, 5, 6, 2}, ids(asc.Products))

	desc := Derive(testCatalog(), types.ViewState{Sort: types.SortPriceDesc, Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{2, 6, 5, 1, 4, 3}, ids(desc.Products))
}

func TestDerive_SortRatingDescending(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{Sort: types.SortRating, Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{2, 1, 3, 4, 5, 6}, ids(page.Products))
}

func TestDerive_SortIsStable(t *testing.T) {
	products := []types.Product{
		{ID: 10, Name: "A", Price: 100, Rating: 4.0},
		{ID: 11, Name: "B", Price: 100, Rating: 4.0},
		{ID: 12, Name: "C", Price: 100, Rating: 4.0},
		{ID: 13, Name: "D", Price: 50, Rating: 4.5},
	}

	for _, key := range []types.SortKey{types.SortPriceAsc, types.SortPriceDesc, types.SortRating} {
		page := Derive(products, types.ViewState{Sort: key, Page: 1}, DefaultPageSize)

		var equalRun []int64
		for _, p := range page.Products {
			if p.Price == 100 {
				equalRun = append(equalRun, p.ID)
			}
		}
		assert.Equal(t, []int64{10, 11, 12}, equalRun, "sort %q must keep relative order of equal keys", key)
	}
}

func TestDerive_UnknownSortKeepsIdentityOrder(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{Sort: "popularity", Page: 1}, DefaultPageSize)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, ids(page.Products))
}

func TestDerive_CumulativePagination(t *testing.T) {
	catalog := testCatalog()

	page1 := Derive(catalog, types.ViewState{Page: 1}, 2)
	require.Len(t, page1.Products, 2)
	assert.True(t, page1.HasMore)

	page2 := Derive(catalog, types.ViewState{Page: 2}, 2)
	require.Len(t, page2.Products, 4)
	assert.True(t, page2.HasMore)

	// Page N is a strict prefix-extension of page N-1
	assert.Equal(t, ids(page1.Products), ids(page2.Products)[:2])

	page3 := Derive(catalog, types.ViewState{Page: 3}, 2)
	assert.Len(t, page3.Products, 6)
	assert.False(t, page3.HasMore)

	// Past the end the window saturates
	page9 := Derive(catalog, types.ViewState{Page: 9}, 2)
	assert.Len(t, page9.Products, 6)
	assert.False(t, page9.HasMore)
}

func TestDerive_EmptyResult(t *testing.T) {
	page := Derive(testCatalog(), types.ViewState{Category: "cameras", Page: 1}, DefaultPageSize)
	assert.Empty(t, page.Products)
	assert.Equal(t, 0, page.Total)
	assert.False(t, page.HasMore)
}

func TestDerive_Deterministic(t *testing.T) {
	state := types.ViewState{Category: "laptops", MaxPrice: f64(2500), Sort: types.SortPriceDesc, Page: 1}
	first := Derive(testCatalog(), state, DefaultPageSize)

	for i := 0; i < 10; i++ {
		again := Derive(testCatalog(), state, DefaultPageSize)
		assert.Equal(t, first, again)
	}
}

func TestPipeline_CacheServesRepeatQueries(t *testing.T) {
	pl := New(Options{PageSize: 2})
	catalog := testCatalog()
	state := types.ViewState{Sort: types.SortPriceAsc, Page: 1}

	first := pl.Derive(catalog, 1, state)
	again := pl.Derive(catalog, 1, state)
	assert.Equal(t, first, again)
}

func TestPipeline_VersionBumpInvalidates(t *testing.T) {
	pl := New(Options{PageSize: DefaultPageSize})
	catalog := testCatalog()
	state := types.ViewState{Page: 1}

	before := pl.Derive(catalog, 1, state)
	assert.Len(t, before.Products, 6)

	// Same state, new catalog version: the shrunk collection must win.
	after := pl.Derive(catalog[:2], 2, state)
	assert.Len(t, after.Products, 2)
}

func TestPipeline_ExpiredEntryRecomputed(t *testing.T) {
	pl := New(Options{PageSize: DefaultPageSize, CacheTTL: time.Nanosecond})
	catalog := testCatalog()
	state := types.ViewState{Page: 1}

	pl.Derive(catalog, 1, state)
	time.Sleep(time.Millisecond)

	page := pl.Derive(catalog, 1, state)
	assert.Len(t, page.Products, 6)
}

func TestPipeline_CacheKeyFieldBoundaries(t *testing.T) {
	pl := New(Options{PageSize: DefaultPageSize})
	products := []types.Product{
		{ID: 1, Name: "Widget", Category: "x", Price: 10},
	}

	// The two states spell the same bytes when fields are naively joined,
	// but they are different queries and must not share a cache entry.
	miss := pl.Derive(products, 1, types.ViewState{Category: "x|y", Sort: "z", Page: 1})
	assert.Empty(t, miss.Products)

	hit := pl.Derive(products, 1, types.ViewState{Category: "x", Sort: "y|z", Page: 1})
	assert.Len(t, hit.Products, 1)
}

func TestPipeline_DistinctStatesDistinctEntries(t *testing.T) {
	pl := New(Options{PageSize: DefaultPageSize})
	catalog := testCatalog()

	all := pl.Derive(catalog, 1, types.ViewState{Page: 1})
	phones := pl.Derive(catalog, 1, types.ViewState{Category: "smartphones", Page: 1})

	assert.Len(t, all.Products, 6)
	assert.Len(t, phones.Products, 2)
}
