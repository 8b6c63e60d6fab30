package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgear-labs/techgear/pkg/types"
)

func testProducts() []types.Product {
	return []types.Product{
		{ID: 1, Name: "iPhone 15 Pro", Category: types.CategorySmartphones, Price: 999, Rating: 4.8, Reviews: 2543},
		{ID: 2, Name: "MacBook Pro 16\"", Category: types.CategoryLaptops, Price: 2399, Rating: 4.9, Reviews: 1876},
		{ID: 3, Name: "AirPods Pro 2nd Gen", Category: types.CategoryHeadphones, Price: 249, Rating: 4.7, Reviews: 8932},
	}
}

func TestNewStore(t *testing.T) {
	s := NewStore()
	assert.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestStoreLoad(t *testing.T) {
	s := NewStore()
	s.Load(testProducts())

	assert.Equal(t, 3, s.Len())

	// Load replaces, never appends
	s.Load(testProducts()[:1])
	assert.Equal(t, 1, s.Len())
}

func TestStoreLoad_CopiesInput(t *testing.T) {
	s := NewStore()
	input := testProducts()
	s.Load(input)

	input[0].Name = "mutated"

	p, ok := s.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "iPhone 15 Pro", p.Name)
}

func TestStoreAll_SnapshotIsolation(t *testing.T) {
	s := NewStore()
	s.Load(testProducts())

	snapshot := s.All()
	snapshot[0].Price = -1

	p, ok := s.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, 999.0, p.Price)
}

func TestStoreFindByID(t *testing.T) {
	s := NewStore()
	s.Load(testProducts())

	p, ok := s.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "MacBook Pro 16\"", p.Name)

	_, ok = s.FindByID(999)
	assert.False(t, ok)
}

func TestStoreFindByID_DuplicateIDFirstMatchWins(t *testing.T) {
	s := NewStore()
	s.Load([]types.Product{
		{ID: 5, Name: "first", Price: 10},
		{ID: 5, Name: "second", Price: 20},
	})

	p, ok := s.FindByID(5)
	require.True(t, ok)
	assert.Equal(t, "first", p.Name)
}

func TestStoreVersion(t *testing.T) {
	s := NewStore()
	v0 := s.Version()

	s.Load(testProducts())
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	s.Load(testProducts())
	assert.Greater(t, s.Version(), v1)
}

func TestSeed(t *testing.T) {
	products, err := Seed()
	require.NoError(t, err)
	require.Len(t, products, 12)

	for _, p := range products {
		assert.NoError(t, p.Validate(), "seed product %d should validate", p.ID)
	}

	// Spot-check a discounted product and a plain one
	assert.Equal(t, "iPhone 15 Pro", products[0].Name)
	require.NotNil(t, products[0].OriginalPrice)
	assert.Equal(t, 1099.0, *products[0].OriginalPrice)
	assert.Equal(t, "New", products[0].Badge)

	assert.Equal(t, "MacBook Pro 16\"", products[1].Name)
	assert.Nil(t, products[1].OriginalPrice)
	assert.Empty(t, products[1].Badge)
}
