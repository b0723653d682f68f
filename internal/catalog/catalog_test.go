package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	products []Product
}

func (f *fakeRepo) LoadProducts(ctx context.Context) ([]Product, error) {
	return f.products, nil
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New(&fakeRepo{products: []Product{
		{ID: "p1", Name: "Gold Ring", Description: "an elegant gold ring", Category: "Rings", Price: 150, Stock: 5},
		{ID: "p2", Name: "Silver Bracelet", Description: "a sleek silver bracelet", Category: "Bracelets", Price: 80, Stock: 12},
		{ID: "p3", Name: "Charm Pendant", Description: "a boxing ring charm", Category: "Pendants", Price: 40, Stock: 3},
	}})
	require.NoError(t, c.Reload(context.Background()))
	return c
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	c := testCatalog(t)

	results := c.SearchText("ring")
	require.Len(t, results, 2)
	assert.Equal(t, "Gold Ring", results[0].Name)
	assert.Equal(t, "Charm Pendant", results[1].Name)

	// case-insensitive
	assert.Len(t, c.SearchText("RING"), 2)
	assert.Empty(t, c.SearchText("necklace"))
}

func TestSearchFilters(t *testing.T) {
	c := testCatalog(t)

	assert.Len(t, c.Search(Filter{Category: "rings"}), 1)

	min, max := 50.0, 100.0
	results := c.Search(Filter{MinPrice: &min, MaxPrice: &max})
	require.Len(t, results, 1)
	assert.Equal(t, "Silver Bracelet", results[0].Name)

	results = c.Search(Filter{Query: "ring", MaxPrice: &max})
	require.Len(t, results, 1)
	assert.Equal(t, "Charm Pendant", results[0].Name)
}

func TestGet(t *testing.T) {
	c := testCatalog(t)

	p, ok := c.Get("p2")
	require.True(t, ok)
	assert.Equal(t, "Silver Bracelet", p.Name)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	c := testCatalog(t)
	assert.Equal(t, []string{"Bracelets", "Pendants", "Rings"}, c.Categories())
}

func TestFormatForDisplay(t *testing.T) {
	out := FormatForDisplay(Product{
		Name: "Gold Ring", Price: 150, Category: "Rings",
		Description: "an elegant gold ring", Stock: 5,
	})
	assert.Contains(t, out, "**Gold Ring**")
	assert.Contains(t, out, "Price: $150.00")
	assert.Contains(t, out, "Stock: 5 available")
}
