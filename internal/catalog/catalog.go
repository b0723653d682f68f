package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Catalog holds the product set in memory. It is loaded once at startup and
// replaced wholesale on Reload; reads vastly outnumber reloads.
type Catalog struct {
	mu       sync.RWMutex
	repo     Repo
	products []Product
}

func New(repo Repo) *Catalog {
	return &Catalog{repo: repo}
}

// Reload replaces the in-memory product set from the repo.
func (c *Catalog) Reload(ctx context.Context) error {
	products, err := c.repo.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("catalog reload: %w", err)
	}
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return nil
}

// Products returns a copy of the current product set.
func (c *Catalog) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id, or false.
func (c *Catalog) Get(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Search filters products by category, price range, and a case-insensitive
// substring match against name or description, in that order.
func (c *Catalog) Search(f Filter) []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var results []Product
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range c.products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		results = append(results, p)
	}
	return results
}

// SearchText is the common text-only search.
func (c *Catalog) SearchText(query string) []Product {
	return c.Search(Filter{Query: query})
}

// Categories returns the sorted set of categories present in the catalog.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// FormatForDisplay renders a product the way it is shown inside LLM context.
func FormatForDisplay(p Product) string {
	return fmt.Sprintf(
		"**%s**\nPrice: $%.2f\nCategory: %s\nDescription: %s\nStock: %d available",
		p.Name, p.Price, p.Category, p.Description, p.Stock,
	)
}
