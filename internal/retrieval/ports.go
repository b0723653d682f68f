package retrieval

import "context"

// Document is what gets indexed alongside a vector.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]any
}

// Result is a single nearest-neighbor hit. Score semantics follow the
// index's native distance metric and are not comparable across drivers.
type Result struct {
	ID       string
	Text     string
	Metadata map[string]any
	Score    float32
}

// Index persists vectors with payloads and answers nearest-neighbor queries.
type Index interface {
	Add(ctx context.Context, vectors [][]float32, docs []Document) error
	Search(ctx context.Context, vector []float32, k int) ([]Result, error)
	Reset(ctx context.Context) error
}
