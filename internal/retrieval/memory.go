package retrieval

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
)

// MemoryIndex is a brute-force cosine-distance index. Good enough for a
// catalog-sized corpus; Qdrant covers anything larger.
type MemoryIndex struct {
	mu      sync.RWMutex
	vectors [][]float32
	docs    []Document
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

func (m *MemoryIndex) Add(ctx context.Context, vectors [][]float32, docs []Document) error {
	if len(vectors) != len(docs) {
		return errors.New("vectors and documents length mismatch")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.vectors) > 0 {
		dim := len(m.vectors[0])
		for _, v := range vectors {
			if len(v) != dim {
				return errors.New("vector dimension mismatch")
			}
		}
	}
	m.vectors = append(m.vectors, vectors...)
	m.docs = append(m.docs, docs...)
	return nil
}

// Search returns the k nearest documents by cosine distance (lower = closer).
func (m *MemoryIndex) Search(ctx context.Context, vector []float32, k int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if k <= 0 {
		k = 5
	}

	type scored struct {
		idx      int
		distance float32
	}
	scores := make([]scored, len(m.vectors))
	for i := range m.vectors {
		scores[i] = scored{i, 1 - cosine(m.vectors[i], vector)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].distance < scores[j].distance })

	if k > len(scores) {
		k = len(scores)
	}
	results := make([]Result, 0, k)
	for i := 0; i < k; i++ {
		doc := m.docs[scores[i].idx]
		results = append(results, Result{
			ID:       doc.ID,
			Text:     doc.Text,
			Metadata: doc.Metadata,
			Score:    scores[i].distance,
		})
	}
	return results, nil
}

func (m *MemoryIndex) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vectors = nil
	m.docs = nil
	return nil
}

func cosine(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
