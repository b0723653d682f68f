package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeway-ai/store-assistant/internal/ai"
	"github.com/leeway-ai/store-assistant/internal/catalog"
)

type fakeCatalogRepo struct {
	products []catalog.Product
}

func (f *fakeCatalogRepo) LoadProducts(ctx context.Context) ([]catalog.Product, error) {
	return f.products, nil
}

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return f.vec, f.err
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vec
	}
	return out, nil
}

type failingIndex struct{}

func (failingIndex) Add(ctx context.Context, vectors [][]float32, docs []Document) error {
	return errors.New("index down")
}

func (failingIndex) Search(ctx context.Context, vector []float32, k int) ([]Result, error) {
	return nil, errors.New("index down")
}

func (failingIndex) Reset(ctx context.Context) error { return errors.New("index down") }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New(&fakeCatalogRepo{products: []catalog.Product{
		{ID: "p1", Name: "Gold Ring", Description: "an elegant gold ring", Category: "Rings", Price: 150, Stock: 5},
		{ID: "p2", Name: "Silver Bracelet", Description: "a sleek silver bracelet", Category: "Bracelets", Price: 80, Stock: 12},
	}})
	require.NoError(t, c.Reload(context.Background()))
	return c
}

func TestRetrieveCombinesSources(t *testing.T) {
	cat := testCatalog(t)
	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	index := NewMemoryIndex()
	r := NewRetriever(embedder, index, cat)

	require.NoError(t, r.SyncCatalog(context.Background()))

	items := r.Retrieve(context.Background(), "ring", 1)

	// one vector hit plus one catalog match; the same product appearing
	// from both sources is intended
	require.Len(t, items, 2)
	assert.Equal(t, ai.KindProduct, items[0].Kind)
	assert.Equal(t, ai.KindProduct, items[1].Kind)
	assert.Equal(t, "p1", items[1].ProductID)
	assert.Contains(t, items[1].Text, "**Gold Ring**")
}

func TestRetrieveDegradesOnEmbedFailure(t *testing.T) {
	cat := testCatalog(t)
	embedder := &fakeEmbedder{err: errors.New("provider down")}
	r := NewRetriever(embedder, NewMemoryIndex(), cat)

	items := r.Retrieve(context.Background(), "ring", 3)

	require.Len(t, items, 1)
	assert.Equal(t, ai.KindProduct, items[0].Kind)
	assert.Equal(t, "p1", items[0].ProductID)
}

func TestRetrieveDegradesOnIndexFailure(t *testing.T) {
	cat := testCatalog(t)
	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	r := NewRetriever(embedder, failingIndex{}, cat)

	items := r.Retrieve(context.Background(), "ring", 3)

	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
}

func TestRetrieveNoMatches(t *testing.T) {
	cat := testCatalog(t)
	embedder := &fakeEmbedder{err: errors.New("provider down")}
	r := NewRetriever(embedder, NewMemoryIndex(), cat)

	assert.Empty(t, r.Retrieve(context.Background(), "necklace", 3))
}

func TestSyncCatalogIndexesAllProducts(t *testing.T) {
	cat := testCatalog(t)
	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	index := NewMemoryIndex()
	r := NewRetriever(embedder, index, cat)

	require.NoError(t, r.SyncCatalog(context.Background()))

	results, err := index.Search(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRetrieveRefreshesProductContext(t *testing.T) {
	cat := testCatalog(t)
	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	index := NewMemoryIndex()
	r := NewRetriever(embedder, index, cat)

	// index-time text predates a price change
	require.NoError(t, index.Add(context.Background(),
		[][]float32{{1, 0}},
		[]Document{{
			ID:       "p1",
			Text:     "Product: Gold Ring\nPrice: $120.00",
			Metadata: map[string]any{"product_id": "p1", "kind": "product"},
		}},
	))

	items := r.Retrieve(context.Background(), "necklace", 1)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Contains(t, items[0].Text, "Price: $150.00")
}

func TestSyncCatalogClearsIndexWhenEmpty(t *testing.T) {
	repo := &fakeCatalogRepo{products: []catalog.Product{
		{ID: "p1", Name: "Gold Ring", Description: "an elegant gold ring", Category: "Rings", Price: 150, Stock: 5},
	}}
	cat := catalog.New(repo)
	ctx := context.Background()
	require.NoError(t, cat.Reload(ctx))

	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	index := NewMemoryIndex()
	r := NewRetriever(embedder, index, cat)
	require.NoError(t, r.SyncCatalog(ctx))

	repo.products = nil
	require.NoError(t, cat.Reload(ctx))
	require.NoError(t, r.SyncCatalog(ctx))

	results, err := index.Search(ctx, []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSyncCatalogPropagatesIndexError(t *testing.T) {
	cat := testCatalog(t)
	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	r := NewRetriever(embedder, failingIndex{}, cat)

	assert.Error(t, r.SyncCatalog(context.Background()))
}
