package retrieval

import (
	"context"
	"fmt"
	"log"

	"github.com/leeway-ai/store-assistant/internal/ai"
	"github.com/leeway-ai/store-assistant/internal/catalog"
)

const maxCatalogContext = 3

// Retriever combines vector similarity search with catalog substring search
// into one ranked context list for the generation provider.
type Retriever struct {
	embedder ai.Embedder
	index    Index
	catalog  *catalog.Catalog
}

func NewRetriever(embedder ai.Embedder, index Index, cat *catalog.Catalog) *Retriever {
	return &Retriever{embedder: embedder, index: index, catalog: cat}
}

// Retrieve returns context items for the query: up to topK vector hits plus
// up to three catalog matches. A product can legitimately appear from both
// sources; the duplication reinforces signal and is kept on purpose.
// Embedding or index failure degrades to catalog-only — never an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) []ai.ContextItem {
	var items []ai.ContextItem

	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		log.Printf("[retrieval] embed failed, degrading to catalog only: %v", err)
	} else {
		results, err := r.index.Search(ctx, vector, topK)
		if err != nil {
			log.Printf("[retrieval] index search failed, degrading to catalog only: %v", err)
		} else {
			for _, res := range results {
				items = append(items, r.toContextItem(res))
			}
		}
	}

	products := r.catalog.SearchText(query)
	if len(products) > maxCatalogContext {
		products = products[:maxCatalogContext]
	}
	for _, p := range products {
		items = append(items, ai.ContextItem{
			Text:      catalog.FormatForDisplay(p),
			ProductID: p.ID,
			Kind:      ai.KindProduct,
		})
	}

	return items
}

// SyncCatalog re-embeds the whole catalog and replaces the index contents.
func (r *Retriever) SyncCatalog(ctx context.Context) error {
	products := r.catalog.Products()
	if len(products) == 0 {
		// an empty catalog still clears previously indexed vectors
		if err := r.index.Reset(ctx); err != nil {
			return fmt.Errorf("index reset: %w", err)
		}
		return nil
	}

	texts := make([]string, len(products))
	docs := make([]Document, len(products))
	for i, p := range products {
		texts[i] = fmt.Sprintf(
			"Product: %s\nDescription: %s\nCategory: %s\nPrice: $%.2f",
			p.Name, p.Description, p.Category, p.Price,
		)
		docs[i] = Document{
			ID:   p.ID,
			Text: texts[i],
			Metadata: map[string]any{
				"product_id": p.ID,
				"name":       p.Name,
				"category":   p.Category,
				"kind":       string(ai.KindProduct),
			},
		}
	}

	vectors, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("catalog embed: %w", err)
	}
	if err := r.index.Reset(ctx); err != nil {
		return fmt.Errorf("index reset: %w", err)
	}
	if err := r.index.Add(ctx, vectors, docs); err != nil {
		return fmt.Errorf("index add: %w", err)
	}

	log.Printf("[retrieval] indexed %d products", len(products))
	return nil
}

func (r *Retriever) toContextItem(res Result) ai.ContextItem {
	item := ai.ContextItem{Text: res.Text, Kind: ai.KindRetrieved}
	if id, ok := res.Metadata["product_id"].(string); ok {
		item.ProductID = id
		// indexed text can lag behind a catalog reload; show current
		// price and stock while the product still exists
		if p, ok := r.catalog.Get(id); ok {
			item.Text = catalog.FormatForDisplay(p)
		}
	}
	if kind, ok := res.Metadata["kind"].(string); ok && kind != "" {
		item.Kind = ai.Kind(kind)
	}
	return item
}
