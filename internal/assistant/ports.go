package assistant

import (
	"context"

	"github.com/leeway-ai/store-assistant/internal/ai"
	"github.com/leeway-ai/store-assistant/internal/catalog"
	"github.com/leeway-ai/store-assistant/internal/order"
)

const (
	ActionDisplayProducts = "DISPLAY_PRODUCTS"
	ActionAddToCart       = "ADD_TO_CART"
)

// Reply is the structured result of processing one inbound message.
// Payload is set only when an order was finalized on this turn.
type Reply struct {
	Response string            `json:"response"`
	Products []catalog.Product `json:"products"`
	Action   string            `json:"action,omitempty"`
	Payload  *order.Order      `json:"payload,omitempty"`
}

type Service interface {
	ProcessMessage(ctx context.Context, sessionID, message string) (*Reply, error)
	SyncProducts(ctx context.Context) error
}

// Repo mirrors conversation turns to durable storage. Best-effort: the
// session store stays the source of truth for history.
type Repo interface {
	SaveMessage(ctx context.Context, sessionID, role, content string) error
}

// Retriever assembles grounding context for generation and owns the
// catalog-to-index ingestion.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) []ai.ContextItem
	SyncCatalog(ctx context.Context) error
}
