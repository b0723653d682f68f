package ai

import "context"

// Kind tags where a context item came from.
type Kind string

const (
	KindProduct   Kind = "product"
	KindRetrieved Kind = "retrieved"
	KindTraining  Kind = "training"
)

// ContextItem is a unit of grounding fed to the generation provider.
// Ephemeral: constructed per request, never persisted.
type ContextItem struct {
	Text      string
	ProductID string
	Kind      Kind
}

// Generator — external text generation, knows nothing about sessions or the
// catalog. GenerateWithContext must tolerate empty context.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateWithContext(ctx context.Context, query string, items []ContextItem, systemPrompt string) (string, error)
}

// Embedder — external embedding generation. EmbedBatch returns vectors in
// input order.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
