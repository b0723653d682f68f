package ai

import (
	"fmt"

	"github.com/leeway-ai/store-assistant/internal/config"
)

// New resolves the configured provider once at construction time; call sites
// only ever see the Generator and Embedder ports.
func New(cfg config.AIConfig) (Generator, Embedder, error) {
	switch cfg.Provider {
	case "openai", "":
		c := NewOpenAIClient(cfg.OpenAIModel, cfg.OpenAIEmbedModel)
		return c, c, nil
	case "ollama":
		c := NewOllamaClient(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.OllamaEmbedModel)
		return c, c, nil
	default:
		return nil, nil, fmt.Errorf("unknown ai provider: %s", cfg.Provider)
	}
}
