package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// OllamaClient implements Generator and Embedder against a local Ollama
// server. Both APIs are plain JSON over HTTP.
type OllamaClient struct {
	baseURL    string
	model      string
	embedModel string
	client     *http.Client
}

func NewOllamaClient(baseURL, model, embedModel string) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	if embedModel == "" {
		embedModel = "mxbai-embed-large"
	}

	return &OllamaClient{
		baseURL:    baseURL,
		model:      model,
		embedModel: embedModel,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	err := c.postJSON(ctx, "/api/generate", map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Response == "" {
		return "", errors.New("ollama: empty completion")
	}
	return resp.Response, nil
}

func (c *OllamaClient) GenerateWithContext(ctx context.Context, query string, items []ContextItem, systemPrompt string) (string, error) {
	return c.Generate(ctx, BuildRAGPrompt(query, items, systemPrompt))
}

func (c *OllamaClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	var resp struct {
		Embedding []float64 `json:"embedding"`
	}
	err := c.postJSON(ctx, "/api/embeddings", map[string]any{
		"model":  c.embedModel,
		"prompt": text,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Embedding) == 0 {
		return nil, errors.New("ollama: empty embedding")
	}

	vector := make([]float32, len(resp.Embedding))
	for i, v := range resp.Embedding {
		vector[i] = float32(v)
	}
	return vector, nil
}

// EmbedBatch embeds texts one by one; the embeddings endpoint takes a single
// prompt per call.
func (c *OllamaClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := c.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}

func (c *OllamaClient) postJSON(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(b),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New(
			"ollama api error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
