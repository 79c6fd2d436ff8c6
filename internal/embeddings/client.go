// Package embeddings implements the embedding provider collaborator: an
// HTTP client for an OpenAI-compatible embeddings API with batching,
// bounded concurrency and optional caching. All statements compared in one
// analysis must be embedded by the same model, or cosine similarity is
// meaningless.
package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	defaultBaseURL       = "https://openrouter.ai/api/v1"
	defaultBatchSize     = 100
	defaultMaxConcurrent = 5
	defaultTimeout       = 30 * time.Second
)

// Client generates embeddings over HTTP.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	model         string
	batchSize     int
	maxConcurrent int
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithModel selects the embedding model.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithBatchSize sets how many texts go into one API request.
func WithBatchSize(size int) ClientOption {
	return func(c *Client) { c.batchSize = size }
}

// WithMaxConcurrent bounds in-flight API requests.
func WithMaxConcurrent(n int) ClientOption {
	return func(c *Client) { c.maxConcurrent = n }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates an embedding client for the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: defaultTimeout},
		baseURL:       defaultBaseURL,
		apiKey:        apiKey,
		model:         DefaultModel,
		batchSize:     defaultBatchSize,
		maxConcurrent: defaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Dimension returns the embedding dimension of the configured model.
func (c *Client) Dimension() int {
	return ModelDimension(c.model)
}

// EmbedTexts embeds texts in batches, preserving input order. The first
// batch error aborts the whole call; partial results are never returned.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results := make([][]float32, len(texts))
	sem := make(chan struct{}, c.maxConcurrent)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		wg.Add(1)
		go func(start int, batch []string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			vectors, err := c.embedBatch(ctx, batch)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("batch at offset %d: %w", start, err)
				}
				return
			}
			copy(results[start:], vectors)
		}(start, texts[start:end])
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// EmbedText embeds a single text.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	results, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return results[0], nil
}

func (c *Client) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	body, err := json.Marshal(EmbeddingRequest{Model: c.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var embResp EmbeddingResponse
	if err := json.Unmarshal(respBody, &embResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	// The API may return entries out of order; place them by index.
	vectors := make([][]float32, len(texts))
	for _, data := range embResp.Data {
		if data.Index >= 0 && data.Index < len(vectors) {
			vectors[data.Index] = data.Embedding
		}
	}
	return vectors, nil
}
