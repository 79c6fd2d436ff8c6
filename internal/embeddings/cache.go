package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Embedder is the minimal embedding interface the cache wraps.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
	Dimension() int
}

// Cache stores embeddings by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) ([]float32, bool)
	Set(key string, embedding []float32)
}

// CacheKey derives a stable cache key from model and text. Legal documents
// repeat boilerplate sentences heavily, so hit rates are high in practice.
func CacheKey(model, text string) string {
	h := sha256.Sum256([]byte(model + ":" + text))
	return hex.EncodeToString(h[:])[:16]
}

// LRUCache is a fixed-size in-memory Cache.
type LRUCache struct {
	inner *lru.Cache[string, []float32]
}

// NewLRUCache creates a cache holding up to size embeddings.
func NewLRUCache(size int) (*LRUCache, error) {
	inner, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("create embedding cache: %w", err)
	}
	return &LRUCache{inner: inner}, nil
}

func (c *LRUCache) Get(key string) ([]float32, bool) {
	return c.inner.Get(key)
}

func (c *LRUCache) Set(key string, embedding []float32) {
	c.inner.Add(key, embedding)
}

// NoOpCache never hits. Useful in tests.
type NoOpCache struct{}

func (NoOpCache) Get(string) ([]float32, bool) { return nil, false }
func (NoOpCache) Set(string, []float32)        {}

// CachedClient wraps an Embedder with a Cache, embedding only the texts the
// cache misses.
type CachedClient struct {
	embedder Embedder
	cache    Cache
}

// NewCachedClient wraps embedder with cache.
func NewCachedClient(embedder Embedder, cache Cache) *CachedClient {
	return &CachedClient{embedder: embedder, cache: cache}
}

// EmbedTexts returns cached embeddings where possible and fetches the rest
// in one batch, preserving input order.
func (c *CachedClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	model := c.embedder.Model()
	results := make([][]float32, len(texts))

	var missTexts []string
	var missIndices []int
	for i, text := range texts {
		if emb, ok := c.cache.Get(CacheKey(model, text)); ok {
			results[i] = emb
			continue
		}
		missTexts = append(missTexts, text)
		missIndices = append(missIndices, i)
	}

	if len(missTexts) > 0 {
		fetched, err := c.embedder.EmbedTexts(ctx, missTexts)
		if err != nil {
			return nil, err
		}
		for i, idx := range missIndices {
			results[idx] = fetched[i]
			c.cache.Set(CacheKey(model, texts[idx]), fetched[i])
		}
	}

	return results, nil
}

// EmbedText embeds a single text through the cache.
func (c *CachedClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	results, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// Model returns the wrapped embedder's model identifier.
func (c *CachedClient) Model() string { return c.embedder.Model() }

// Dimension returns the wrapped embedder's dimension.
func (c *CachedClient) Dimension() int { return c.embedder.Dimension() }
