package embeddings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmbedder struct {
	calls int
	texts []string
}

func (e *countingEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.calls++
	e.texts = append(e.texts, texts...)
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = []float32{float32(len(text))}
	}
	return out, nil
}

func (e *countingEmbedder) Model() string  { return "test-model" }
func (e *countingEmbedder) Dimension() int { return 1 }

func TestCacheKeyStableAndModelScoped(t *testing.T) {
	k1 := CacheKey("model-a", "some legal text")
	k2 := CacheKey("model-a", "some legal text")
	k3 := CacheKey("model-b", "some legal text")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Len(t, k1, 16)
}

func TestLRUCacheRoundTrip(t *testing.T) {
	cache, err := NewLRUCache(2)
	require.NoError(t, err)

	cache.Set("a", []float32{1})
	cache.Set("b", []float32{2})

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, []float32{1}, got)

	// Third insert evicts the least recently used entry.
	cache.Set("c", []float32{3})
	_, okB := cache.Get("b")
	assert.False(t, okB)
}

func TestCachedClientSkipsCachedTexts(t *testing.T) {
	inner := &countingEmbedder{}
	cache, err := NewLRUCache(16)
	require.NoError(t, err)
	client := NewCachedClient(inner, cache)

	ctx := context.Background()

	first, err := client.EmbedTexts(ctx, []string{"alpha", "beta"})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, inner.calls)

	// Second call: "alpha" and "beta" hit the cache, only "gamma" is fetched.
	second, err := client.EmbedTexts(ctx, []string{"alpha", "gamma", "beta"})
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, inner.texts)
	assert.Equal(t, first[0], second[0])
	assert.Equal(t, first[1], second[2])
}

func TestCachedClientNoOpCacheAlwaysFetches(t *testing.T) {
	inner := &countingEmbedder{}
	client := NewCachedClient(inner, NoOpCache{})

	ctx := context.Background()
	_, err := client.EmbedTexts(ctx, []string{"alpha"})
	require.NoError(t, err)
	_, err = client.EmbedTexts(ctx, []string{"alpha"})
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
