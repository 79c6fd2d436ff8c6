package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordlex/legal-analyzer/internal/statement"
)

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Degenerate inputs collapse to zero.
	assert.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
}

func TestCosineDistance(t *testing.T) {
	assert.InDelta(t, 0.0, CosineDistance([]float32{2, 0}, []float32{5, 0}), 1e-9)
	assert.InDelta(t, 2.0, CosineDistance([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func stmtWithEmbedding(text string, emb []float32) *statement.SemanticStatement {
	return &statement.SemanticStatement{Text: text, Language: "en", Embedding: emb}
}

func TestCrossPairs(t *testing.T) {
	a := []*statement.SemanticStatement{
		stmtWithEmbedding("a0", []float32{1, 0}),
		stmtWithEmbedding("a1", []float32{0, 1}),
	}
	b := []*statement.SemanticStatement{
		stmtWithEmbedding("b0", []float32{1, 0.1}),
		stmtWithEmbedding("b1", []float32{-1, 0}),
	}

	pairs := CrossPairs(a, b, 0.5)
	require.Len(t, pairs, 1)
	assert.Equal(t, 0, pairs[0].Idx1)
	assert.Equal(t, 0, pairs[0].Idx2)
	assert.Greater(t, pairs[0].Similarity, 0.9)
}

func TestWithinPairsSkipsSelfAndDuplicates(t *testing.T) {
	stmts := []*statement.SemanticStatement{
		stmtWithEmbedding("s0", []float32{1, 0}),
		stmtWithEmbedding("s1", []float32{1, 0}),
		stmtWithEmbedding("s2", []float32{0, 1}),
	}

	pairs := WithinPairs(stmts, 0.9)
	require.Len(t, pairs, 1)
	assert.Equal(t, 0, pairs[0].Idx1)
	assert.Equal(t, 1, pairs[0].Idx2)
}
