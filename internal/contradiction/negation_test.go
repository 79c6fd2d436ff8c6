package contradiction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlex/legal-analyzer/internal/statement"
)

func negated(text string, embedding []float32, markers ...string) *statement.SemanticStatement {
	return &statement.SemanticStatement{
		Text:      text,
		Language:  "en",
		Embedding: embedding,
		Logic:     statement.LogicalStructure{NegationScope: markers},
	}
}

func TestNegationDetectorFires(t *testing.T) {
	d := NewNegationDetector(0, 0)

	identical := []float32{0.2, 0.4, 0.6}
	stmt1 := negated("The insurer is not responsible for the injury", identical, "not")
	stmt2 := negated("The insurer is responsible for the injury", identical)

	f := d.Detect(stmt1, stmt2)
	assert.Equal(t, 0.92, f.Confidence)
	assert.Equal(t, PatternNegation, f.Pattern)
}

func TestNegationDetectorXOROnEitherSide(t *testing.T) {
	d := NewNegationDetector(0, 0)

	identical := []float32{1, 1, 0}
	plain := negated("The insurer is responsible for the injury", identical)
	neg := negated("The insurer is not responsible for the injury", identical, "ikke")

	assert.Equal(t, 0.92, d.Detect(plain, neg).Confidence)
	assert.Equal(t, 0.92, d.Detect(neg, plain).Confidence)
}

func TestNegationDetectorBothOrNeitherNegated(t *testing.T) {
	d := NewNegationDetector(0, 0)

	identical := []float32{1, 0, 0}

	both1 := negated("Not responsible at all", identical, "not")
	both2 := negated("Never responsible here", identical, "never")
	assert.False(t, d.Detect(both1, both2).Fired())

	neither1 := negated("Responsible for the injury", identical)
	neither2 := negated("Responsible for the damage", identical)
	assert.False(t, d.Detect(neither1, neither2).Fired())
}

func TestNegationDetectorShortCircuitSkipsSimilarity(t *testing.T) {
	d := NewNegationDetector(0, 0)

	// Embeddings are absent; if both sides are negated the detector must
	// return before touching them.
	stmt1 := negated("Not responsible", nil, "not")
	stmt2 := negated("Never responsible", nil, "never")

	assert.False(t, d.Detect(stmt1, stmt2).Fired())
}

func TestNegationDetectorBelowThreshold(t *testing.T) {
	d := NewNegationDetector(0, 0)

	stmt1 := negated("The insurer is not responsible", []float32{1, 0, 0}, "not")
	stmt2 := negated("The claimant filed an appeal", []float32{0, 1, 0})

	assert.False(t, d.Detect(stmt1, stmt2).Fired())
}
