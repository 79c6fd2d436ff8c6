package contradiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordlex/legal-analyzer/internal/statement"
)

func TestServiceDetectAcross(t *testing.T) {
	engine := NewEngine(testStore(t), DefaultCalibration())
	svc := NewService(engine, ServiceConfig{})

	doc1 := []*statement.SemanticStatement{
		enStatement("We offer a settlement of $5000"),
		enStatement("The hearing was postponed until spring"),
	}
	doc2 := []*statement.SemanticStatement{
		enStatement("We are not liable for any damages"),
	}

	findings, err := svc.DetectAcross(doc1, doc2)
	require.NoError(t, err)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, PatternSettlement, f.Pattern)
	assert.Equal(t, "We offer a settlement of $5000", f.Statement1)
	assert.Equal(t, "We are not liable for any damages", f.Statement2)
	assert.InDelta(t, 1.0, f.Similarity, 1e-9)
}

func TestServiceFiltersDissimilarPairs(t *testing.T) {
	engine := NewEngine(testStore(t), DefaultCalibration())
	svc := NewService(engine, ServiceConfig{MinSimilarity: 0.8})

	stmt1 := enStatement("We offer a settlement of $5000")
	stmt1.Embedding = []float32{1, 0, 0}
	stmt2 := enStatement("We are not liable for any damages")
	stmt2.Embedding = []float32{0, 1, 0}

	findings, err := svc.DetectAcross(
		[]*statement.SemanticStatement{stmt1},
		[]*statement.SemanticStatement{stmt2},
	)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestServiceCapsPairs(t *testing.T) {
	engine := NewEngine(testStore(t), DefaultCalibration())
	svc := NewService(engine, ServiceConfig{MaxPairs: 1})

	doc1 := []*statement.SemanticStatement{
		enStatement("We offer a settlement of $5000"),
		enStatement("A payment offer was made to the claimant yesterday"),
	}
	doc2 := []*statement.SemanticStatement{
		enStatement("We are not liable for any damages"),
	}

	findings, err := svc.DetectAcross(doc1, doc2)
	require.NoError(t, err)
	assert.Len(t, findings, 1)
}

func TestGroupByPattern(t *testing.T) {
	findings := []PairFinding{
		{Finding: Finding{Pattern: PatternSettlement, Confidence: 0.89}},
		{Finding: Finding{Pattern: PatternAuthority, Confidence: 0.94}},
		{Finding: Finding{Pattern: PatternSettlement, Confidence: 0.89}},
	}

	grouped := GroupByPattern(findings)
	assert.Len(t, grouped[PatternSettlement], 2)
	assert.Len(t, grouped[PatternAuthority], 1)
}
