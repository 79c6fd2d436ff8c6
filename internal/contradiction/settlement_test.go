package contradiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordlex/legal-analyzer/internal/lexicon"
	"github.com/nordlex/legal-analyzer/internal/statement"
)

func testStore(t *testing.T) *lexicon.Store {
	t.Helper()
	store, err := lexicon.NewStore(nil)
	require.NoError(t, err)
	return store
}

func enStatement(text string) *statement.SemanticStatement {
	return &statement.SemanticStatement{
		Text:      text,
		Language:  "en",
		Embedding: []float32{1, 0, 0},
	}
}

func TestSettlementDetectorFires(t *testing.T) {
	d := NewSettlementDetector(testStore(t), 0)

	stmt1 := enStatement("We offer a settlement of $5000")
	stmt2 := enStatement("We are not liable for any damages")

	f := d.Detect(stmt1, stmt2)
	assert.Equal(t, 0.89, f.Confidence)
	assert.Equal(t, PatternSettlement, f.Pattern)
	assert.NotEmpty(t, f.Explanation)
}

func TestSettlementDetectorSymmetric(t *testing.T) {
	d := NewSettlementDetector(testStore(t), 0)

	stmt1 := enStatement("We offer a settlement of $5000")
	stmt2 := enStatement("We are not liable for any damages")

	forward := d.Detect(stmt1, stmt2)
	backward := d.Detect(stmt2, stmt1)
	assert.Equal(t, forward, backward)
}

func TestSettlementDetectorNoTerms(t *testing.T) {
	d := NewSettlementDetector(testStore(t), 0)

	stmt1 := enStatement("The hearing was postponed until spring")
	stmt2 := enStatement("The claimant submitted additional documents")

	f := d.Detect(stmt1, stmt2)
	assert.False(t, f.Fired())
	assert.Empty(t, f.Explanation)
}

func TestSettlementDetectorOfferWithoutDenial(t *testing.T) {
	d := NewSettlementDetector(testStore(t), 0)

	stmt1 := enStatement("We offer a settlement of $5000")
	stmt2 := enStatement("The payment will be processed next week")

	assert.False(t, d.Detect(stmt1, stmt2).Fired())
}

func TestSettlementDetectorNorwegian(t *testing.T) {
	d := NewSettlementDetector(testStore(t), 0)

	stmt1 := &statement.SemanticStatement{
		Text: "Vi tilbyr et oppgjør på 50000 kroner", Language: "no", Embedding: []float32{1, 0, 0},
	}
	stmt2 := &statement.SemanticStatement{
		Text: "Selskapet er ikke ansvarlig for skaden", Language: "no", Embedding: []float32{1, 0, 0},
	}

	f := d.Detect(stmt1, stmt2)
	assert.Equal(t, 0.89, f.Confidence)
}

func TestSettlementDetectorUnsupportedLanguage(t *testing.T) {
	d := NewSettlementDetector(testStore(t), 0)

	// No settlement vocabulary for German: the detector degrades to a
	// zero finding rather than failing.
	stmt1 := &statement.SemanticStatement{
		Text: "Wir bieten einen Vergleich an", Language: "de", Embedding: []float32{1, 0, 0},
	}
	stmt2 := &statement.SemanticStatement{
		Text: "Wir haften nicht für Schäden", Language: "de", Embedding: []float32{1, 0, 0},
	}

	assert.False(t, d.Detect(stmt1, stmt2).Fired())
}

func TestSettlementDetectorVocabularyKeyedByFirstLanguage(t *testing.T) {
	d := NewSettlementDetector(testStore(t), 0)

	// Both languages carry vocabularies, but matching uses stmt1's terms
	// only: Norwegian terms against English text do not match.
	stmt1 := &statement.SemanticStatement{
		Text: "Vi tilbyr et oppgjør", Language: "no", Embedding: []float32{1, 0, 0},
	}
	stmt2 := enStatement("We are not liable for any damages")

	assert.False(t, d.Detect(stmt1, stmt2).Fired())
}
