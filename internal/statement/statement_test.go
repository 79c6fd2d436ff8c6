package statement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyText(t *testing.T) {
	_, err := New("", "en", Annotation{}, nil, 0.9)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestHasNegation(t *testing.T) {
	stmt := &SemanticStatement{Logic: LogicalStructure{NegationScope: []string{"not"}}}
	assert.True(t, stmt.HasNegation())

	stmt = &SemanticStatement{}
	assert.False(t, stmt.HasNegation())
}

func TestValidatePair(t *testing.T) {
	ok1 := &SemanticStatement{Text: "a statement", Embedding: []float32{1, 0, 0}}
	ok2 := &SemanticStatement{Text: "another statement", Embedding: []float32{0, 1, 0}}

	assert.NoError(t, ValidatePair(ok1, ok2))

	missing := &SemanticStatement{Text: "no embedding here"}
	assert.ErrorIs(t, ValidatePair(ok1, missing), ErrMissingEmbedding)

	short := &SemanticStatement{Text: "short vector", Embedding: []float32{1, 0}}
	assert.ErrorIs(t, ValidatePair(ok1, short), ErrDimensionMismatch)

	assert.Error(t, ValidatePair(ok1, nil))
}

func TestRuleSegmenterFiltersShortSegments(t *testing.T) {
	seg := &RuleSegmenter{}

	text := "Yes. The insurer offered a settlement of five thousand dollars! " +
		"No. The insurer denies any liability for the reported damages?"
	got := seg.Segment(text, "en")

	require.Len(t, got, 2)
	assert.Equal(t, "The insurer offered a settlement of five thousand dollars", got[0])
	assert.Equal(t, "The insurer denies any liability for the reported damages", got[1])
}

func TestRuleSegmenterEmptyInput(t *testing.T) {
	seg := &RuleSegmenter{}
	assert.Empty(t, seg.Segment("", "en"))
	assert.Empty(t, seg.Segment("Short. Tiny. No.", "en"))
}

type fakeLangID struct{ lang string }

func (f fakeLangID) Identify(text string) (string, float64) { return f.lang, 0.95 }

type fakeAnnotator struct{}

func (fakeAnnotator) Annotate(text, language string) Annotation {
	return Annotation{Logic: LogicalStructure{Connectors: []string{"but"}}}
}

type fakeEmbedder struct {
	dim  int
	err  error
	seen []string
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seen = texts
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, f.dim)
		out[i][0] = 1
	}
	return out, nil
}

func TestExtractorBuildsStatements(t *testing.T) {
	embedder := &fakeEmbedder{dim: 4}
	ex := NewExtractor(fakeLangID{lang: "en"}, nil, fakeAnnotator{}, embedder)

	text := "The insurer offered a settlement of five thousand dollars. " +
		"The insurer denies any liability for the reported damages."
	stmts, err := ex.Extract(context.Background(), text, "")
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	for _, s := range stmts {
		assert.Equal(t, "en", s.Language)
		assert.Len(t, s.Embedding, 4)
		assert.Equal(t, DefaultExtractionConfidence, s.Confidence)
		assert.Equal(t, []string{"but"}, s.Logic.Connectors)
	}
	assert.Equal(t, []string{stmts[0].Text, stmts[1].Text}, embedder.seen)
}

func TestExtractorPropagatesEmbeddingError(t *testing.T) {
	wantErr := errors.New("provider down")
	ex := NewExtractor(fakeLangID{lang: "en"}, nil, fakeAnnotator{}, &fakeEmbedder{err: wantErr})

	_, err := ex.Extract(context.Background(), "A sentence that is long enough to keep.", "en")
	assert.ErrorIs(t, err, wantErr)
}

func TestExtractorBuildSingleStatement(t *testing.T) {
	ex := NewExtractor(fakeLangID{lang: "no"}, nil, fakeAnnotator{}, &fakeEmbedder{dim: 3})

	stmt, err := ex.Build(context.Background(), "Vi tilbyr et oppgjør på 50000 kroner", "")
	require.NoError(t, err)
	assert.Equal(t, "no", stmt.Language)
	assert.Len(t, stmt.Embedding, 3)

	_, err = ex.Build(context.Background(), "", "no")
	assert.ErrorIs(t, err, ErrEmptyText)
}
