package statement

import (
	"context"
	"fmt"
)

// DefaultExtractionConfidence is assigned to statements built by the
// extractor. It reflects the reliability of marker-based annotation.
const DefaultExtractionConfidence = 0.9

// LanguageIdentifier determines the language of a text. Implementations
// must always return a language code, falling back to a baseline language
// with low confidence rather than failing.
type LanguageIdentifier interface {
	Identify(text string) (language string, confidence float64)
}

// Annotator derives linguistic annotations for a single sentence. For
// unsupported languages implementations return empty structures, never an
// error.
type Annotator interface {
	Annotate(text, language string) Annotation
}

// EmbeddingProvider turns texts into fixed-dimension vectors. All vectors
// compared together must come from the same provider and model.
type EmbeddingProvider interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Extractor turns raw legal text into semantic statements by combining the
// language identifier, segmenter, annotator and embedding provider.
type Extractor struct {
	langID     LanguageIdentifier
	segmenter  Segmenter
	annotator  Annotator
	embedder   EmbeddingProvider
	confidence float64
}

// NewExtractor wires the collaborators into an extraction pipeline.
// A nil segmenter defaults to the rule-based one.
func NewExtractor(langID LanguageIdentifier, segmenter Segmenter, annotator Annotator, embedder EmbeddingProvider) *Extractor {
	if segmenter == nil {
		segmenter = &RuleSegmenter{}
	}
	return &Extractor{
		langID:     langID,
		segmenter:  segmenter,
		annotator:  annotator,
		embedder:   embedder,
		confidence: DefaultExtractionConfidence,
	}
}

// Extract segments text into sentences and builds one statement per
// sentence. If language is empty it is identified first. Embedding failures
// propagate; there is no silent degradation to embedding-less statements.
func (e *Extractor) Extract(ctx context.Context, text, language string) ([]*SemanticStatement, error) {
	if language == "" {
		language, _ = e.langID.Identify(text)
	}

	sentences := e.segmenter.Segment(text, language)
	if len(sentences) == 0 {
		return nil, nil
	}

	embeddings, err := e.embedder.EmbedTexts(ctx, sentences)
	if err != nil {
		return nil, fmt.Errorf("embed statements: %w", err)
	}
	if len(embeddings) != len(sentences) {
		return nil, fmt.Errorf("embedding count mismatch: %d embeddings for %d sentences", len(embeddings), len(sentences))
	}

	statements := make([]*SemanticStatement, 0, len(sentences))
	for i, sentence := range sentences {
		ann := e.annotator.Annotate(sentence, language)
		stmt, err := New(sentence, language, ann, embeddings[i], e.confidence)
		if err != nil {
			return nil, fmt.Errorf("build statement %d: %w", i, err)
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// Build constructs a single statement from an already-segmented text,
// bypassing sentence splitting. Used by the pairwise analyze endpoint
// where each input is one statement.
func (e *Extractor) Build(ctx context.Context, text, language string) (*SemanticStatement, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if language == "" {
		language, _ = e.langID.Identify(text)
	}

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed statement: %w", err)
	}
	if len(embeddings) != 1 {
		return nil, fmt.Errorf("expected one embedding, got %d", len(embeddings))
	}

	ann := e.annotator.Annotate(text, language)
	return New(text, language, ann, embeddings[0], e.confidence)
}

// Rebuild reconstructs a statement from persisted fields, re-deriving
// annotations instead of calling the embedding provider. The embedding is
// taken as stored.
func (e *Extractor) Rebuild(text, language string, embedding []float32, confidence float64) (*SemanticStatement, error) {
	ann := e.annotator.Annotate(text, language)
	return New(text, language, ann, embedding, confidence)
}
