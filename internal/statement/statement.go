// Package statement defines the normalized unit of analysis the
// contradiction detectors consume, together with the collaborator
// interfaces that produce it from raw legal text.
package statement

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText indicates a statement was built without source text.
	ErrEmptyText = errors.New("statement text is empty")
	// ErrMissingEmbedding indicates a similarity comparison was requested
	// for a statement that carries no embedding.
	ErrMissingEmbedding = errors.New("statement has no embedding")
	// ErrDimensionMismatch indicates two statements carry embeddings of
	// different dimensions and cannot be compared.
	ErrDimensionMismatch = errors.New("embedding dimensions do not match")
)

// Entity is a named-entity span within the statement text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SemanticRoles groups surface tokens by the grammatical role they fill.
type SemanticRoles struct {
	Agents    []string `json:"agents"`
	Actions   []string `json:"actions"`
	Objects   []string `json:"objects"`
	Modifiers []string `json:"modifiers"`
	Negations []string `json:"negations"`
}

// LogicalStructure holds the logical markers matched in the statement text.
// A non-empty NegationScope signals the statement contains an explicit
// negation.
type LogicalStructure struct {
	Connectors    []string `json:"logical_connectors"`
	Conditionals  []string `json:"conditional_statements"`
	NegationScope []string `json:"negation_scope"`
	Quantifiers   []string `json:"quantifiers"`
	Modals        []string `json:"modal_verbs"`
}

// Annotation bundles the linguistic features an Annotator derives for one
// sentence.
type Annotation struct {
	Roles               SemanticRoles
	Logic               LogicalStructure
	Entities            []Entity
	LegalConcepts       []string
	AuthorityReferences []string
	TemporalMarkers     []string
}

// SemanticStatement is one sentence of legal text annotated with linguistic
// and embedding features. It is a pure value: once built it is never
// mutated, so it is safe to share across concurrent detector runs.
type SemanticStatement struct {
	Text                string
	Language            string
	Embedding           []float32
	Roles               SemanticRoles
	Logic               LogicalStructure
	Entities            []Entity
	LegalConcepts       []string
	AuthorityReferences []string
	TemporalMarkers     []string

	// Confidence reflects extraction reliability, not contradiction
	// confidence.
	Confidence float64
}

// New assembles a statement from its text, language, annotation and
// embedding. The embedding may be nil for callers that only run lexical
// detectors; similarity-based detection then fails with
// ErrMissingEmbedding at comparison time.
func New(text, language string, ann Annotation, embedding []float32, confidence float64) (*SemanticStatement, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	return &SemanticStatement{
		Text:                text,
		Language:            language,
		Embedding:           embedding,
		Roles:               ann.Roles,
		Logic:               ann.Logic,
		Entities:            ann.Entities,
		LegalConcepts:       ann.LegalConcepts,
		AuthorityReferences: ann.AuthorityReferences,
		TemporalMarkers:     ann.TemporalMarkers,
		Confidence:          confidence,
	}, nil
}

// HasNegation reports whether the statement carries an explicit negation.
func (s *SemanticStatement) HasNegation() bool {
	return len(s.Logic.NegationScope) > 0
}

// ValidatePair checks that two statements can be compared by the
// similarity-based detectors: both carry embeddings of the same dimension.
// Whether the embeddings come from the same model is a precondition the
// caller must guarantee; it cannot be verified here.
func ValidatePair(a, b *SemanticStatement) error {
	if a == nil || b == nil {
		return errors.New("statement is nil")
	}
	if a.Text == "" || b.Text == "" {
		return ErrEmptyText
	}
	if len(a.Embedding) == 0 || len(b.Embedding) == 0 {
		return ErrMissingEmbedding
	}
	if len(a.Embedding) != len(b.Embedding) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a.Embedding), len(b.Embedding))
	}
	return nil
}
