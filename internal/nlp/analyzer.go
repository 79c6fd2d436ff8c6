// Package nlp provides the default linguistic analyzer backing statement
// extraction. It is marker-based: logical structure, legal concepts,
// authority references and temporal markers come from lexicon lookups, not
// from a parse. Systems with a dependency parser or NER model supply their
// own statement.Annotator instead.
package nlp

import (
	"strings"

	"github.com/nordlex/legal-analyzer/internal/lexicon"
	"github.com/nordlex/legal-analyzer/internal/statement"
)

// MarkerAnalyzer implements statement.Annotator over a lexicon store.
// Languages without lexicon entries yield empty annotations, never errors.
type MarkerAnalyzer struct {
	store *lexicon.Store
}

// NewMarkerAnalyzer creates an analyzer backed by the given lexicon store.
func NewMarkerAnalyzer(store *lexicon.Store) *MarkerAnalyzer {
	return &MarkerAnalyzer{store: store}
}

// Annotate derives the lexicon-backed annotation for one sentence.
// Semantic roles beyond negations and named entities require a parse and
// are left empty here.
func (a *MarkerAnalyzer) Annotate(text, language string) statement.Annotation {
	lower := strings.ToLower(text)

	logic := a.logicalStructure(lower, language)

	return statement.Annotation{
		Roles: statement.SemanticRoles{
			Negations: logic.NegationScope,
		},
		Logic:               logic,
		LegalConcepts:       a.legalConcepts(lower, language),
		AuthorityReferences: a.authorityReferences(text, language),
		TemporalMarkers:     a.temporalMarkers(text, language),
	}
}

func (a *MarkerAnalyzer) logicalStructure(lower, language string) statement.LogicalStructure {
	markers := a.store.MarkersFor(language)

	var logic statement.LogicalStructure
	for _, connector := range markers.Connectors {
		if strings.Contains(lower, connector) {
			logic.Connectors = append(logic.Connectors, connector)
		}
	}
	for _, negation := range markers.Negations {
		if strings.Contains(lower, negation) {
			logic.NegationScope = append(logic.NegationScope, negation)
		}
	}
	for _, modal := range markers.Modals {
		if strings.Contains(lower, modal) {
			logic.Modals = append(logic.Modals, modal)
		}
	}
	return logic
}

func (a *MarkerAnalyzer) legalConcepts(lower, language string) []string {
	var concepts []string
	for _, concept := range a.store.ConceptsFor(language) {
		if strings.Contains(lower, strings.ToLower(concept)) {
			concepts = append(concepts, concept)
		}
	}
	return concepts
}

// authorityReferences matches case-sensitively: authority names are proper
// nouns and lowercase occurrences are usually common-noun homographs.
func (a *MarkerAnalyzer) authorityReferences(text, language string) []string {
	var authorities []string
	for _, authority := range a.store.AuthoritiesFor(language) {
		if strings.Contains(text, authority) {
			authorities = append(authorities, authority)
		}
	}
	return authorities
}

func (a *MarkerAnalyzer) temporalMarkers(text, language string) []string {
	var markers []string
	for _, re := range a.store.TemporalPatternsFor(language) {
		markers = append(markers, re.FindAllString(text, -1)...)
	}
	return markers
}
