// Package lexicon provides read-only, language-scoped vocabulary lookups
// for the contradiction detectors: legal concepts, authority names, logical
// markers, settlement phrases and the global authority-rank table.
package lexicon

import (
	"fmt"
	"regexp"
)

// DefaultAuthorityRank is assigned to any authority missing from the rank table.
const DefaultAuthorityRank = 1

// Store is an immutable snapshot of the lexicon configuration. A Store is
// safe for concurrent use; to change the lexicon, build a new Store and swap
// the reference, never mutate one in place.
type Store struct {
	vocabularies map[string]Vocabulary
	markers      map[string]Markers
	settlement   map[string]SettlementVocab
	ranks        map[string]int
	temporal     map[string][]*regexp.Regexp
}

// NewStore builds a Store from cfg. A nil cfg yields the built-in defaults.
// The only error condition is an invalid temporal pattern regex.
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	temporal := make(map[string][]*regexp.Regexp, len(cfg.TemporalPatterns))
	for lang, patterns := range cfg.TemporalPatterns {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("temporal pattern for %q: %w", lang, err)
			}
			compiled = append(compiled, re)
		}
		temporal[lang] = compiled
	}

	return &Store{
		vocabularies: cfg.Languages,
		markers:      cfg.Markers,
		settlement:   cfg.Settlement,
		ranks:        cfg.AuthorityRanks,
		temporal:     temporal,
	}, nil
}

// ConceptsFor returns the legal concept terms for a language. Unknown
// languages yield an empty slice, never an error, so detectors can always
// run and simply find no matches. Callers must not modify the result.
func (s *Store) ConceptsFor(language string) []string {
	return s.vocabularies[language].Concepts
}

// AuthoritiesFor returns the recognized authority names for a language.
func (s *Store) AuthoritiesFor(language string) []string {
	return s.vocabularies[language].Authorities
}

// LegalTermsFor returns the procedural legal terms for a language.
func (s *Store) LegalTermsFor(language string) []string {
	return s.vocabularies[language].LegalTerms
}

// MarkersFor returns the logical marker terms for a language. Unknown
// languages yield zero-value Markers.
func (s *Store) MarkersFor(language string) Markers {
	return s.markers[language]
}

// SettlementFor returns the settlement vocabulary for a language and
// whether one is configured.
func (s *Store) SettlementFor(language string) (SettlementVocab, bool) {
	v, ok := s.settlement[language]
	return v, ok
}

// HasSettlementVocab reports whether a settlement vocabulary exists for
// the language.
func (s *Store) HasSettlementVocab(language string) bool {
	_, ok := s.settlement[language]
	return ok
}

// RankOf returns the rank of an authority, higher meaning more
// authoritative. Unranked names get DefaultAuthorityRank.
func (s *Store) RankOf(authority string) int {
	if rank, ok := s.ranks[authority]; ok {
		return rank
	}
	return DefaultAuthorityRank
}

// TemporalPatternsFor returns the compiled temporal expressions for a language.
func (s *Store) TemporalPatternsFor(language string) []*regexp.Regexp {
	return s.temporal[language]
}

// Languages returns the set of languages with a vocabulary entry.
func (s *Store) Languages() []string {
	langs := make([]string, 0, len(s.vocabularies))
	for lang := range s.vocabularies {
		langs = append(langs, lang)
	}
	return langs
}
