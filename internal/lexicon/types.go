package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the legal-domain vocabulary for a single language.
type Vocabulary struct {
	Concepts    []string `yaml:"concepts"`
	Authorities []string `yaml:"authorities"`
	LegalTerms  []string `yaml:"legal_terms"`
}

// Markers holds the logical marker terms for a single language.
type Markers struct {
	Connectors []string `yaml:"connectors"`
	Negations  []string `yaml:"negations"`
	Modals     []string `yaml:"modals"`
}

// SettlementVocab holds the offer and denial phrases used by the
// settlement contradiction pattern for a single language.
type SettlementVocab struct {
	Offer  []string `yaml:"offer"`
	Denial []string `yaml:"denial"`
}

// Config is the loadable lexicon configuration. Adding a language means
// adding entries here, not new code.
type Config struct {
	Languages        map[string]Vocabulary      `yaml:"languages"`
	Markers          map[string]Markers         `yaml:"markers"`
	Settlement       map[string]SettlementVocab `yaml:"settlement"`
	AuthorityRanks   map[string]int             `yaml:"authority_ranks"`
	TemporalPatterns map[string][]string        `yaml:"temporal_patterns"`
}

// LoadConfig reads a lexicon configuration from a YAML file and merges it
// over the built-in defaults. Languages present in the file replace the
// default entry for that language wholesale.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon config: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse lexicon config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Merge(&loaded)
	return cfg, nil
}

// Merge overlays non-empty sections of other onto c, language by language.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	for lang, vocab := range other.Languages {
		c.Languages[lang] = vocab
	}
	for lang, m := range other.Markers {
		c.Markers[lang] = m
	}
	for lang, sv := range other.Settlement {
		c.Settlement[lang] = sv
	}
	for name, rank := range other.AuthorityRanks {
		c.AuthorityRanks[name] = rank
	}
	for lang, patterns := range other.TemporalPatterns {
		c.TemporalPatterns[lang] = patterns
	}
}
