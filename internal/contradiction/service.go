package contradiction

import (
	"sort"

	"github.com/nordlex/legal-analyzer/internal/similarity"
	"github.com/nordlex/legal-analyzer/internal/statement"
)

// ServiceConfig bounds batch analysis.
type ServiceConfig struct {
	// MinSimilarity filters candidate pairs before scoring. Pairs about
	// unrelated subjects rarely contradict each other.
	MinSimilarity float64
	// MaxPairs caps how many candidate pairs are scored per batch, keeping
	// the most similar ones.
	MaxPairs int
}

// DefaultServiceConfig returns the default batch bounds.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MinSimilarity: 0.5,
		MaxPairs:      100,
	}
}

// Service runs the engine over batches of statement pairs.
type Service struct {
	engine *Engine
	config ServiceConfig
}

// NewService creates a batch detection service.
func NewService(engine *Engine, config ServiceConfig) *Service {
	defaults := DefaultServiceConfig()
	if config.MinSimilarity <= 0 {
		config.MinSimilarity = defaults.MinSimilarity
	}
	if config.MaxPairs <= 0 {
		config.MaxPairs = defaults.MaxPairs
	}
	return &Service{engine: engine, config: config}
}

// PairFinding is a fired finding together with the pair it was found in.
type PairFinding struct {
	Finding

	Index1     int     `json:"index1"`
	Index2     int     `json:"index2"`
	Statement1 string  `json:"statement1"`
	Statement2 string  `json:"statement2"`
	Similarity float64 `json:"similarity"`
}

// DetectAcross scores statement pairs across two statement sets, typically
// two documents. Candidate pairs are pre-filtered by embedding similarity
// and capped at the configured maximum; fired findings come back sorted by
// confidence descending. Distinct pairs are independent, so the loop could
// fan out across workers as long as results are re-sorted afterwards.
func (s *Service) DetectAcross(stmts1, stmts2 []*statement.SemanticStatement) ([]PairFinding, error) {
	pairs := similarity.CrossPairs(stmts1, stmts2, s.config.MinSimilarity)
	if len(pairs) > s.config.MaxPairs {
		pairs = pairs[:s.config.MaxPairs]
	}

	var findings []PairFinding
	for _, pair := range pairs {
		st1 := stmts1[pair.Idx1]
		st2 := stmts2[pair.Idx2]

		finding, err := s.engine.Detect(st1, st2)
		if err != nil {
			return nil, err
		}
		if !finding.Fired() {
			continue
		}

		findings = append(findings, PairFinding{
			Finding:    finding,
			Index1:     pair.Idx1,
			Index2:     pair.Idx2,
			Statement1: st1.Text,
			Statement2: st2.Text,
			Similarity: pair.Similarity,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Confidence > findings[j].Confidence
	})
	return findings, nil
}

// GroupByPattern groups findings by their pattern type.
func GroupByPattern(findings []PairFinding) map[PatternType][]PairFinding {
	grouped := make(map[PatternType][]PairFinding)
	for _, f := range findings {
		grouped[f.Pattern] = append(grouped[f.Pattern], f)
	}
	return grouped
}
