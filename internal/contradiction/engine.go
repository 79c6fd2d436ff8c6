package contradiction

import (
	"fmt"

	"github.com/nordlex/legal-analyzer/internal/lexicon"
	"github.com/nordlex/legal-analyzer/internal/statement"
)

// Engine runs an ordered registry of detectors over a statement pair and
// reports the single highest-confidence finding. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	detectors []Detector
}

// NewEngine builds an engine with the built-in detectors in their
// calibrated order: settlement, negation, authority. The order matters
// only for tie-breaking and must stay stable.
func NewEngine(store *lexicon.Store, cal Calibration) *Engine {
	return &Engine{
		detectors: []Detector{
			NewSettlementDetector(store, cal.Settlement),
			NewNegationDetector(cal.Negation, cal.SimilarityThreshold),
			NewAuthorityDetector(store, cal.Authority),
		},
	}
}

// Register appends a detector to the registry. Later-registered detectors
// lose exact confidence ties against earlier ones.
func (e *Engine) Register(d Detector) {
	e.detectors = append(e.detectors, d)
}

// Detectors returns the registered pattern types in order.
func (e *Engine) Detectors() []PatternType {
	types := make([]PatternType, len(e.detectors))
	for i, d := range e.detectors {
		types[i] = d.Type()
	}
	return types
}

// Detect validates the pair and scores it with every registered detector.
// A later finding replaces the running best only when its confidence is
// strictly greater, so on an exact tie the earlier-registered detector's
// explanation and pattern win. The zero Finding with a nil error is the
// "no contradiction found" terminal result, distinct from a malformed-pair
// error.
func (e *Engine) Detect(stmt1, stmt2 *statement.SemanticStatement) (Finding, error) {
	if err := statement.ValidatePair(stmt1, stmt2); err != nil {
		return Finding{}, fmt.Errorf("invalid statement pair: %w", err)
	}

	var best Finding
	for _, d := range e.detectors {
		if f := d.Detect(stmt1, stmt2); f.Confidence > best.Confidence {
			best = f
		}
	}
	return best, nil
}
