// Package contradiction scores pairs of semantic statements for logical
// inconsistency. Each pattern detector implements the same contract; the
// engine runs the registered detectors in order and reports the single
// highest-confidence finding.
package contradiction

import (
	"github.com/nordlex/legal-analyzer/internal/statement"
)

// PatternType names a contradiction pattern.
type PatternType string

const (
	PatternSettlement PatternType = "settlement_contradiction"
	PatternNegation   PatternType = "direct_negation"
	PatternAuthority  PatternType = "authority_violation"
)

// Finding is the result of one detector invocation. A zero Finding means
// the pattern did not fire; it is a sentinel, not a contradiction with 0%
// certainty.
type Finding struct {
	Confidence  float64     `json:"confidence"`
	Explanation string      `json:"explanation"`
	Pattern     PatternType `json:"pattern_type"`
}

// Fired reports whether the detector matched its pattern.
func (f Finding) Fired() bool {
	return f.Confidence > 0
}

// Detector is the uniform contract every contradiction pattern implements.
// Detect must be total over well-formed statements: a pattern that does not
// apply returns the zero Finding, never an error.
type Detector interface {
	Type() PatternType
	Detect(stmt1, stmt2 *statement.SemanticStatement) Finding
}

// Calibration holds the measured confidence constants attached to the
// built-in detectors. The values are historical success rates, not
// continuous scores; tuning them must not require touching detector logic.
type Calibration struct {
	Settlement float64 `yaml:"settlement"`
	Negation   float64 `yaml:"negation"`
	Authority  float64 `yaml:"authority"`

	// SimilarityThreshold gates the direct-negation pattern.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
}

// DefaultCalibration returns the calibration the detectors shipped with.
func DefaultCalibration() Calibration {
	return Calibration{
		Settlement:          0.89,
		Negation:            0.92,
		Authority:           0.94,
		SimilarityThreshold: 0.70,
	}
}
