package contradiction

import (
	"github.com/nordlex/legal-analyzer/internal/similarity"
	"github.com/nordlex/legal-analyzer/internal/statement"
)

// NegationDetector finds pairs that talk about the same subject matter
// (high embedding similarity) where exactly one statement carries an
// explicit negation.
type NegationDetector struct {
	confidence float64
	threshold  float64
}

// NewNegationDetector creates the detector. Non-positive parameters fall
// back to the default calibration.
func NewNegationDetector(confidence, similarityThreshold float64) *NegationDetector {
	cal := DefaultCalibration()
	if confidence <= 0 {
		confidence = cal.Negation
	}
	if similarityThreshold <= 0 {
		similarityThreshold = cal.SimilarityThreshold
	}
	return &NegationDetector{confidence: confidence, threshold: similarityThreshold}
}

// Type returns the pattern name.
func (d *NegationDetector) Type() PatternType {
	return PatternNegation
}

// Detect fires when the negation scopes differ (logical XOR) and the
// embeddings are more similar than the threshold. When both or neither
// statement is negated the pair is not contradictory on this pattern and
// similarity is never computed.
func (d *NegationDetector) Detect(stmt1, stmt2 *statement.SemanticStatement) Finding {
	if stmt1.HasNegation() == stmt2.HasNegation() {
		return Finding{}
	}

	if similarity.Cosine(stmt1.Embedding, stmt2.Embedding) > d.threshold {
		return Finding{
			Confidence:  d.confidence,
			Explanation: "Direct logical negation detected between similar statements",
			Pattern:     PatternNegation,
		}
	}
	return Finding{}
}
