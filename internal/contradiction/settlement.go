package contradiction

import (
	"strings"

	"github.com/nordlex/legal-analyzer/internal/lexicon"
	"github.com/nordlex/legal-analyzer/internal/statement"
)

// SettlementDetector finds the pattern "a party both offers settlement or
// compensation and denies liability" across a statement pair. The pattern
// is direction-agnostic: offer and denial may come from either statement.
type SettlementDetector struct {
	store      *lexicon.Store
	confidence float64
}

// NewSettlementDetector creates the detector. A non-positive confidence
// falls back to the default calibration.
func NewSettlementDetector(store *lexicon.Store, confidence float64) *SettlementDetector {
	if confidence <= 0 {
		confidence = DefaultCalibration().Settlement
	}
	return &SettlementDetector{store: store, confidence: confidence}
}

// Type returns the pattern name.
func (d *SettlementDetector) Type() PatternType {
	return PatternSettlement
}

// Detect requires settlement vocabularies for both statement languages but
// matches against stmt1's vocabulary only. Cross-language pairs are scored
// with stmt1's terms; same-language pairing is expected upstream.
func (d *SettlementDetector) Detect(stmt1, stmt2 *statement.SemanticStatement) Finding {
	vocab, ok := d.store.SettlementFor(stmt1.Language)
	if !ok {
		return Finding{}
	}
	if !d.store.HasSettlementVocab(stmt2.Language) {
		return Finding{}
	}

	text1 := strings.ToLower(stmt1.Text)
	text2 := strings.ToLower(stmt2.Text)

	if containsAny(text1, text2, vocab.Offer) && containsAny(text1, text2, vocab.Denial) {
		return Finding{
			Confidence:  d.confidence,
			Explanation: "Settlement offer while denying liability indicates logical inconsistency",
			Pattern:     PatternSettlement,
		}
	}
	return Finding{}
}

// containsAny reports whether any term occurs in either text.
func containsAny(text1, text2 string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text1, term) || strings.Contains(text2, term) {
			return true
		}
	}
	return false
}
