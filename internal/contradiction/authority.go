package contradiction

import (
	"fmt"

	"github.com/nordlex/legal-analyzer/internal/lexicon"
	"github.com/nordlex/legal-analyzer/internal/statement"
)

// AuthorityDetector finds pairs where a lower-ranked authority referenced
// in stmt2 is contradicted by a higher-ranked authority referenced in
// stmt1. The violation is asymmetric by rank, not by statement position.
type AuthorityDetector struct {
	store      *lexicon.Store
	confidence float64
}

// NewAuthorityDetector creates the detector. A non-positive confidence
// falls back to the default calibration.
func NewAuthorityDetector(store *lexicon.Store, confidence float64) *AuthorityDetector {
	if confidence <= 0 {
		confidence = DefaultCalibration().Authority
	}
	return &AuthorityDetector{store: store, confidence: confidence}
}

// Type returns the pattern name.
func (d *AuthorityDetector) Type() PatternType {
	return PatternAuthority
}

// Detect scans ordered reference pairs in insertion order and stops at the
// first pair where rank(a1) > rank(a2). First match wins; the detector does
// not search for the maximal rank gap.
func (d *AuthorityDetector) Detect(stmt1, stmt2 *statement.SemanticStatement) Finding {
	if len(stmt1.AuthorityReferences) == 0 || len(stmt2.AuthorityReferences) == 0 {
		return Finding{}
	}

	for _, a1 := range stmt1.AuthorityReferences {
		for _, a2 := range stmt2.AuthorityReferences {
			if d.store.RankOf(a1) > d.store.RankOf(a2) {
				return Finding{
					Confidence:  d.confidence,
					Explanation: fmt.Sprintf("Lower authority %s contradicts higher authority %s", a2, a1),
					Pattern:     PatternAuthority,
				}
			}
		}
	}
	return Finding{}
}
