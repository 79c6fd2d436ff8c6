package contradiction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordlex/legal-analyzer/internal/statement"
)

func withAuthorities(refs ...string) *statement.SemanticStatement {
	return &statement.SemanticStatement{
		Text:                "statement referencing authorities",
		Language:            "no",
		Embedding:           []float32{1, 0, 0},
		AuthorityReferences: refs,
	}
}

func TestAuthorityDetectorFiresOnRankViolation(t *testing.T) {
	d := NewAuthorityDetector(testStore(t), 0)

	higher := withAuthorities("Høyesterett")
	lower := withAuthorities("insurance_company")

	f := d.Detect(higher, lower)
	assert.Equal(t, 0.94, f.Confidence)
	assert.Equal(t, PatternAuthority, f.Pattern)
	assert.Equal(t, "Lower authority insurance_company contradicts higher authority Høyesterett", f.Explanation)
}

func TestAuthorityDetectorAsymmetricByRank(t *testing.T) {
	d := NewAuthorityDetector(testStore(t), 0)

	higher := withAuthorities("Høyesterett")
	lower := withAuthorities("insurance_company")

	// The reverse assignment has no pair with rank(a1) > rank(a2).
	assert.False(t, d.Detect(lower, higher).Fired())
}

func TestAuthorityDetectorEmptyReferences(t *testing.T) {
	d := NewAuthorityDetector(testStore(t), 0)

	some := withAuthorities("Høyesterett")
	none := withAuthorities()

	assert.False(t, d.Detect(some, none).Fired())
	assert.False(t, d.Detect(none, some).Fired())
	assert.False(t, d.Detect(none, none).Fired())
}

func TestAuthorityDetectorUnrankedDefaultsToOne(t *testing.T) {
	d := NewAuthorityDetector(testStore(t), 0)

	ranked := withAuthorities("Tingrett") // rank 6
	unranked := withAuthorities("some local committee")

	assert.True(t, d.Detect(ranked, unranked).Fired())
	assert.False(t, d.Detect(unranked, ranked).Fired())
}

func TestAuthorityDetectorFirstMatchWins(t *testing.T) {
	d := NewAuthorityDetector(testStore(t), 0)

	// Lagmannsrett (8) vs Finansklagenemnda (5) violates before the larger
	// gap Høyesterett (10) vs insurance_company (2) is ever reached.
	stmt1 := withAuthorities("Lagmannsrett", "Høyesterett")
	stmt2 := withAuthorities("Finansklagenemnda", "insurance_company")

	f := d.Detect(stmt1, stmt2)
	assert.Equal(t, "Lower authority Finansklagenemnda contradicts higher authority Lagmannsrett", f.Explanation)
}

func TestAuthorityDetectorEqualRanksDoNotFire(t *testing.T) {
	d := NewAuthorityDetector(testStore(t), 0)

	a := withAuthorities("Tingrett")
	b := withAuthorities("Tingrett")

	assert.False(t, d.Detect(a, b).Fired())
}
