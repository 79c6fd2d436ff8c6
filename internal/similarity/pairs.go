package similarity

import (
	"sort"

	"github.com/nordlex/legal-analyzer/internal/statement"
)

// Pair indexes two statements together with their embedding similarity.
type Pair struct {
	Idx1       int
	Idx2       int
	Similarity float64
}

// CrossPairs pairs every statement in a with every statement in b and keeps
// pairs at or above threshold, sorted by similarity descending. Idx1 indexes
// into a, Idx2 into b. Batch analysis uses this to pick which pairs are
// worth scoring.
func CrossPairs(a, b []*statement.SemanticStatement, threshold float64) []Pair {
	var pairs []Pair
	for i, s1 := range a {
		for j, s2 := range b {
			sim := Cosine(s1.Embedding, s2.Embedding)
			if sim >= threshold {
				pairs = append(pairs, Pair{Idx1: i, Idx2: j, Similarity: sim})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})
	return pairs
}

// WithinPairs pairs statements of a single set against each other, keeping
// only the upper triangle (i < j) so no pair appears twice. Results are
// sorted by similarity descending.
func WithinPairs(stmts []*statement.SemanticStatement, threshold float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(stmts); i++ {
		for j := i + 1; j < len(stmts); j++ {
			sim := Cosine(stmts[i].Embedding, stmts[j].Embedding)
			if sim >= threshold {
				pairs = append(pairs, Pair{Idx1: i, Idx2: j, Similarity: sim})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})
	return pairs
}
