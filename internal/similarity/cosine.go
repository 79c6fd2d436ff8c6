// Package similarity provides embedding-space comparisons for semantic
// statements: cosine similarity between vectors and candidate-pair
// generation for batch contradiction analysis.
package similarity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosine returns the cosine similarity between two embedding vectors,
// dot(a,b) / (|a|*|b|), in [-1, 1]. Mismatched or empty vectors yield 0;
// callers that need a hard failure validate the pair first.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	a64 := make([]float64, len(a))
	b64 := make([]float64, len(b))
	for i := range a {
		a64[i] = float64(a[i])
		b64[i] = float64(b[i])
	}

	dot := floats.Dot(a64, b64)
	magA := math.Sqrt(floats.Dot(a64, a64))
	magB := math.Sqrt(floats.Dot(b64, b64))

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (magA * magB)
}

// CosineDistance returns 1 - Cosine(a, b), in [0, 2].
func CosineDistance(a, b []float32) float64 {
	return 1 - Cosine(a, b)
}
