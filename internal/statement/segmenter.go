package statement

import (
	"regexp"
	"strings"
)

// MinSegmentLength is the minimum length, in bytes, a segment must have to
// become a statement. Shorter fragments (headings, enumeration labels) carry
// too little signal for pairwise analysis.
const MinSegmentLength = 20

// Segmenter splits raw document text into sentence-level segments.
// Implementations must drop segments shorter than MinSegmentLength.
type Segmenter interface {
	Segment(text, language string) []string
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// RuleSegmenter is a punctuation-based Segmenter usable for any language.
// Upstream systems with a real sentence model plug in their own Segmenter.
type RuleSegmenter struct {
	// MinLength overrides MinSegmentLength when positive.
	MinLength int
}

// Segment splits text on sentence-ending punctuation and filters out
// segments below the minimum length.
func (r *RuleSegmenter) Segment(text, language string) []string {
	minLen := r.MinLength
	if minLen <= 0 {
		minLen = MinSegmentLength
	}

	parts := sentenceBoundary.Split(text, -1)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) < minLen {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}
