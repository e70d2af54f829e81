package assistant

import (
	"math"
	"strings"
)

const (
	// ConfidenceCeiling caps every score
	ConfidenceCeiling = 0.98
	// DefaultConfidence is the exact score of a default-path answer
	DefaultConfidence = 0.60

	keywordSpecificityBonus = 0.05
	genericTermBonus        = 0.02
	genericTermCap          = 0.08
	entityBonus             = 0.01
	entityCap               = 0.03
)

var genericTerms = map[string]bool{
	"quarter": true, "q1": true, "q2": true, "q3": true, "q4": true,
	"growth": true, "performance": true, "bajaj": true, "finserv": true,
}

// ScoreInput carries what the scorer needs from a selection
type ScoreInput struct {
	Path           Path
	Weight         float64
	KeywordMatched bool
	Boost          float64
	Normalized     string
	EntityCount    int
}

// ScoreConfidence returns a score in [0, ConfidenceCeiling] rounded to
// two decimals. Default-path answers score exactly DefaultConfidence.
func ScoreConfidence(in ScoreInput) float64 {
	if in.Path == PathDefault {
		return DefaultConfidence
	}

	c := in.Weight
	if in.KeywordMatched {
		c += keywordSpecificityBonus + in.Boost
	}
	c += math.Min(float64(countGenericTerms(in.Normalized))*genericTermBonus, genericTermCap)
	c += math.Min(float64(in.EntityCount)*entityBonus, entityCap)

	c = math.Max(0, math.Min(c, ConfidenceCeiling))
	return math.Round(c*100) / 100
}

// countGenericTerms counts whitespace-separated words that are generic
// financial terms. Words carrying punctuation do not count.
func countGenericTerms(normalized string) int {
	n := 0
	for _, w := range strings.Fields(normalized) {
		if genericTerms[w] {
			n++
		}
	}
	return n
}
