package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   ScoreInput
		want float64
	}{
		{
			name: "default path is exact",
			in:   ScoreInput{Path: PathDefault, Weight: 0.99, Normalized: "q1 q2 q3 q4 growth", EntityCount: 9},
			want: DefaultConfidence,
		},
		{
			name: "keyword hit hits the ceiling",
			in:   ScoreInput{Path: PathKeyword, Weight: 0.90, KeywordMatched: true, Boost: 0.08, Normalized: "revenue"},
			want: ConfidenceCeiling,
		},
		{
			name: "generic request without bonuses",
			in:   ScoreInput{Path: PathGeneric, Weight: 0.70, Normalized: "please clarify"},
			want: 0.70,
		},
		{
			name: "entity bonus",
			in:   ScoreInput{Path: PathGeneric, Weight: 0.82, Normalized: "lending in fy25", EntityCount: 2},
			want: 0.84,
		},
		{
			name: "entity bonus is capped",
			in:   ScoreInput{Path: PathGeneric, Weight: 0.70, Normalized: "x", EntityCount: 10},
			want: 0.73,
		},
		{
			name: "generic terms are whole words",
			in:   ScoreInput{Path: PathSpecific, Weight: 0.70, Normalized: "growth quarter quarterly q2?"},
			want: 0.74,
		},
		{
			name: "generic term bonus is capped",
			in:   ScoreInput{Path: PathSpecific, Weight: 0.50, Normalized: "q1 q2 q3 q4 growth bajaj finserv"},
			want: 0.58,
		},
		{
			name: "negative weight clamps to zero",
			in:   ScoreInput{Path: PathSpecific, Weight: -1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreConfidence(tt.in)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, ConfidenceCeiling)
		})
	}
}

func TestCountGenericTerms(t *testing.T) {
	assert.Equal(t, 3, countGenericTerms("compare q1 vs q2 performance"))
	assert.Equal(t, 0, countGenericTerms("q2? growth,"))
	assert.Equal(t, 0, countGenericTerms(""))
}
