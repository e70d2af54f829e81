package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectFor(t *testing.T, query string) Selection {
	t.Helper()
	normalized := Normalize(query)
	c := NewRouter().Classify(normalized)
	return NewSelector(DefaultLexicon, HashPicker{}).Select(c, normalized, query)
}

func TestSelector_Paths(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		path     Path
		category string
		weight   float64
		contains string
	}{
		{"compare quarters", "Compare Q1 vs Q2 performance", PathSpecific, "compare", 0.95, "Q1 vs Q2 FY25 Performance Comparison"},
		{"compare historical", "Compare Mar-22 and Jun-22", PathSpecific, "compare", 0.90, "Mar-22 to Jun-22 Historical Comparison"},
		{"analyze revenue growth", "Analyze revenue growth", PathSpecific, "analyze", 0.95, "Revenue Growth Pattern Analysis"},
		{"analyze bagic", "Tell me about BAGIC", PathSpecific, "analyze", 0.92, "BAGIC (General Insurance) Comprehensive Analysis"},
		{"explain allianz", "Explain the Allianz exit", PathSpecific, "explain", 0.88, "Allianz Partnership Impact Analysis"},
		{"trend roe", "ROE trend across quarters", PathSpecific, "trend", 0.94, "ROE Progression Trend Analysis"},
		{"forecast", "Forecast next year", PathSpecific, "forecast", 0.87, "FY26 Outlook Based on Current Trends"},
		{"briefing", "Tell me about the Allianz stake sale", PathBriefing, "allianz-stake-sale", 0.90, "Allianz Stake Sale"},
		{"briefing hero", "Hero partnership details", PathBriefing, "hero-partnership", 0.90, "Hero Partnership Strategic Deep Dive"},
		{"keyword revenue", "What was the revenue growth in Q2 FY25?", PathKeyword, "revenue", 0.90, "+30% YoY"},
		{"keyword esg", "esg initiatives", PathKeyword, "esg", 0.90, "Green finance portfolio"},
		{"generic compare", "What is the difference between them", PathGeneric, "", 0.70, "detailed comparisons"},
		{"generic explain", "Please clarify", PathGeneric, "", 0.70, "detailed explanations"},
		{"generic entities", "Lending in FY25", PathGeneric, "", 0.82, "Cross-Business Synergies"},
		{"default", "asdkjasldkj nonsense query", PathDefault, "", DefaultConfidence, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selectFor(t, tt.query)
			assert.Equal(t, tt.path, sel.Path)
			assert.Equal(t, tt.category, sel.Category)
			assert.InDelta(t, tt.weight, sel.Weight, 1e-9)
			assert.NotEmpty(t, sel.Text)
			assert.NotEmpty(t, sel.Reasoning)
			assert.Contains(t, sel.Text, tt.contains)
			assert.Equal(t, tt.path == PathKeyword, sel.KeywordMatched)
		})
	}
}

func TestSelector_HeadersQuoteRawQuery(t *testing.T) {
	sel := selectFor(t, "Compare Q1 vs Q2 Performance")
	assert.Contains(t, sel.Text, `"Compare Q1 vs Q2 Performance"`)
}

func TestSelector_DefaultUsesPicker(t *testing.T) {
	normalized := Normalize("asdkjasldkj nonsense query")
	c := NewRouter().Classify(normalized)

	for i := range defaultTemplates {
		sel := NewSelector(DefaultLexicon, fixedPicker(i)).Select(c, normalized, normalized)
		require.Equal(t, PathDefault, sel.Path)
		assert.Equal(t, defaultTemplates[i], sel.Text)
	}
}

func TestSelector_NilPickerHashes(t *testing.T) {
	normalized := Normalize("asdkjasldkj nonsense query")
	c := NewRouter().Classify(normalized)

	a := NewSelector(DefaultLexicon, nil).Select(c, normalized, normalized)
	b := NewSelector(DefaultLexicon, HashPicker{}).Select(c, normalized, normalized)
	assert.Equal(t, a.Text, b.Text)
}

type fixedPicker int

func (p fixedPicker) Pick(_ string, n int) int {
	return int(p) % n
}
