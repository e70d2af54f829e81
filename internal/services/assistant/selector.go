package assistant

import (
	"fmt"
	"strings"
)

// Base weights per selection path
const (
	weightCompareQuarters    = 0.95
	weightCompareHistorical  = 0.90
	weightAnalyzeRevenue     = 0.95
	weightAnalyzeBagic       = 0.92
	weightExplainAllianz     = 0.88
	weightTrendProfitability = 0.94
	weightForecast           = 0.87
	weightBriefing           = 0.90
	weightGenericRequest     = 0.70
	weightGeneral            = 0.82
)

// Selection is the chosen answer text and the facts needed to score it
type Selection struct {
	Text           string
	Weight         float64
	Reasoning      string
	Path           Path
	Category       string
	KeywordMatched bool
	// Boost is the lexicon category boost, set on keyword hits only
	Boost float64
}

// Selector walks the fallback chain: specific, briefing, keyword,
// generic and default. Every path ends in a non-empty answer.
type Selector struct {
	lexicon Lexicon
	picker  Picker
}

// NewSelector creates a selector over lexicon. A nil picker hashes.
func NewSelector(lexicon Lexicon, picker Picker) *Selector {
	if picker == nil {
		picker = HashPicker{}
	}
	return &Selector{lexicon: lexicon, picker: picker}
}

// Select picks the answer for a classified query. normalized must be
// Normalize(raw); raw is quoted back in section headers.
func (s *Selector) Select(c Classification, normalized, raw string) Selection {
	if sel, ok := s.specific(c.Intent, normalized, raw); ok {
		return sel
	}

	if b, ok := matchBriefing(normalized); ok {
		return Selection{
			Text:      b.text,
			Weight:    weightBriefing,
			Reasoning: "Business briefing matched on " + strings.Join(b.phrases, " + "),
			Path:      PathBriefing,
			Category:  b.name,
		}
	}

	if entry, keyword, ok := s.lexicon.Match(normalized); ok {
		return Selection{
			Text:           entry.Response,
			Weight:         entry.Weight,
			Reasoning:      fmt.Sprintf("Matched %q in the %s category", keyword, entry.Category),
			Path:           PathKeyword,
			Category:       entry.Category,
			KeywordMatched: true,
			Boost:          entry.Boost,
		}
	}

	if sel, ok := s.generic(c, raw); ok {
		return sel
	}

	idx := s.picker.Pick(normalized, len(defaultTemplates))
	return Selection{
		Text:      defaultTemplates[idx],
		Weight:    DefaultConfidence,
		Reasoning: "No keyword or entity matched",
		Path:      PathDefault,
	}
}

// specific runs the intent generator's phrase combinations
func (s *Selector) specific(intent Intent, normalized, raw string) (Selection, bool) {
	build := func(header, body string, weight float64, reasoning string) (Selection, bool) {
		return Selection{
			Text:      fmt.Sprintf(header, raw) + body,
			Weight:    weight,
			Reasoning: reasoning,
			Path:      PathSpecific,
			Category:  string(intent),
		}, true
	}

	switch intent {
	case IntentCompare:
		if containsAll(normalized, "q1", "q2") {
			return build(compareHeader, compareQuartersBody, weightCompareQuarters,
				"Quarter-over-quarter comparison with specific metrics")
		}
		if containsAll(normalized, "mar-22", "jun-22") {
			return build(compareHeader, compareHistoricalBody, weightCompareHistorical,
				"Historical period comparison with market context")
		}
	case IntentAnalyze:
		if containsAll(normalized, "revenue", "growth") {
			return build(analysisHeader, analyzeRevenueGrowthBody, weightAnalyzeRevenue,
				"Revenue trend analysis across five quarters")
		}
		if strings.Contains(normalized, "bagic") {
			return build(analysisHeader, analyzeBagicBody, weightAnalyzeBagic,
				"Business unit analysis with challenges and outlook")
		}
	case IntentExplain:
		if strings.Contains(normalized, "allianz") {
			return build(explainHeader, explainAllianzBody, weightExplainAllianz,
				"Explanation of the Allianz partnership and its implications")
		}
	case IntentTrend:
		if containsAny(normalized, []string{"roe", "profitability"}) {
			return build(trendHeader, trendProfitabilityBody, weightTrendProfitability,
				"ROE progression across subsidiaries")
		}
	case IntentForecast:
		return build(forecastHeader, forecastBody, weightForecast,
			"FY26 outlook based on current performance trends")
	}

	return Selection{}, false
}

// generic returns the intent-level template when no keyword matched
func (s *Selector) generic(c Classification, raw string) (Selection, bool) {
	switch c.Intent {
	case IntentCompare:
		return Selection{
			Text:      genericCompareText,
			Weight:    weightGenericRequest,
			Reasoning: "General comparison request",
			Path:      PathGeneric,
		}, true
	case IntentExplain:
		return Selection{
			Text:      genericExplainText,
			Weight:    weightGenericRequest,
			Reasoning: "General explanation request",
			Path:      PathGeneric,
		}, true
	}

	if len(c.Entities) == 0 {
		return Selection{}, false
	}

	var b strings.Builder
	fmt.Fprintf(&b, generalHeader, raw)
	if hasEntity(c.Entities, "housing") {
		b.WriteString(generalHousingSection)
	}
	if hasEntity(c.Entities, "digital") {
		b.WriteString(generalDigitalSection)
	}
	b.WriteString(generalClosing)

	return Selection{
		Text:      b.String(),
		Weight:    weightGeneral,
		Reasoning: "General answer built from recognized entities",
		Path:      PathGeneric,
	}, true
}
