package transcript

import (
	"regexp"
	"strings"
)

// Insight is a figure pulled out of transcript text
type Insight struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Entity is a company, metric or currency amount mentioned in text
type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Each pattern captures the first figure after its trigger words
var insightPatterns = []struct {
	kind    string
	pattern *regexp.Regexp
}{
	{"revenue_growth", regexp.MustCompile(`revenue.*?(?:increased|grew|up)\D*?(\d+(?:\.\d+)?%?)`)},
	{"profit_growth", regexp.MustCompile(`profit.*?(?:increased|grew|up)\D*?(\d+(?:\.\d+)?%?)`)},
	{"market_share", regexp.MustCompile(`market share\D*?(\d+(?:\.\d+)?%?)`)},
	{"general_growth", regexp.MustCompile(`growth\D*?(\d+(?:\.\d+)?%?)`)},
}

var (
	transcriptCompanies = []string{"BAGIC", "Hero FinCorp", "Allianz", "Bajaj Markets"}
	transcriptMetrics   = []string{"AUM", "EBITDA", "ROE", "NII", "Credit Cost", "GNPA"}
	currencyPattern     = regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*[\d,]+(?:\.\d+)?(?:\s*(?:crores?|lakhs?|billion|million))?`)
)

// ExtractInsights finds growth and market share figures in text
func ExtractInsights(text string) []Insight {
	lower := strings.ToLower(text)
	insights := make([]Insight, 0)
	for _, p := range insightPatterns {
		if m := p.pattern.FindStringSubmatch(lower); m != nil {
			insights = append(insights, Insight{Type: p.kind, Value: m[1]})
		}
	}
	return insights
}

// ExtractEntities finds known companies, metrics and currency amounts.
// Company and metric names match case-sensitively.
func ExtractEntities(text string) []Entity {
	entities := make([]Entity, 0)
	for _, c := range transcriptCompanies {
		if strings.Contains(text, c) {
			entities = append(entities, Entity{Type: "company", Value: c})
		}
	}
	for _, m := range transcriptMetrics {
		if strings.Contains(text, m) {
			entities = append(entities, Entity{Type: "metric", Value: m})
		}
	}
	for _, amount := range currencyPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{Type: "currency", Value: strings.TrimSpace(amount)})
	}
	return entities
}
