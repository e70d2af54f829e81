package assistant

var (
	stockSuggestions = []string{
		"What was the highest stock price this year?",
		"Show me stock performance trends",
		"Compare stock price with industry peers",
	}
	performanceSuggestions = []string{
		"What was the revenue growth in latest quarter?",
		"Show me profit trends over time",
		"How is ROE performing compared to previous years?",
	}
	subsidiarySuggestions = []string{
		"How is BAGIC performing in the insurance market?",
		"What are BALIC's key growth metrics?",
		"Tell me about Bajaj Finance's lending portfolio",
	}
	comparisonSuggestions = []string{
		"Compare this quarter with previous quarter",
		"How does performance compare with peers?",
		"Compare different business segments",
	}
	trendSuggestions = []string{
		"Show me growth trends over 5 quarters",
		"What are the key performance trends?",
		"Analyze profitability trends",
	}
	generalSuggestions = []string{
		"What were the key highlights of latest quarter?",
		"Show me overall business performance",
		"Tell me about major business developments",
	}
)

// followUps returns follow-up questions for a classified query
func followUps(c Classification) []string {
	var picked []string
	switch {
	case c.Metric == "valuation":
		picked = stockSuggestions
	case c.Intent == IntentCompare:
		picked = comparisonSuggestions
	case c.Intent == IntentTrend:
		picked = trendSuggestions
	case c.Intent == IntentAnalyze || c.Intent == IntentPerformance:
		picked = performanceSuggestions
	case hasCompany(c):
		picked = subsidiarySuggestions
	default:
		picked = generalSuggestions
	}

	out := make([]string, len(picked))
	copy(out, picked)
	return out
}

func hasCompany(c Classification) bool {
	for _, e := range c.Entities {
		if e.Category == "companies" {
			return true
		}
	}
	return false
}
