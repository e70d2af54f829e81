package assistant

import (
	"testing"

	"github.com/findosh/finchat/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Compare Q1 vs Q2", "compare q1 vs q2"},
		{"BAGIC's GWP?", "bagic's gwp?"},
		{"  spaced  out  ", "  spaced  out  "},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalize must be idempotent")
		})
	}
}

func TestRouter_ClassifyIntent(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		query    string
		expected Intent
	}{
		{"Compare Q1 vs Q2 performance", IntentCompare},
		{"compare the forecast for next year", IntentCompare},
		{"Tell me about BAGIC", IntentAnalyze},
		{"Explain the Allianz exit", IntentExplain},
		{"What is the outlook for FY26?", IntentExplain},
		{"Forecast revenue", IntentForecast},
		{"What was the revenue growth in Q2 FY25?", IntentTrend},
		{"Quarterly results", IntentPerformance},
		{"When did BALIC gain share?", IntentQuestion},
		{"asdkjasldkj nonsense query", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			intent := router.ClassifyIntent(Normalize(tt.query))
			assert.Equal(t, tt.expected, intent)
			assert.Contains(t, Intents, intent)
		})
	}
}

func TestRouter_ExtractEntities(t *testing.T) {
	router := NewRouter()

	got := router.ExtractEntities(Normalize("Bajaj Housing revenue growth in Q2 FY25"))
	assert.Equal(t, []models.Entity{
		{Category: "companies", Value: "bajaj housing"},
		{Category: "metrics", Value: "revenue"},
		{Category: "metrics", Value: "growth"},
		{Category: "quarters", Value: "q2"},
		{Category: "years", Value: "fy25"},
		{Category: "business_units", Value: "housing"},
	}, got)

	none := router.ExtractEntities("nothing here")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRouter_ExtractTimeframe(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		query    string
		expected string
	}{
		{"revenue in q1 fy25", "Q1 FY25"},
		{"second quarter fy25 profit", "Q2 FY25"},
		{"q3 2025 numbers", "Q3 FY25"},
		{"q4 fy24 growth", "Q4 FY24"},
		{"ytd revenue", "YTD FY25"},
		{"full year fy25", "Annual"},
		{"stock in jan-22", "Historical"},
		{"how are things", DefaultTimeframe},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, router.ExtractTimeframe(tt.query))
		})
	}
}

func TestRouter_ExtractMetric(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		query    string
		expected string
	}{
		{"top line this year", "revenue"},
		{"bottom line", "profitability"},
		{"book size expansion", "growth"},
		{"aum", "assets"},
		{"bad loans", "quality"},
		{"share price", "valuation"},
		{"industry ranking", "market_share"},
		{"hello", DefaultMetric},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, router.ExtractMetric(tt.query))
		})
	}
}

func TestRouter_Classify(t *testing.T) {
	c := NewRouter().Classify("What was the revenue growth in Q2 FY25?")

	assert.Equal(t, IntentTrend, c.Intent)
	assert.Equal(t, "Q2 FY25", c.Timeframe)
	assert.Equal(t, "revenue", c.Metric)
	assert.Len(t, c.Entities, 4)
}

func TestRouter_ClassifyIntent_SubstringKeywords(t *testing.T) {
	router := NewRouter()

	// Keywords match anywhere in the text, so "show" and "however" hit "how"
	tests := []struct {
		query    string
		expected Intent
	}{
		{"Show me the BAGIC numbers", IntentExplain},
		{"However revenue rose", IntentExplain},
		{"Showcase the forecast", IntentExplain},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, router.ClassifyIntent(Normalize(tt.query)))
		})
	}
}
