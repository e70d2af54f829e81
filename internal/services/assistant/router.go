package assistant

import (
	"strings"

	"github.com/findosh/finchat/internal/models"
)

// Default labels for extractions with no hit
const (
	DefaultTimeframe = "recent"
	DefaultMetric    = "general"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

type labelRule struct {
	label    string
	keywords []string
}

// Tables are scanned in order and the first hit wins
var intentRules = []intentRule{
	{IntentCompare, []string{"compare", "vs", "versus", "difference", "against", "between"}},
	{IntentAnalyze, []string{"analyze", "analysis", "examine", "study", "look at", "tell me about"}},
	{IntentExplain, []string{"explain", "why", "how", "what is", "what are", "clarify"}},
	{IntentForecast, []string{"forecast", "predict", "future", "outlook", "expect", "next"}},
	{IntentTrend, []string{"trend", "pattern", "growth", "decline", "trajectory", "progression"}},
	{IntentPerformance, []string{"performance", "results", "outcome", "achievement"}},
	{IntentQuestion, []string{"what", "how", "when", "where", "which", "who"}},
}

var entityGroups = []labelRule{
	{"companies", []string{"bajaj finserv", "bajaj finance", "bajaj housing", "bagic", "balic", "hero fincorp"}},
	{"metrics", []string{"revenue", "profit", "roe", "roa", "aum", "npa", "growth", "margin"}},
	{"quarters", []string{"q1", "q2", "q3", "q4", "quarter", "quarterly"}},
	{"years", []string{"fy24", "fy25", "2024", "2025", "jan-22", "mar-22", "jun-22"}},
	{"business_units", []string{"insurance", "lending", "housing", "stock broking", "digital", "health"}},
}

var timeframeRules = []labelRule{
	{"Q1 FY25", []string{"q1 fy25", "first quarter fy25", "q1 2025"}},
	{"Q2 FY25", []string{"q2 fy25", "second quarter fy25", "q2 2025"}},
	{"Q3 FY25", []string{"q3 fy25", "third quarter fy25", "q3 2025"}},
	{"Q4 FY24", []string{"q4 fy24", "fourth quarter fy24", "q4 2024"}},
	{"YTD FY25", []string{"ytd", "year to date", "so far this year"}},
	{"Annual", []string{"yearly", "annual", "full year", "fy25", "fy24"}},
	{"Historical", []string{"jan-22", "mar-22", "jun-22", "2022", "historical", "past"}},
}

var metricRules = []labelRule{
	{"revenue", []string{"revenue", "income", "sales", "turnover", "top line"}},
	{"profitability", []string{"profit", "roe", "roa", "margin", "profitability", "bottom line"}},
	{"growth", []string{"growth", "increase", "expansion", "scaling"}},
	{"assets", []string{"aum", "assets", "portfolio", "book size"}},
	{"quality", []string{"npa", "asset quality", "credit quality", "bad loans"}},
	{"valuation", []string{"stock price", "share price", "valuation", "market cap"}},
	{"market_share", []string{"market share", "position", "ranking", "leadership"}},
}

// Classification is the per-request analysis of a query
type Classification struct {
	Intent    Intent
	Entities  []models.Entity
	Timeframe string
	Metric    string
}

// Router classifies intent and extracts entities, timeframe and metric
// from normalized text.
type Router struct {
	intents    []intentRule
	entities   []labelRule
	timeframes []labelRule
	metrics    []labelRule
}

// NewRouter creates a router over the built-in tables
func NewRouter() *Router {
	return &Router{
		intents:    intentRules,
		entities:   entityGroups,
		timeframes: timeframeRules,
		metrics:    metricRules,
	}
}

// Classify normalizes text and runs every extractor on the result
func (r *Router) Classify(text string) Classification {
	normalized := Normalize(text)
	return Classification{
		Intent:    r.ClassifyIntent(normalized),
		Entities:  r.ExtractEntities(normalized),
		Timeframe: r.ExtractTimeframe(normalized),
		Metric:    r.ExtractMetric(normalized),
	}
}

// ClassifyIntent returns the first intent with a keyword in the text
func (r *Router) ClassifyIntent(normalized string) Intent {
	for _, rule := range r.intents {
		if containsAny(normalized, rule.keywords) {
			return rule.intent
		}
	}
	return IntentGeneral
}

// ExtractEntities returns every dictionary phrase found in the text,
// grouped by category in table order.
func (r *Router) ExtractEntities(normalized string) []models.Entity {
	entities := make([]models.Entity, 0)
	for _, group := range r.entities {
		for _, phrase := range group.keywords {
			if strings.Contains(normalized, phrase) {
				entities = append(entities, models.Entity{Category: group.label, Value: phrase})
			}
		}
	}
	return entities
}

// ExtractTimeframe returns the first matching reporting-period label
func (r *Router) ExtractTimeframe(normalized string) string {
	return firstLabel(normalized, r.timeframes, DefaultTimeframe)
}

// ExtractMetric returns the first matching metric label
func (r *Router) ExtractMetric(normalized string) string {
	return firstLabel(normalized, r.metrics, DefaultMetric)
}

func firstLabel(text string, rules []labelRule, fallback string) string {
	for _, rule := range rules {
		if containsAny(text, rule.keywords) {
			return rule.label
		}
	}
	return fallback
}

// containsAny checks if text contains any of the patterns
func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// containsAll checks if text contains every pattern
func containsAll(text string, patterns ...string) bool {
	for _, p := range patterns {
		if !strings.Contains(text, p) {
			return false
		}
	}
	return true
}

// hasEntity reports whether any entity value contains substr
func hasEntity(entities []models.Entity, substr string) bool {
	for _, e := range entities {
		if strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}
