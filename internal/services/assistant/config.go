// Package assistant answers questions about Bajaj Finserv's FY24-FY25
// results by matching text against fixed keyword tables.
package assistant

// Intent is the kind of question being asked
type Intent string

const (
	IntentCompare     Intent = "compare"
	IntentAnalyze     Intent = "analyze"
	IntentExplain     Intent = "explain"
	IntentForecast    Intent = "forecast"
	IntentTrend       Intent = "trend"
	IntentPerformance Intent = "performance"
	IntentQuestion    Intent = "question"
	IntentGeneral     Intent = "general"
)

// Intents lists every intent the router can return
var Intents = []Intent{
	IntentCompare, IntentAnalyze, IntentExplain, IntentForecast,
	IntentTrend, IntentPerformance, IntentQuestion, IntentGeneral,
}

// Path records which step of the fallback chain produced an answer
type Path string

const (
	PathSpecific     Path = "specific"
	PathBriefing     Path = "briefing"
	PathKeyword      Path = "keyword"
	PathGeneric      Path = "generic"
	PathDefault      Path = "default"
	PathPriceHistory Path = "price_history"
)

// Envelope mode labels
const (
	ModeLexicon       = "lexicon"
	ModePriceHistory  = "price_history"
	ModeLocalFallback = "local_fallback"
)

// Fallback strategies
const (
	StrategyHash   = "hash"
	StrategyRandom = "random"
)

// DefaultSource labels answers built from the keyword tables
const DefaultSource = "Bajaj Finserv Quarterly Lexicon (FY24-FY25)"

// PriceSource labels answers computed from the price history
const PriceSource = "Bajaj Finserv Share Price History"

// Config holds assistant configuration
type Config struct {
	Source string
	Mode   string

	// Default-path template choice
	FallbackStrategy string
	FallbackSeed     int64

	IncludeAnalysis    bool
	IncludeSuggestions bool
}

// DefaultConfig returns the settings used by the server
func DefaultConfig() *Config {
	return &Config{
		Source:             DefaultSource,
		Mode:               ModeLexicon,
		FallbackStrategy:   StrategyHash,
		IncludeAnalysis:    true,
		IncludeSuggestions: true,
	}
}
