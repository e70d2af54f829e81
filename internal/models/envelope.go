// Package models defines core domain types
package models

// Entity is a recognized phrase in a query, tagged with its dictionary category
type Entity struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

// String renders the entity as "category:value"
func (e Entity) String() string {
	return e.Category + ":" + e.Value
}

// Analysis describes how an answer was selected
type Analysis struct {
	Intent    string   `json:"intent"`
	Entities  []Entity `json:"entities"`
	Timeframe string   `json:"timeframe"`
	Metric    string   `json:"metric"`
	Reasoning string   `json:"reasoning"`
	Path      string   `json:"path"`
	Category  string   `json:"category,omitempty"`
}

// ResponseEnvelope is the payload returned for every chat message.
// It is built once per request and never stored server-side.
type ResponseEnvelope struct {
	Response    string    `json:"response"`
	Confidence  float64   `json:"confidence"`
	Query       string    `json:"query"`
	Source      string    `json:"source"`
	Mode        string    `json:"mode"`
	Timestamp   string    `json:"timestamp"`
	Analysis    *Analysis `json:"analysis,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	HTML        string    `json:"html,omitempty"`
}

// TimestampLayout is the ISO-8601 layout used for envelope timestamps
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
