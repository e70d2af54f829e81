package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon_Valid(t *testing.T) {
	require.NoError(t, DefaultLexicon.Validate())
	assert.Equal(t, "revenue", DefaultLexicon[0].Category)
}

func TestLexicon_Validate(t *testing.T) {
	valid := Entry{Category: "a", Keywords: []string{"x"}, Response: "r", Weight: 0.5}

	tests := []struct {
		name    string
		lexicon Lexicon
	}{
		{"duplicate category", Lexicon{valid, valid}},
		{"empty keywords", Lexicon{{Category: "a", Response: "r", Weight: 0.5}}},
		{"blank keyword", Lexicon{{Category: "a", Keywords: []string{""}, Response: "r", Weight: 0.5}}},
		{"zero weight", Lexicon{{Category: "a", Keywords: []string{"x"}, Response: "r"}}},
		{"weight above one", Lexicon{{Category: "a", Keywords: []string{"x"}, Response: "r", Weight: 1.5}}},
		{"negative boost", Lexicon{{Category: "a", Keywords: []string{"x"}, Response: "r", Weight: 0.5, Boost: -0.1}}},
		{"empty response", Lexicon{{Category: "a", Keywords: []string{"x"}, Weight: 0.5}}},
		{"empty category", Lexicon{{Keywords: []string{"x"}, Response: "r", Weight: 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.lexicon.Validate())
		})
	}

	assert.NoError(t, Lexicon{valid}.Validate())
}

func TestLexicon_MatchTableOrder(t *testing.T) {
	// "npa" appears under housing and credit; housing comes first
	entry, keyword, ok := DefaultLexicon.Match("gross npa trend")
	require.True(t, ok)
	assert.Equal(t, "housing", entry.Category)
	assert.Equal(t, "npa", keyword)

	_, _, ok = DefaultLexicon.Match("asdkjasldkj")
	assert.False(t, ok)
}

func TestDefaultLexicon_DigitalSkipsShortTokens(t *testing.T) {
	entry, _, ok := DefaultLexicon.Match("please explain html")
	if ok {
		assert.NotEqual(t, "digital", entry.Category)
	}
}
