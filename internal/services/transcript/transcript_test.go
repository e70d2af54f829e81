package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTranscript = `FINANCIAL HIGHLIGHTS:
Consolidated revenue growth of 30% to Rs 33,703 crore in Q2 FY25.

Bajaj Finance AUM increased 29% with strong growth across segments.

GROWTH OUTLOOK:
BAGIC motor insurance faces weak pricing and a decline in new policies.
Allianz stake discussions continue.

Operator: thank you, next question please.
`

func TestNew_SplitsParagraphsAndTopics(t *testing.T) {
	idx := New(sampleTranscript)

	sections := idx.Sections()
	require.Len(t, sections, 4)

	assert.Equal(t, "financial", sections[0].Topic)
	assert.True(t, strings.HasPrefix(sections[0].Text, "Consolidated revenue"))
	assert.Equal(t, "financial", sections[1].Topic)
	assert.Equal(t, "growth", sections[2].Topic)
	assert.Equal(t, "growth", sections[3].Topic)

	assert.Equal(t, "positive", sections[1].Sentiment)
	assert.Equal(t, "negative", sections[2].Sentiment)
	assert.Equal(t, "neutral", sections[3].Sentiment)
}

func TestNew_AttachesInsightsAndEntities(t *testing.T) {
	sections := New(sampleTranscript).Sections()
	require.Len(t, sections, 4)

	assert.Contains(t, sections[0].Insights, Insight{Type: "general_growth", Value: "30%"})
	assert.Contains(t, sections[0].Entities, Entity{Type: "currency", Value: "Rs 33,703 crore"})

	assert.Contains(t, sections[2].Entities, Entity{Type: "company", Value: "BAGIC"})
	assert.Contains(t, sections[2].Entities, Entity{Type: "company", Value: "Allianz"})

	assert.Empty(t, sections[3].Insights)
	assert.NotNil(t, sections[3].Entities)
}

func TestLoad(t *testing.T) {
	idx, err := Load(strings.NewReader("one\r\n\r\ntwo"))
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
}

func TestSearch(t *testing.T) {
	idx := New(sampleTranscript)

	results := idx.Search("What was the revenue growth in Q2?", 5)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Score)
	assert.Contains(t, results[0].Text, "Consolidated revenue")
	assert.Equal(t, 1, results[1].Score)
	assert.Contains(t, results[1].Text, "strong growth")

	limited := idx.Search("revenue growth", 1)
	assert.Len(t, limited, 1)

	assert.Empty(t, idx.Search("the and of", 5))
	assert.Empty(t, idx.Search("revenue", 0))

	var empty *Index
	assert.Empty(t, empty.Search("revenue", 5))
}

func TestExtractInsights(t *testing.T) {
	insights := ExtractInsights("Revenue grew 30% this quarter while profit was up 21.5%. Market share reached 9%.")

	byType := make(map[string]string)
	for _, in := range insights {
		byType[in.Type] = in.Value
	}
	assert.Equal(t, "30%", byType["revenue_growth"])
	assert.Equal(t, "21.5%", byType["profit_growth"])
	assert.Equal(t, "9%", byType["market_share"])
	_, ok := byType["general_growth"]
	assert.False(t, ok)

	assert.Empty(t, ExtractInsights("nothing to see"))
}

func TestExtractInsights_Independent(t *testing.T) {
	a := ExtractInsights("growth of 12%")
	b := ExtractInsights("growth of 7%")
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "12%", a[0].Value)
	assert.Equal(t, "7%", b[0].Value)
}

func TestExtractEntities(t *testing.T) {
	entities := ExtractEntities("BAGIC and Hero FinCorp reported AUM of ₹1,02,569 crore and Rs. 546 cr PAT; INR 12.5 billion")

	assert.Contains(t, entities, Entity{Type: "company", Value: "BAGIC"})
	assert.Contains(t, entities, Entity{Type: "company", Value: "Hero FinCorp"})
	assert.Contains(t, entities, Entity{Type: "metric", Value: "AUM"})
	assert.Contains(t, entities, Entity{Type: "currency", Value: "₹1,02,569 crore"})
	assert.Contains(t, entities, Entity{Type: "currency", Value: "Rs. 546"})
	assert.Contains(t, entities, Entity{Type: "currency", Value: "INR 12.5 billion"})
}
