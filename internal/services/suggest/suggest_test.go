package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 17, c.Len())

	all := c.Find("", 0)
	require.Len(t, all, 17)
	assert.Equal(t, "What was the highest stock price in Jan-22?", all[0].Text)
	assert.Equal(t, "AI Stock Analysis", all[0].Category)
}

func TestFind(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	got := c.Find("allianz", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "Explain the impact of Allianz partnership", got[0].Text)

	got = c.Find("bagic", 0)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Contains(t, got[0].Text, "BAGIC")
	assert.Contains(t, got[1].Text, "BAGIC")

	assert.Len(t, c.Find("", 4), 4)
	assert.Empty(t, c.Find("zzzzqqqq", 5))
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte("questions:\n  - category: A\n    text: ' hello '\n"))
	require.NoError(t, err)
	assert.Equal(t, []Question{{Category: "A", Text: "hello"}}, c.Find("", 0))

	_, err = Parse([]byte("questions:\n  - category: A\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("questions: [unclosed"))
	assert.Error(t, err)
}

func TestFind_VerbatimBeforeSubsequence(t *testing.T) {
	c, err := Parse([]byte(`questions:
  - category: Growth
    text: Analyze the revenue growth patterns
  - category: Partners
    text: Explain the impact of Allianz partnership
`))
	require.NoError(t, err)

	got := c.Find("allianz", 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "Explain the impact of Allianz partnership", got[0].Text)

	assert.Empty(t, c.Find("Growthx", 0))
}
