// Package transcript indexes earnings call transcripts for keyword search
package transcript

import (
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/findosh/finchat/internal/textmatch"
	"github.com/pkg/errors"
)

// Section is one paragraph of a transcript
type Section struct {
	Text      string    `json:"text"`
	Topic     string    `json:"topic"`
	Sentiment string    `json:"sentiment"`
	Insights  []Insight `json:"insights"`
	Entities  []Entity  `json:"entities"`
}

// Result is a scored search hit
type Result struct {
	Section
	Score   int     `json:"score"`
	Overlap float64 `json:"overlap"`
}

// Index is an immutable paragraph index built once at startup
type Index struct {
	sections []Section
	lower    []string
	tokens   [][]string
}

var (
	blankLine     = regexp.MustCompile(`\n\s*\n`)
	sectionHeader = regexp.MustCompile(`^[A-Z\s]+:$`)
)

// LoadFile reads a transcript from disk
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open transcript")
	}
	defer f.Close()

	return Load(f)
}

// Load reads a transcript and splits it on blank lines
func Load(r io.Reader) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read transcript")
	}
	return New(string(data)), nil
}

// New indexes text. A paragraph made of a single upper-case header line
// such as "FINANCIAL HIGHLIGHTS:" sets the topic of the paragraphs after it.
func New(text string) *Index {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	idx := &Index{}
	topic := "general"

	for _, para := range blankLine.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		lines := strings.SplitN(para, "\n", 2)
		if isHeader(lines[0]) {
			topic = categorize(lines[0])
			if len(lines) == 1 {
				continue
			}
			para = strings.TrimSpace(lines[1])
		}

		idx.sections = append(idx.sections, Section{
			Text:      para,
			Topic:     topic,
			Sentiment: Sentiment(para),
			Insights:  ExtractInsights(para),
			Entities:  ExtractEntities(para),
		})
		idx.lower = append(idx.lower, strings.ToLower(para))
		idx.tokens = append(idx.tokens, textmatch.Tokenize(para))
	}

	return idx
}

// Len returns the number of indexed paragraphs
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.sections)
}

// Sections returns a copy of the indexed paragraphs
func (i *Index) Sections() []Section {
	if i == nil {
		return nil
	}
	out := make([]Section, len(i.sections))
	copy(out, i.sections)
	return out
}

// Search scores every paragraph by how many query keywords it contains
// and returns the best limit hits. Ties keep the higher keyword overlap,
// then transcript order. Paragraphs scoring zero are dropped.
func (i *Index) Search(query string, limit int) []Result {
	results := make([]Result, 0)
	if i.Len() == 0 || limit <= 0 {
		return results
	}

	keywords := textmatch.Tokenize(query)
	if len(keywords) == 0 {
		return results
	}

	for n, lower := range i.lower {
		score := textmatch.CountContained(lower, keywords)
		if score == 0 {
			continue
		}
		results = append(results, Result{
			Section: i.sections[n],
			Score:   score,
			Overlap: textmatch.KeywordOverlapScore(keywords, i.tokens[n]),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].Overlap > results[b].Overlap
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func isHeader(line string) bool {
	line = strings.TrimSpace(line)
	return sectionHeader.MatchString(line) || strings.Contains(line, "MANAGEMENT DISCUSSION")
}

func categorize(header string) string {
	lower := strings.ToLower(header)
	switch {
	case strings.Contains(lower, "financial"):
		return "financial"
	case strings.Contains(lower, "revenue"):
		return "revenue"
	case strings.Contains(lower, "growth"):
		return "growth"
	}
	return "general"
}

var (
	positiveWords = map[string]bool{"growth": true, "increase": true, "strong": true, "positive": true, "success": true}
	negativeWords = map[string]bool{"decline": true, "decrease": true, "weak": true, "negative": true, "loss": true}
)

// Sentiment labels text positive, negative or neutral by word counts
func Sentiment(text string) string {
	pos, neg := 0, 0
	for _, w := range textmatch.Tokenize(text) {
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
	}

	switch {
	case pos > neg:
		return "positive"
	case neg > pos:
		return "negative"
	}
	return "neutral"
}
