package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/services/marketdata"
)

var monthTokenPattern = regexp.MustCompile(`\b[A-Za-z]{3}-\d{2}\b`)

var priceWords = []string{"stock price", "highest", "lowest", "average"}

// answerFromPrices answers stock price questions that name Mon-YY months
// from the attached snapshot. It reports false when the question is not a
// price question or the snapshot has nothing for the requested months.
func (s *Service) answerFromPrices(raw, normalized string) (Selection, bool) {
	if s.prices.Len() == 0 {
		return Selection{}, false
	}

	tokens := monthTokenPattern.FindAllString(raw, -1)
	if len(tokens) == 0 {
		return Selection{}, false
	}

	switch {
	case containsAny(normalized, priceWords):
		return s.priceStats(normalized, tokens)
	case strings.Contains(normalized, "compare") && len(tokens) >= 2:
		return s.priceComparison(tokens[0], tokens[1])
	}
	return Selection{}, false
}

func (s *Service) priceStats(normalized string, tokens []string) (Selection, bool) {
	start, end, err := marketdata.MonthRange(tokens[0])
	if err != nil {
		return Selection{}, false
	}
	if len(tokens) > 1 {
		_, last, err := marketdata.MonthRange(tokens[1])
		if err != nil {
			return Selection{}, false
		}
		end = last
	}

	stats, err := s.prices.Stats(start, end)
	if err != nil {
		return Selection{}, false
	}

	return Selection{
		Text:      formatPriceStats(stats, normalized),
		Weight:    weightBriefing,
		Reasoning: fmt.Sprintf("Computed from %d closing prices", stats.DataPoints),
		Path:      PathPriceHistory,
		Category:  "stock",
	}, true
}

func (s *Service) priceComparison(first, second string) (Selection, bool) {
	p1Start, p1End, err := marketdata.MonthRange(first)
	if err != nil {
		return Selection{}, false
	}
	p2Start, p2End, err := marketdata.MonthRange(second)
	if err != nil {
		return Selection{}, false
	}

	cmp, err := s.prices.Compare(p1Start, p1End, p2Start, p2End)
	if err != nil {
		return Selection{}, false
	}

	return Selection{
		Text:      formatPriceComparison(cmp, first, second),
		Weight:    weightBriefing,
		Reasoning: fmt.Sprintf("Compared %d and %d closing prices", cmp.Period1.DataPoints, cmp.Period2.DataPoints),
		Path:      PathPriceHistory,
		Category:  "stock",
	}, true
}

func formatPriceStats(stats *models.PeriodStats, normalized string) string {
	switch {
	case strings.Contains(normalized, "highest"):
		return fmt.Sprintf("The highest stock price during %s was ₹%s.", stats.Period, stats.Highest.StringFixed(2))
	case strings.Contains(normalized, "lowest"):
		return fmt.Sprintf("The lowest stock price during %s was ₹%s.", stats.Period, stats.Lowest.StringFixed(2))
	case strings.Contains(normalized, "average"):
		return fmt.Sprintf("The average stock price during %s was ₹%s.", stats.Period, stats.Average.StringFixed(2))
	}

	return fmt.Sprintf(`Bajaj Finserv stock analysis for %s:
• Highest: ₹%s
• Lowest: ₹%s
• Average: ₹%s
• Period Change: %s%%
• Start Price: ₹%s
• End Price: ₹%s`,
		stats.Period,
		stats.Highest.StringFixed(2),
		stats.Lowest.StringFixed(2),
		stats.Average.StringFixed(2),
		stats.Change.StringFixed(2),
		stats.StartPrice.StringFixed(2),
		stats.EndPrice.StringFixed(2),
	)
}

func formatPriceComparison(cmp *models.PeriodComparison, first, second string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparison between %s and %s:\n\n", first, second)
	for i, p := range []*models.PeriodStats{cmp.Period1, cmp.Period2} {
		label := first
		if i == 1 {
			label = second
		}
		fmt.Fprintf(&b, "Period %d (%s):\n", i+1, label)
		fmt.Fprintf(&b, "• Average: ₹%s\n", p.Average.StringFixed(2))
		fmt.Fprintf(&b, "• Highest: ₹%s\n", p.Highest.StringFixed(2))
		fmt.Fprintf(&b, "• Lowest: ₹%s\n", p.Lowest.StringFixed(2))
		fmt.Fprintf(&b, "• Change: %s%%\n\n", p.Change.StringFixed(2))
	}
	b.WriteString("Comparison:\n")
	fmt.Fprintf(&b, "• Average price change: ₹%s\n", cmp.Comparison.AverageChange.StringFixed(2))
	fmt.Fprintf(&b, "• Highest price change: ₹%s\n", cmp.Comparison.HighestChange.StringFixed(2))
	fmt.Fprintf(&b, "• Lowest price change: ₹%s", cmp.Comparison.LowestChange.StringFixed(2))
	return b.String()
}
