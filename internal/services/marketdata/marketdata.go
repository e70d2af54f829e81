// Package marketdata holds historical closing prices and computes period statistics
package marketdata

import (
	"sort"
	"strings"
	"time"

	"github.com/findosh/finchat/internal/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DateLayout is the layout used for period labels and query parameters
const DateLayout = "2006-01-02"

var (
	// ErrNoData is returned when a date range holds no price points
	ErrNoData = errors.New("no data found for the specified period")
	// ErrInvalidRange is returned when a range ends before it starts
	ErrInvalidRange = errors.New("end date is before start date")
	// ErrInvalidMonth is returned for tokens that are not Mon-YY
	ErrInvalidMonth = errors.New("invalid month token")
)

var hundred = decimal.NewFromInt(100)

// Snapshot is an immutable, date-sorted series of closing prices.
// It is built once and shared by pointer without locking.
type Snapshot struct {
	points []models.PricePoint
}

// NewSnapshot copies and sorts points by date
func NewSnapshot(points []models.PricePoint) *Snapshot {
	sorted := make([]models.PricePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return &Snapshot{points: sorted}
}

// Len returns the number of price points. A nil snapshot is empty.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// Points returns a copy of the series
func (s *Snapshot) Points() []models.PricePoint {
	if s == nil {
		return nil
	}
	out := make([]models.PricePoint, len(s.points))
	copy(out, s.points)
	return out
}

// Bounds returns the first and last dates in the series
func (s *Snapshot) Bounds() (first, last time.Time, ok bool) {
	if s.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.points[0].Date, s.points[len(s.points)-1].Date, true
}

// Stats summarizes prices between start and end, both inclusive
func (s *Snapshot) Stats(start, end time.Time) (*models.PeriodStats, error) {
	start, end = day(start), day(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	var (
		inRange []models.PricePoint
		sum     decimal.Decimal
	)
	if s != nil {
		for _, p := range s.points {
			d := day(p.Date)
			if d.Before(start) || d.After(end) {
				continue
			}
			inRange = append(inRange, p)
			sum = sum.Add(p.Close)
		}
	}

	if len(inRange) == 0 {
		return nil, ErrNoData
	}

	highest, lowest := inRange[0].Close, inRange[0].Close
	for _, p := range inRange[1:] {
		if p.Close.GreaterThan(highest) {
			highest = p.Close
		}
		if p.Close.LessThan(lowest) {
			lowest = p.Close
		}
	}

	first := inRange[0].Close
	last := inRange[len(inRange)-1].Close
	change := decimal.Zero
	if !first.IsZero() {
		change = last.Sub(first).Div(first).Mul(hundred)
	}

	return &models.PeriodStats{
		Period:     start.Format(DateLayout) + " to " + end.Format(DateLayout),
		Highest:    highest.Round(2),
		Lowest:     lowest.Round(2),
		Average:    sum.Div(decimal.NewFromInt(int64(len(inRange)))).Round(2),
		DataPoints: len(inRange),
		StartPrice: first.Round(2),
		EndPrice:   last.Round(2),
		Change:     change.Round(2),
	}, nil
}

// Compare computes statistics for two ranges and the second-minus-first deltas
func (s *Snapshot) Compare(p1Start, p1End, p2Start, p2End time.Time) (*models.PeriodComparison, error) {
	first, err := s.Stats(p1Start, p1End)
	if err != nil {
		return nil, errors.Wrap(err, "period 1")
	}
	second, err := s.Stats(p2Start, p2End)
	if err != nil {
		return nil, errors.Wrap(err, "period 2")
	}

	return &models.PeriodComparison{
		Period1: first,
		Period2: second,
		Comparison: models.PeriodDelta{
			AverageChange: second.Average.Sub(first.Average).Round(2),
			HighestChange: second.Highest.Sub(first.Highest).Round(2),
			LowestChange:  second.Lowest.Sub(first.Lowest).Round(2),
		},
	}, nil
}

// MonthRange resolves a Mon-YY token such as "Jan-22" to the first and
// last day of that calendar month. Month names match case-insensitively.
func MonthRange(token string) (time.Time, time.Time, error) {
	start, err := time.Parse("Jan-06", strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrapf(ErrInvalidMonth, "%q", token)
	}
	return start, start.AddDate(0, 1, -1), nil
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return t, nil
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
