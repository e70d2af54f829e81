package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one daily closing price
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close_price"`
}

// PeriodStats summarizes closing prices over a date range.
// Monetary values are rounded to two decimals.
type PeriodStats struct {
	Period     string          `json:"period"`
	Highest    decimal.Decimal `json:"highest"`
	Lowest     decimal.Decimal `json:"lowest"`
	Average    decimal.Decimal `json:"average"`
	DataPoints int             `json:"data_points"`
	StartPrice decimal.Decimal `json:"start_price"`
	EndPrice   decimal.Decimal `json:"end_price"`
	Change     decimal.Decimal `json:"change_percent"`
}

// PeriodDelta holds the differences between two periods (second minus first)
type PeriodDelta struct {
	AverageChange decimal.Decimal `json:"average_change"`
	HighestChange decimal.Decimal `json:"highest_change"`
	LowestChange  decimal.Decimal `json:"lowest_change"`
}

// PeriodComparison compares two date ranges
type PeriodComparison struct {
	Period1    *PeriodStats `json:"period1"`
	Period2    *PeriodStats `json:"period2"`
	Comparison PeriodDelta  `json:"comparison"`
}
