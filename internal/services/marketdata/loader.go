package marketdata

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/findosh/finchat/internal/models"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrMissingColumn is returned when the CSV header lacks a required column
var ErrMissingColumn = errors.New("missing required column")

var csvDateLayouts = []string{
	"02-Jan-06",
	"2-Jan-06",
	"02-Jan-2006",
	DateLayout,
}

// LoadFile opens path and loads it with LoadCSV
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open price file")
	}
	defer f.Close()

	return LoadCSV(f)
}

// LoadCSV reads a price export with "Date" and "Close Price" columns.
// Rows with an unparseable date or price are skipped.
func LoadCSV(r io.Reader) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return NewSnapshot(nil), nil
		}
		return nil, errors.Wrap(err, "read header")
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))] = i
	}

	dateCol, ok := colIndex["date"]
	if !ok {
		return nil, errors.Wrap(ErrMissingColumn, "Date")
	}
	closeCol, ok := colIndex["close price"]
	if !ok {
		if closeCol, ok = colIndex["close"]; !ok {
			return nil, errors.Wrap(ErrMissingColumn, "Close Price")
		}
	}

	points := make([]models.PricePoint, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		if dateCol >= len(record) || closeCol >= len(record) {
			continue
		}

		date, ok := parseDate(record[dateCol])
		if !ok {
			continue
		}
		price, ok := parseDecimal(record[closeCol])
		if !ok {
			continue
		}

		points = append(points, models.PricePoint{Date: date, Close: price})
	}

	return NewSnapshot(points), nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₹")

	if s == "" || s == "-" || strings.EqualFold(s, "n/a") {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
