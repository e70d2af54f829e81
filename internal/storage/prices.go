package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/findosh/finchat/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// PriceImport records one bulk load of price history
type PriceImport struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	RowCount   int       `json:"row_count"`
	ImportedAt time.Time `json:"imported_at"`
}

// PriceRepository provides price history data access
type PriceRepository struct {
	db *DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// ReplaceAll swaps the stored history for points in one transaction
func (r *PriceRepository) ReplaceAll(ctx context.Context, source string, points []models.PricePoint) (*PriceImport, error) {
	imp := &PriceImport{
		ID:         uuid.New(),
		Source:     source,
		RowCount:   len(points),
		ImportedAt: time.Now().UTC(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM prices`, `DELETE FROM price_imports`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to clear prices: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO price_imports (id, source, row_count, imported_at) VALUES (?, ?, ?, ?)`,
		imp.ID.String(), imp.Source, imp.RowCount, imp.ImportedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to record import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO prices (trade_date, close_price, import_id) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.Date.Format(dateLayout), p.Close.String(), imp.ID.String()); err != nil {
			return nil, fmt.Errorf("failed to insert price for %s: %w", p.Date.Format(dateLayout), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return imp, nil
}

// List returns all stored prices ordered by date
func (r *PriceRepository) List(ctx context.Context) ([]models.PricePoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT trade_date, close_price FROM prices ORDER BY trade_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]models.PricePoint, 0)
	for rows.Next() {
		var dateStr, closeStr string
		if err := rows.Scan(&dateStr, &closeStr); err != nil {
			return nil, err
		}

		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad stored date %q: %w", dateStr, err)
		}
		closePrice, err := decimal.NewFromString(closeStr)
		if err != nil {
			return nil, fmt.Errorf("bad stored price %q: %w", closeStr, err)
		}

		points = append(points, models.PricePoint{Date: date, Close: closePrice})
	}

	return points, rows.Err()
}

// Count returns the number of stored prices
func (r *PriceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM prices`).Scan(&n)
	return n, err
}

// LastImport returns the most recent import, or nil if none
func (r *PriceRepository) LastImport(ctx context.Context) (*PriceImport, error) {
	var (
		imp   PriceImport
		idStr string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source, row_count, imported_at FROM price_imports ORDER BY imported_at DESC LIMIT 1`,
	).Scan(&idStr, &imp.Source, &imp.RowCount, &imp.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	imp.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return &imp, nil
}
