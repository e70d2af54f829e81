// Package storage provides database access and repositories
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL lets the server read while the CLI imports
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

// Migrate runs database migrations
func (db *DB) Migrate() error {
	migrations := []string{
		createImportsTable,
		createPricesTable,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

const createImportsTable = `
CREATE TABLE IF NOT EXISTS price_imports (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	row_count INTEGER NOT NULL,
	imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const createPricesTable = `
CREATE TABLE IF NOT EXISTS prices (
	trade_date TEXT PRIMARY KEY,
	close_price TEXT NOT NULL,
	import_id TEXT NOT NULL,
	FOREIGN KEY (import_id) REFERENCES price_imports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_prices_import_id ON prices(import_id);
`
