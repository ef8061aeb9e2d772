package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the schema for the document store. It is safe to run on every
// start.
func Run(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS documents (
            id INTEGER PRIMARY KEY,
            type TEXT NOT NULL,
            number TEXT NOT NULL,
            counterparty TEXT NOT NULL DEFAULT '',
            grand_total REAL NOT NULL DEFAULT 0,
            saved_at TEXT NOT NULL,
            payload TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS documents_type_saved_at ON documents (type, saved_at DESC);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
