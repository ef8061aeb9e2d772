package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DefaultDSN keeps documents in a file next to the working directory.
const DefaultDSN = "file:invoicegen.db?_pragma=busy_timeout(5000)"

// Connect opens a SQLite database using the provided DSN. Use ":memory:" for
// a throwaway database.
func Connect(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	// A single connection serialises writers and keeps an in-memory
	// database alive for the lifetime of db.
	db.SetMaxOpenConns(1)
	return db, nil
}
