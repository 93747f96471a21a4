package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const OpportunitiesSchema = `
	CREATE TABLE IF NOT EXISTS opportunities (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		stage TEXT NOT NULL,
		source TEXT NULL,
		amount_micros INTEGER NULL,
		currency_code TEXT NULL,
		close_date TEXT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NULL,
		responsible_email TEXT NULL,
		contact_id TEXT NULL,
		contact_email TEXT NULL,
		contact_first_name TEXT NULL,
		contact_last_name TEXT NULL,
		created_by_name TEXT NULL,
		created_by_source TEXT NULL,
		created_by_member_id TEXT NULL
	);
`

const OpportunitiesCreatedAtIndex = `
	CREATE INDEX IF NOT EXISTS idx_opportunities_created_at ON opportunities (created_at);
`

var bootQueries = []string{
	OpportunitiesSchema,
	OpportunitiesCreatedAtIndex,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", settings.DbPath))
	if err != nil {
		return nil, err
	}

	// every connection to :memory: is a separate database
	if settings.DbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	for _, query := range bootQueries {
		if _, err := db.ExecContext(context.Background(), query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run boot query: %w", err)
		}
	}

	return db, nil
}
