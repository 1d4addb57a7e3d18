package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. All five collections share one records
// table: entity fields live in a JSON document, while the envelope (id and
// creation timestamp) is lifted into columns so listings can sort on it.
const schema = `
CREATE TABLE IF NOT EXISTS records (
    collection   TEXT NOT NULL,
    id           TEXT NOT NULL,
    created_date TEXT NOT NULL DEFAULT '',
    fields       TEXT NOT NULL DEFAULT '{}',
    PRIMARY KEY (collection, id)
);

CREATE INDEX IF NOT EXISTS idx_records_collection_created
    ON records(collection, created_date DESC);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
