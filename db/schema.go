// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/ship-check/models"
)

// CreateSchema creates the vote table for the given backend.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, backend string) error {
	ddl, ok := schemas[backend]
	if !ok {
		return fmt.Errorf("unknown database backend %q", backend)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

var schemas = map[string]string{
	models.BackendPostgres: schemaPostgres,
	models.BackendSQLite:   schemaSQLite,
}

const schemaPostgres = `
-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id BIGSERIAL PRIMARY KEY,
    submitted_at TIMESTAMPTZ NOT NULL,
    branch TEXT NOT NULL,
    shipment TEXT NOT NULL,
    answer TEXT NOT NULL,
    origin TEXT NOT NULL,
    comment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_vote_shipment_origin ON vote(shipment, origin);
CREATE INDEX IF NOT EXISTS idx_vote_submitted_at ON vote(submitted_at);
`

// SQLite declares submitted_at as TIMESTAMP so the driver scans it back
// into time.Time. AUTOINCREMENT keeps ids monotonic and never reused.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    submitted_at TIMESTAMP NOT NULL,
    branch TEXT NOT NULL,
    shipment TEXT NOT NULL,
    answer TEXT NOT NULL,
    origin TEXT NOT NULL,
    comment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_vote_shipment_origin ON vote(shipment, origin);
CREATE INDEX IF NOT EXISTS idx_vote_submitted_at ON vote(submitted_at);
`
