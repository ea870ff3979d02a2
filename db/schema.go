// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable across sqlite and postgres: no NOW() defaults, timestamps
// are always written explicitly, and the full event is stored as a
// JSON payload alongside the columns used for lookup and verification.
const schema = `
-- Audit events (append-only mirror of the in-core audit log)
CREATE TABLE IF NOT EXISTS audit_event (
    seq BIGINT PRIMARY KEY,
    event_type TEXT NOT NULL,
    payload TEXT NOT NULL,
    prev_hash TEXT,
    hash TEXT NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_event_type ON audit_event(event_type);
`
