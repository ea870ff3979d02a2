// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/ballotbox/election"
)

// AppendEvents writes events to the audit_event table in one
// transaction. Already-persisted sequence numbers are skipped, so a
// relay retry after a partial failure is harmless.
func AppendEvents(db *sql.DB, events []election.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("failed to marshal event %d: %w", ev.Seq, err)
		}
		_, err = tx.Exec(`
			INSERT INTO audit_event (seq, event_type, payload, prev_hash, hash, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (seq) DO NOTHING
		`, ev.Seq, string(ev.Type), string(payload), ev.PrevHash, ev.Hash, ev.At)
		if err != nil {
			return fmt.Errorf("failed to insert event %d: %w", ev.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}
	return nil
}

// LoadEvents reads the full persisted history in sequence order.
func LoadEvents(db *sql.DB) ([]election.Event, error) {
	rows, err := db.Query(`
		SELECT payload FROM audit_event ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []election.Event
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		var ev election.Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// MaxSeq returns the highest persisted sequence number, 0 when empty.
func MaxSeq(db *sql.DB) (int64, error) {
	var seq int64
	err := db.QueryRow(`
		SELECT COALESCE(MAX(seq), 0) FROM audit_event
	`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to query max seq: %w", err)
	}
	return seq, nil
}
