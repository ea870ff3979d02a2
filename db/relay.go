// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/danielhkuo/ballotbox/election"
)

// Relay drains new audit events from the in-core log into the
// audit_event table. It only ever moves forward: lastSeq tracks the
// highest sequence number known to be persisted, and a failed flush
// leaves it unchanged so the next tick retries the same batch.
type Relay struct {
	db       *sql.DB
	log      *election.AuditLog
	interval time.Duration
	lastSeq  int64
}

// NewRelay creates a relay resuming after lastSeq, typically the value
// of MaxSeq at startup.
func NewRelay(db *sql.DB, log *election.AuditLog, lastSeq int64, interval time.Duration) *Relay {
	return &Relay{
		db:       db,
		log:      log,
		interval: interval,
		lastSeq:  lastSeq,
	}
}

// Run flushes on a ticker until ctx is cancelled, then performs one
// final flush so a clean shutdown loses nothing.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := r.Flush(); err != nil {
				slog.Error("Final audit flush failed", "error", err)
			}
			return
		case <-ticker.C:
			if err := r.Flush(); err != nil {
				slog.Error("Audit flush failed", "error", err)
			}
		}
	}
}

// Flush persists all events appended since the last successful flush.
func (r *Relay) Flush() error {
	events := r.log.EventsSince(r.lastSeq)
	if len(events) == 0 {
		return nil
	}

	if err := AppendEvents(r.db, events); err != nil {
		return err
	}

	r.lastSeq = events[len(events)-1].Seq
	slog.Debug("Flushed audit events", "count", len(events), "last_seq", r.lastSeq)
	return nil
}
