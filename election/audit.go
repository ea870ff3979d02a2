// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// EventType identifies the mutation an audit event records.
type EventType string

const (
	EventParticipantRegistered EventType = "participant_registered"
	EventCandidateAdded        EventType = "candidate_added"
	EventVoteCast              EventType = "vote_cast"
	EventActivationChanged     EventType = "activation_changed"
	EventAuthorityChanged      EventType = "authority_changed"
)

// Event is one immutable audit record. Seq is the logical timestamp:
// dense, starting at 1, assigned in commit order. Hash chains over
// prevHash|seq|body so any rewrite of history is detectable.
type Event struct {
	Seq          int64     `json:"seq"`
	Type         EventType `json:"type"`
	Identity     string    `json:"identity,omitempty"`
	CandidateID  int       `json:"candidate_id,omitempty"`
	Name         string    `json:"name,omitempty"`
	Active       bool      `json:"active,omitempty"`
	OldAuthority string    `json:"old_authority,omitempty"`
	NewAuthority string    `json:"new_authority,omitempty"`
	At           time.Time `json:"at"`
	PrevHash     string    `json:"prev_hash,omitempty"`
	Hash         string    `json:"hash,omitempty"`
}

// VerifyReport summarizes an audit chain verification pass.
type VerifyReport struct {
	OK       bool     `json:"ok"`
	Total    int64    `json:"total"`
	LastSeq  int64    `json:"last_seq"`
	LastHash string   `json:"last_hash,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// AuditLog is the append-only event history. The machine appends while
// holding its own lock; the log carries a second mutex so external
// observers (the DB relay, the audit endpoints) can read concurrently.
type AuditLog struct {
	mu     sync.Mutex
	events []Event
}

// append assigns the next sequence number, chains the hash, and stores
// the event. Called only from inside a machine commit step.
func (l *AuditLog) append(ev Event) Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev.Seq = int64(len(l.events)) + 1
	if n := len(l.events); n > 0 {
		ev.PrevHash = l.events[n-1].Hash
	}
	ev.Hash = hashEvent(ev)
	l.events = append(l.events, ev)
	return ev
}

// seed replaces the log contents with already-hashed events. Used by
// Restore; the caller has verified the chain.
func (l *AuditLog) seed(events []Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append([]Event(nil), events...)
}

// Events returns a copy of the full history.
func (l *AuditLog) Events() []Event {
	return l.EventsSince(0)
}

// EventsSince returns a copy of all events with Seq > seq.
func (l *AuditLog) EventsSince(seq int64) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	if seq < 0 {
		seq = 0
	}
	if seq >= int64(len(l.events)) {
		return nil
	}
	return append([]Event(nil), l.events[seq:]...)
}

// Len returns the number of recorded events.
func (l *AuditLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// Verify checks the stored chain end to end.
func (l *AuditLog) Verify() VerifyReport {
	return VerifyEvents(l.Events())
}

// VerifyEvents walks an event slice checking sequence density, hash
// chaining, and per-event hashes. It reports every mismatch rather
// than stopping at the first.
func VerifyEvents(events []Event) VerifyReport {
	report := VerifyReport{OK: true}

	var prevHash string
	for i, ev := range events {
		expectedSeq := int64(i) + 1
		if ev.Seq != expectedSeq {
			report.OK = false
			report.Errors = append(report.Errors, fmt.Sprintf("seq mismatch at %d: got %d", expectedSeq, ev.Seq))
		}
		if ev.PrevHash != prevHash {
			report.OK = false
			report.Errors = append(report.Errors, fmt.Sprintf("prev_hash mismatch at seq %d", ev.Seq))
		}
		if computed := hashEvent(ev); computed != ev.Hash {
			report.OK = false
			report.Errors = append(report.Errors, fmt.Sprintf("hash mismatch at seq %d", ev.Seq))
		}
		prevHash = ev.Hash
		report.Total++
		report.LastSeq = ev.Seq
		report.LastHash = ev.Hash
	}
	return report
}

// hashEvent computes the chained hash for ev from its PrevHash, Seq,
// and body (the event minus both hash fields).
func hashEvent(ev Event) string {
	body := ev
	body.PrevHash = ""
	body.Hash = ""
	// Struct marshaling is deterministic (fixed field order), so no
	// further canonicalization is needed.
	payload, _ := json.Marshal(body)

	h := sha256.New()
	h.Write([]byte(ev.PrevHash))
	fmt.Fprintf(h, "|%d|", ev.Seq)
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
