// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"
)

// Restore rebuilds a machine from a persisted audit history. The
// chain is verified first; any mismatch fails the whole restore with
// ErrCorruptAuditLog rather than loading a partial or tampered state.
// initialAuthority must be the authority the election was created
// with — authority_changed events in the history supersede it.
func Restore(initialAuthority string, events []Event) (*Machine, error) {
	m, err := NewMachine(initialAuthority)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return m, nil
	}

	if report := VerifyEvents(events); !report.OK {
		return nil, fmt.Errorf("%w: %s", ErrCorruptAuditLog, strings.Join(report.Errors, "; "))
	}

	for _, ev := range events {
		if err := m.apply(ev); err != nil {
			return nil, fmt.Errorf("%w: seq %d: %v", ErrCorruptAuditLog, ev.Seq, err)
		}
	}
	m.log.seed(events)
	return m, nil
}

// apply replays one verified event without precondition checks: the
// original operation already validated it, so a replay failure means
// the history itself is inconsistent.
func (m *Machine) apply(ev Event) error {
	switch ev.Type {
	case EventParticipantRegistered:
		if ev.Identity == "" {
			return fmt.Errorf("registration without identity")
		}
		if _, exists := m.participants[ev.Identity]; exists {
			return fmt.Errorf("duplicate registration for %q", ev.Identity)
		}
		m.participants[ev.Identity] = &participantRecord{}

	case EventCandidateAdded:
		if ev.CandidateID != len(m.candidates)+1 {
			return fmt.Errorf("non-dense candidate id %d", ev.CandidateID)
		}
		m.candidates = append(m.candidates, Candidate{ID: ev.CandidateID, Name: ev.Name})

	case EventVoteCast:
		record, ok := m.participants[ev.Identity]
		if !ok {
			return fmt.Errorf("vote by unregistered %q", ev.Identity)
		}
		if record.voted {
			return fmt.Errorf("second vote by %q", ev.Identity)
		}
		if ev.CandidateID < 1 || ev.CandidateID > len(m.candidates) {
			return fmt.Errorf("vote for unknown candidate %d", ev.CandidateID)
		}
		record.voted = true
		m.candidates[ev.CandidateID-1].VoteCount++
		m.totalVotes++

	case EventActivationChanged:
		m.active = ev.Active

	case EventAuthorityChanged:
		if ev.NewAuthority == "" {
			return fmt.Errorf("authority change without new identity")
		}
		m.authority = ev.NewAuthority

	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}
