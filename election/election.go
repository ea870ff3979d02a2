// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"crypto/hmac"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// maxCandidateName bounds candidate names in Unicode code points.
const maxCandidateName = 64

// Candidate is an append-only registry entry. IDs are dense, assigned
// in creation order starting at 1, and never reused or reindexed.
type Candidate struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	VoteCount int    `json:"vote_count"`
}

// Status is the participant view returned by ParticipantStatus.
// Unknown identities read as unregistered.
type Status struct {
	Registered bool `json:"registered"`
	Voted      bool `json:"voted"`
	CanVote    bool `json:"can_vote"`
}

type participantRecord struct {
	voted bool
}

// Machine is the election state machine. One mutex serializes every
// operation, mutating or not: each call observes and extends a single
// linear history, and queries return consistent snapshots. All checks
// run before any write, so a failed operation leaves state untouched
// and appends nothing to the audit log.
type Machine struct {
	mu           sync.Mutex
	authority    string
	participants map[string]*participantRecord
	candidates   []Candidate
	active       bool
	totalVotes   int
	log          *AuditLog
}

// NewMachine creates an inactive election owned by the given authority.
func NewMachine(authority string) (*Machine, error) {
	authority = strings.TrimSpace(authority)
	if authority == "" {
		return nil, ErrInvalidIdentity
	}
	return &Machine{
		authority:    authority,
		participants: make(map[string]*participantRecord),
		log:          &AuditLog{},
	}, nil
}

// Audit exposes the append-only event history for external observers.
func (m *Machine) Audit() *AuditLog {
	return m.log
}

// requireAuthority gates every administrative mutation. Constant-time
// comparison, same as the key checks in the auth package.
func (m *Machine) requireAuthority(caller string) error {
	if !hmac.Equal([]byte(strings.TrimSpace(caller)), []byte(m.authority)) {
		return ErrAccessDenied
	}
	return nil
}

// RegisterParticipant marks identity as eligible to vote. Authority
// only. Registration is permanent: there is no unregister.
func (m *Machine) RegisterParticipant(caller, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireAuthority(caller); err != nil {
		return err
	}
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return ErrInvalidIdentity
	}
	if _, exists := m.participants[identity]; exists {
		return ErrDuplicateRegistration
	}

	m.participants[identity] = &participantRecord{}
	m.log.append(Event{
		Type:     EventParticipantRegistered,
		Identity: identity,
		At:       time.Now().UTC(),
	})
	return nil
}

// AddCandidate appends a contestant and returns it with its assigned
// id. Authority only. Names are immutable afterwards; duplicates are
// allowed (uniqueness is a presentation concern).
func (m *Machine) AddCandidate(caller, name string) (Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireAuthority(caller); err != nil {
		return Candidate{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Candidate{}, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxCandidateName {
		return Candidate{}, ErrNameTooLong
	}

	candidate := Candidate{ID: len(m.candidates) + 1, Name: name}
	m.candidates = append(m.candidates, candidate)
	m.log.append(Event{
		Type:        EventCandidateAdded,
		CandidateID: candidate.ID,
		Name:        candidate.Name,
		At:          time.Now().UTC(),
	})
	return candidate, nil
}

// ToggleActivation flips the voting flag and returns the new value.
// Authority only. The transition is symmetric: there is no terminal
// closed state, and a deactivated election can be reactivated.
func (m *Machine) ToggleActivation(caller string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireAuthority(caller); err != nil {
		return false, err
	}

	m.active = !m.active
	m.log.append(Event{
		Type:   EventActivationChanged,
		Active: m.active,
		At:     time.Now().UTC(),
	})
	return m.active, nil
}

// TransferAuthority irrevocably hands administrative control to
// newIdentity. Single step, no acceptance handshake: a mistyped
// identity permanently locks admin operations, so callers must
// confirm before invoking.
func (m *Machine) TransferAuthority(caller, newIdentity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireAuthority(caller); err != nil {
		return err
	}
	newIdentity = strings.TrimSpace(newIdentity)
	if newIdentity == "" {
		return ErrInvalidIdentity
	}
	if newIdentity == m.authority {
		return ErrSameAuthority
	}

	old := m.authority
	m.authority = newIdentity
	m.log.append(Event{
		Type:         EventAuthorityChanged,
		OldAuthority: old,
		NewAuthority: newIdentity,
		At:           time.Now().UTC(),
	})
	return nil
}

// CastVote records caller's single irrevocable vote for candidateID.
// Preconditions are checked in a fixed order, each with its own
// failure; the commit applies the voted flag, the candidate count,
// the total, and the audit entry as one indivisible step.
func (m *Machine) CastVote(caller string, candidateID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	identity := strings.TrimSpace(caller)
	record, registered := m.participants[identity]
	if !registered {
		return ErrNotRegistered
	}
	if record.voted {
		return ErrAlreadyVoted
	}
	if !m.active {
		return ErrElectionInactive
	}
	if candidateID < 1 || candidateID > len(m.candidates) {
		return ErrInvalidCandidate
	}

	record.voted = true
	m.candidates[candidateID-1].VoteCount++
	m.totalVotes++
	m.log.append(Event{
		Type:        EventVoteCast,
		Identity:    identity,
		CandidateID: candidateID,
		At:          time.Now().UTC(),
	})
	return nil
}

// ParticipantStatus reports registration and eligibility for identity.
func (m *Machine) ParticipantStatus(identity string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, registered := m.participants[strings.TrimSpace(identity)]
	if !registered {
		return Status{}
	}
	return Status{
		Registered: true,
		Voted:      record.voted,
		CanVote:    !record.voted && m.active,
	}
}

// Candidate returns the candidate with the given id, if it exists.
func (m *Machine) Candidate(id int) (Candidate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id < 1 || id > len(m.candidates) {
		return Candidate{}, false
	}
	return m.candidates[id-1], true
}
