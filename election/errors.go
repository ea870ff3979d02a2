// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Every mutating operation fails with one of these before touching any
// state. Callers match with errors.Is.
var (
	ErrAccessDenied          = errors.New("caller is not the election authority")
	ErrInvalidIdentity       = errors.New("identity must be non-empty")
	ErrDuplicateRegistration = errors.New("participant is already registered")
	ErrNotRegistered         = errors.New("caller is not a registered participant")
	ErrAlreadyVoted          = errors.New("participant has already voted")
	ErrElectionInactive      = errors.New("election is not active")
	ErrInvalidCandidate      = errors.New("candidate id is out of range")
	ErrEmptyName             = errors.New("candidate name must be non-empty")
	ErrNameTooLong           = errors.New("candidate name exceeds 64 characters")
	ErrSameAuthority         = errors.New("new authority matches the current authority")

	// ErrCorruptAuditLog is returned by Restore when the persisted event
	// chain fails verification.
	ErrCorruptAuditLog = errors.New("audit log is corrupt")
)
