// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
)

// statusForCoreError maps the machine's failure taxonomy to HTTP
// statuses in one place so no two handlers drift apart.
func statusForCoreError(err error) int {
	switch {
	case errors.Is(err, election.ErrAccessDenied),
		errors.Is(err, election.ErrNotRegistered):
		return http.StatusForbidden
	case errors.Is(err, election.ErrInvalidIdentity),
		errors.Is(err, election.ErrEmptyName),
		errors.Is(err, election.ErrNameTooLong),
		errors.Is(err, election.ErrInvalidCandidate):
		return http.StatusBadRequest
	case errors.Is(err, election.ErrDuplicateRegistration),
		errors.Is(err, election.ErrAlreadyVoted),
		errors.Is(err, election.ErrElectionInactive),
		errors.Is(err, election.ErrSameAuthority):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeCoreError(w http.ResponseWriter, err error) {
	middleware.ErrorResponse(w, statusForCoreError(err), err.Error())
}

// authenticateActor validates the identity/key header pair against the
// deterministic actor key. It only proves the caller holds the key for
// the claimed identity; whether that identity may perform the
// operation is the machine's decision.
func authenticateActor(w http.ResponseWriter, r *http.Request, idHeader, keyHeader, salt string) (string, bool) {
	identity := strings.TrimSpace(r.Header.Get(idHeader))
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, idHeader+" header required")
		return "", false
	}
	if err := auth.ValidateActorKey(identity, r.Header.Get(keyHeader), salt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid actor key")
		return "", false
	}
	return identity, true
}
