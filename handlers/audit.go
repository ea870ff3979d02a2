// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type AuditHandler struct {
	machine *election.Machine
	cfg     cliparse.Config
}

func NewAuditHandler(machine *election.Machine, cfg cliparse.Config) *AuditHandler {
	return &AuditHandler{machine: machine, cfg: cfg}
}

// GetEvents handles GET /audit/events?since=N
// Observers reconstruct history incrementally by polling with the
// last_seq of the previous response.
func (h *AuditHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	var since int64
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "since must be a non-negative integer")
			return
		}
		since = parsed
	}

	events := h.machine.Audit().EventsSince(since)
	if events == nil {
		events = []election.Event{}
	}
	lastSeq := since
	if n := len(events); n > 0 {
		lastSeq = events[n-1].Seq
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuditEventsResponse{
		Events:  events,
		LastSeq: lastSeq,
	})
}

// VerifyChain handles GET /audit/verify
func (h *AuditHandler) VerifyChain(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.machine.Audit().Verify())
}
