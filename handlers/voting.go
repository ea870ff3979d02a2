// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/metrics"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type VotingHandler struct {
	machine *election.Machine
	cfg     cliparse.Config
}

func NewVotingHandler(machine *election.Machine, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{machine: machine, cfg: cfg}
}

// CastVote handles POST /votes
//
// The key check only authenticates the claimed identity; registration,
// double-vote, activation, and candidate-range checks all happen
// inside the machine, in that order, with no mutation on failure.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	voter, ok := authenticateActor(w, r, "X-Voter-ID", "X-Voter-Key", h.cfg.ActorKeySalt)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.machine.CastVote(voter, req.CandidateID); err != nil {
		metrics.OperationRejections.WithLabelValues("cast_vote").Inc()
		writeCoreError(w, err)
		return
	}

	metrics.VotesCast.Inc()

	// IP hash for operational logs only; the vote record itself carries
	// no network metadata.
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.ActorKeySalt)
	slog.Info("vote cast", "candidate_id", req.CandidateID, "ip_hash", ipHash)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		CandidateID: req.CandidateID,
		Message:     "Vote recorded",
	})
}

// GetParticipantStatus handles GET /participants/{identity}
func (h *VotingHandler) GetParticipantStatus(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "identity is required")
		return
	}

	// Unknown identities are a valid answer (registered=false), not a 404.
	middleware.JSONResponse(w, http.StatusOK, h.machine.ParticipantStatus(identity))
}
