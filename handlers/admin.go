// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/metrics"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type AdminHandler struct {
	machine *election.Machine
	cfg     cliparse.Config
}

func NewAdminHandler(machine *election.Machine, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{machine: machine, cfg: cfg}
}

// RegisterParticipant handles POST /participants
func (h *AdminHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateActor(w, r, "X-Authority-ID", "X-Authority-Key", h.cfg.ActorKeySalt)
	if !ok {
		return
	}

	var req models.RegisterParticipantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	// Trim here so the returned key matches the identity the machine
	// stores and the headers voters will later send.
	req.Identity = strings.TrimSpace(req.Identity)

	if err := h.machine.RegisterParticipant(caller, req.Identity); err != nil {
		metrics.OperationRejections.WithLabelValues("register_participant").Inc()
		writeCoreError(w, err)
		return
	}

	metrics.ParticipantsRegistered.Inc()
	slog.Info("participant registered", "identity", req.Identity)

	// Hand the voter their deterministic key; the machine itself never
	// stores credentials.
	middleware.JSONResponse(w, http.StatusCreated, models.RegisterParticipantResponse{
		Identity: req.Identity,
		VoterKey: auth.GenerateActorKey(req.Identity, h.cfg.ActorKeySalt),
	})
}

// AddCandidate handles POST /candidates
func (h *AdminHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateActor(w, r, "X-Authority-ID", "X-Authority-Key", h.cfg.ActorKeySalt)
	if !ok {
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.machine.AddCandidate(caller, req.Name)
	if err != nil {
		metrics.OperationRejections.WithLabelValues("add_candidate").Inc()
		writeCoreError(w, err)
		return
	}

	metrics.CandidatesAdded.Inc()
	slog.Info("candidate added", "candidate_id", candidate.ID, "name", candidate.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: candidate.ID,
		Name:        candidate.Name,
	})
}

// ToggleActivation handles POST /election/toggle
func (h *AdminHandler) ToggleActivation(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateActor(w, r, "X-Authority-ID", "X-Authority-Key", h.cfg.ActorKeySalt)
	if !ok {
		return
	}

	active, err := h.machine.ToggleActivation(caller)
	if err != nil {
		metrics.OperationRejections.WithLabelValues("toggle_activation").Inc()
		writeCoreError(w, err)
		return
	}

	slog.Info("activation toggled", "active", active)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleActivationResponse{
		Active: active,
	})
}

// TransferAuthority handles POST /authority/transfer
func (h *AdminHandler) TransferAuthority(w http.ResponseWriter, r *http.Request) {
	caller, ok := authenticateActor(w, r, "X-Authority-ID", "X-Authority-Key", h.cfg.ActorKeySalt)
	if !ok {
		return
	}

	var req models.TransferAuthorityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.NewAuthority = strings.TrimSpace(req.NewAuthority)

	if err := h.machine.TransferAuthority(caller, req.NewAuthority); err != nil {
		metrics.OperationRejections.WithLabelValues("transfer_authority").Inc()
		writeCoreError(w, err)
		return
	}

	slog.Info("authority transferred", "old", caller, "new", req.NewAuthority)

	middleware.JSONResponse(w, http.StatusOK, models.TransferAuthorityResponse{
		OldAuthority: caller,
		NewAuthority: req.NewAuthority,
		AuthorityKey: auth.GenerateActorKey(req.NewAuthority, h.cfg.ActorKeySalt),
	})
}
