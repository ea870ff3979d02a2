// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
)

type ResultsHandler struct {
	machine *election.Machine
	cfg     cliparse.Config
}

func NewResultsHandler(machine *election.Machine, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{machine: machine, cfg: cfg}
}

// GetCandidate handles GET /candidates/{id}
func (h *ResultsHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id must be an integer")
		return
	}

	candidate, ok := h.machine.Candidate(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// GetResults handles GET /results
// Returns every candidate in id order plus the leading candidate id.
// Results are live: each response is a snapshot that the next vote
// may supersede.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.machine.Results())
}

// GetWinner handles GET /results/winner
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	winner, ok := h.machine.Winner()
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "No candidates yet")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, winner)
}

// GetStats handles GET /election/stats
func (h *ResultsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.machine.Stats())
}
