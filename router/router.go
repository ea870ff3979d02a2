// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
)

func NewRouter(machine *election.Machine, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(machine, cfg)
	votingHandler := handlers.NewVotingHandler(machine, cfg)
	resultsHandler := handlers.NewResultsHandler(machine, cfg)
	auditHandler := handlers.NewAuditHandler(machine, cfg)

	route := func(name string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(name, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authority operations
	mux.HandleFunc("POST /participants", route("register_participant", adminHandler.RegisterParticipant))
	mux.HandleFunc("POST /candidates", route("add_candidate", adminHandler.AddCandidate))
	mux.HandleFunc("POST /election/toggle", route("toggle_activation", adminHandler.ToggleActivation))
	mux.HandleFunc("POST /authority/transfer", route("transfer_authority", adminHandler.TransferAuthority))

	// Voting operations
	mux.HandleFunc("POST /votes", route("cast_vote", votingHandler.CastVote))
	mux.HandleFunc("GET /participants/{identity}", route("participant_status", votingHandler.GetParticipantStatus))

	// Tally and stats (public snapshots)
	mux.HandleFunc("GET /candidates/{id}", route("get_candidate", resultsHandler.GetCandidate))
	mux.HandleFunc("GET /results", route("results", resultsHandler.GetResults))
	mux.HandleFunc("GET /results/winner", route("winner", resultsHandler.GetWinner))
	mux.HandleFunc("GET /election/stats", route("election_stats", resultsHandler.GetStats))

	// Audit observer surface
	mux.HandleFunc("GET /audit/events", route("audit_events", auditHandler.GetEvents))
	mux.HandleFunc("GET /audit/verify", route("audit_verify", auditHandler.VerifyChain))

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
