package models

import "github.com/danielhkuo/ballotbox/election"

// Request types

type RegisterParticipantRequest struct {
	Identity string `json:"identity"`
}

type AddCandidateRequest struct {
	Name string `json:"name"`
}

type TransferAuthorityRequest struct {
	NewAuthority string `json:"new_authority"`
}

type CastVoteRequest struct {
	CandidateID int `json:"candidate_id"`
}

// Response types

type RegisterParticipantResponse struct {
	Identity string `json:"identity"`
	VoterKey string `json:"voter_key"`
}

type AddCandidateResponse struct {
	CandidateID int    `json:"candidate_id"`
	Name        string `json:"name"`
}

type ToggleActivationResponse struct {
	Active bool `json:"active"`
}

type TransferAuthorityResponse struct {
	OldAuthority string `json:"old_authority"`
	NewAuthority string `json:"new_authority"`
	// Key for the incoming authority; the transfer is single-step and
	// irreversible, so it is returned here for hand-off.
	AuthorityKey string `json:"authority_key"`
}

type CastVoteResponse struct {
	CandidateID int    `json:"candidate_id"`
	Message     string `json:"message"`
}

type AuditEventsResponse struct {
	Events  []election.Event `json:"events"`
	LastSeq int64            `json:"last_seq"`
}

// Query responses reuse the core snapshot types directly:
// election.Status, election.Candidate, election.Results,
// election.Winner, election.Stats all carry json tags.

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
