// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/election"
	_ "modernc.org/sqlite"
)

// TestAuthorityID is the initial authority used by every test machine.
const TestAuthorityID = "root-authority"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4316,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AuthorityID:  TestAuthorityID,
		ActorKeySalt: "test-actor-salt",
	}
}

// NewTestMachine creates a fresh machine owned by TestAuthorityID
func NewTestMachine(t *testing.T) *election.Machine {
	t.Helper()

	m, err := election.NewMachine(TestAuthorityID)
	if err != nil {
		t.Fatalf("Failed to create test machine: %v", err)
	}
	return m
}

// SetupTestDB opens an in-memory sqlite database with the full schema.
// Max one connection: each sqlite :memory: connection is its own
// database, so pooling would silently split state.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// AuthorityHeaders returns the header pair for the current authority
func AuthorityHeaders(cfg cliparse.Config, identity string) map[string]string {
	return map[string]string{
		"X-Authority-ID":  identity,
		"X-Authority-Key": auth.GenerateActorKey(identity, cfg.ActorKeySalt),
	}
}

// VoterHeaders returns the header pair for a registered voter
func VoterHeaders(cfg cliparse.Config, identity string) map[string]string {
	return map[string]string{
		"X-Voter-ID":  identity,
		"X-Voter-Key": auth.GenerateActorKey(identity, cfg.ActorKeySalt),
	}
}

// RegisterTestParticipant registers identity on the machine as the test
// authority
func RegisterTestParticipant(t *testing.T, m *election.Machine, identity string) {
	t.Helper()

	if err := m.RegisterParticipant(TestAuthorityID, identity); err != nil {
		t.Fatalf("Failed to register test participant %q: %v", identity, err)
	}
}

// AddTestCandidate adds a candidate and returns its assigned id
func AddTestCandidate(t *testing.T, m *election.Machine, name string) int {
	t.Helper()

	candidate, err := m.AddCandidate(TestAuthorityID, name)
	if err != nil {
		t.Fatalf("Failed to add test candidate %q: %v", name, err)
	}
	return candidate.ID
}

// ActivateElection toggles the machine into the active state
func ActivateElection(t *testing.T, m *election.Machine) {
	t.Helper()

	active, err := m.ToggleActivation(TestAuthorityID)
	if err != nil {
		t.Fatalf("Failed to activate election: %v", err)
	}
	if !active {
		t.Fatalf("Expected election to be active after toggle")
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
