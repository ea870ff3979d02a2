// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballotbox API.

# Handler Types

Each handler is a struct holding the election machine and config:

  - AdminHandler: authority operations (register participants, add
    candidates, toggle activation, transfer authority)
  - VotingHandler: vote casting and participant status
  - ResultsHandler: candidates, tally, winner, election stats
  - AuditHandler: audit event feed and chain verification

Handlers are created via constructor functions that accept
*election.Machine and Config:

	adminHandler := handlers.NewAdminHandler(machine, cfg)

# Authentication

Administrative routes require X-Authority-ID / X-Authority-Key;
POST /votes requires X-Voter-ID / X-Voter-Key. Keys are deterministic
HMACs of the identity (see package auth), so a key only proves the
caller holds the credential for the claimed identity — whether that
identity is the current authority, or a registered participant who
has not voted, is decided inside the machine. An invalid key is 401;
a valid key for the wrong actor is 403.

# Error Mapping

Core failures map to HTTP statuses in one table (errors.go):
invalid input 400, access violations 403, conflicts
(duplicate registration, double vote, inactive election,
same-authority transfer) 409.

# Queries

Query routes are unauthenticated and return point-in-time snapshots
that the next mutation may supersede.
*/
package handlers
