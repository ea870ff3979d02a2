// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox is a single-election management service: one authority
registers participants and candidates, opens and closes voting, and
every state change lands in a hash-chained audit log that the server
persists and replays on restart.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=ballotbox.db AUTHORITY_ID=alice ACTOR_KEY_SALT=secret go run main.go

Or with flags:

	go run main.go -p 4316 -d ballotbox.db -authority alice -actor-salt secret

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - AUTHORITY_ID (-authority): initial election authority identity
  - ACTOR_KEY_SALT (-actor-salt): secret for actor key HMAC

Optional settings:

  - PORT (-p): server port (default: 4316)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: the state machine, audit log, and replay logic
  - handlers: HTTP request handlers (admin, voting, results, audit)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: request/response types
  - auth: actor key generation and validation
  - db: schema creation and the audit persistence relay
  - metrics: Prometheus collectors
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
