// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the ballotbox audit log.

The audit_event table is an append-only mirror of the in-core log: the
full event is stored as a JSON payload keyed by sequence number, with
the hash chain columns alongside for inspection. A Relay drains new
events into the table on an interval, and LoadEvents feeds the replay
path at startup.

Works with both sqlite (modernc.org/sqlite, development) and postgres
(lib/pq, production).
*/
package db
