// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the ballotbox
API.

Mutating endpoints have dedicated request/response structs with json
tags. Query endpoints serialize the election package's snapshot types
(Status, Candidate, Results, Winner, Stats) directly — those already
carry json tags and are returned by value, so handlers never expose
live core state.
*/
package models
