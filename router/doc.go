// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the ballotbox routes using Go 1.22+ ServeMux
method/path patterns.

Every application route is wrapped with logging and metrics
middleware. /health, /metrics, and / are left bare for probes and
scrapers.
*/
package router
