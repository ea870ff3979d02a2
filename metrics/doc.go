// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus collectors for the ballotbox
server.

Request counters and latency histograms are recorded by the metrics
middleware; domain counters (votes cast, participants registered,
candidates added, rejections) are incremented by the handlers on the
corresponding outcomes. Collectors register themselves on the default
registry via promauto and are served at GET /metrics.
*/
package metrics
