// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ballotbox_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ballotbox_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ballotbox_votes_cast_total",
		Help: "Total votes accepted by the election machine",
	})

	ParticipantsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ballotbox_participants_registered_total",
		Help: "Total participants registered",
	})

	CandidatesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ballotbox_candidates_added_total",
		Help: "Total candidates added",
	})

	OperationRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ballotbox_operation_rejections_total",
		Help: "Mutating operations rejected by precondition checks, by route",
	}, []string{"route"})
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}
