// Package metrics defines and registers all custom Prometheus metrics for the
// salon API client. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry at package load; an embedding
// application exposes them however it exposes its own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon_client"

// RequestsTotal counts outbound API requests.
// Labels:
//   - method: HTTP verb (e.g. "GET")
//   - status: the response status code, or "error" when the transport failed
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of outbound API requests, by method and status.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures outbound request latency from dispatch to the
// response body being fully read.
// Label:
//   - method: HTTP verb
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound API requests.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method"},
)

// AuthStateChangesTotal counts authentication-state publications.
// Label:
//   - state: "authenticated" or "anonymous"
var AuthStateChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_state_changes_total",
		Help:      "Total number of authentication state publications, by resulting state.",
	},
	[]string{"state"},
)
