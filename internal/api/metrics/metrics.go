// Package metrics defines and registers all custom Prometheus metrics for the
// autoflex dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the /metrics endpoint on the host server exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "autoflex"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the inventory API.
// Labels:
//   - method: HTTP method of the call
//   - result: status class ("2xx", "4xx", "5xx") or "network_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued against the inventory API.",
	},
	[]string{"method", "result"},
)

// UpstreamRequestDuration measures inventory API round-trip time.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of inventory API calls from send to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Orchestrator metrics ──────────────────────────────────────────────────────

// ActionsTotal counts orchestrated user intents by outcome.
// Labels:
//   - action: intent name (e.g. "raw_material_create", "login")
//   - outcome: "success" or "failure"
var ActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Total number of orchestrated actions, by intent and outcome.",
	},
	[]string{"action", "outcome"},
)

// ── Session cache metrics ─────────────────────────────────────────────────────

// SessionCacheTotal counts user-lookup cache decisions.
// Label:
//   - result: "hit" (user served from cache) or "miss" (upstream probed)
var SessionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_cache_total",
		Help:      "Total number of session cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
