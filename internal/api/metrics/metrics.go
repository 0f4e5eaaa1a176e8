// Package metrics defines and registers all custom Prometheus metrics for
// the cargo dashboard gateway. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Fetch cache metrics ──────────────────────────────────────────────────────

// CacheResultsTotal counts cache decisions per logical query.
// Labels:
//   - result: "hit", "miss", "join" (rider on an in-flight request), or
//     "stale_discard" (a superseded response dropped by the generation guard)
var CacheResultsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_results_total",
		Help:      "Total cache decisions for upstream reads, by result.",
	},
	[]string{"result"},
)

// ── Upstream gateway metrics ─────────────────────────────────────────────────

// UpstreamRequestDuration measures upstream cargo-backend call latency.
// Labels:
//   - method: HTTP method
//   - status: numeric HTTP status, or "error" for transport failures
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the cargo backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "status"},
)

// UpstreamUnauthorizedTotal counts 401 responses from the cargo backend that
// triggered the credential-clearing recovery path.
var UpstreamUnauthorizedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_unauthorized_total",
		Help:      "Total 401 responses from the cargo backend.",
	},
)

// ── Auth metrics ─────────────────────────────────────────────────────────────

// LoginFailuresTotal counts failed dashboard login attempts.
// Label:
//   - reason: "invalid_credentials" or "user_not_found"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total failed dashboard login attempts, by reason.",
	},
	[]string{"reason"},
)

// BackendSessionAuthenticated is 1 while the gateway holds a backend session
// token and 0 after it has been cleared.
var BackendSessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "backend_session_authenticated",
		Help:      "Whether the gateway currently holds backend credentials.",
	},
)
