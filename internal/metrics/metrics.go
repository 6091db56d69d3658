// Package metrics defines and registers all custom Prometheus metrics for the
// compcar car-catalog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "compcar"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully registered accounts.
// Label:
//   - role: the role granted at registration ("USER" or "ADMIN")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by granted role.",
	},
	[]string{"role"},
)

// ActivationsTotal counts registration confirmations consumed in time.
var ActivationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activations_total",
		Help:      "Total number of accounts activated via confirmation code.",
	},
)

// LoginsTotal counts successful logins (token issued).
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
)

// TokenFailuresTotal counts rejected bearer tokens at the authorization gate.
// Label:
//   - reason: "shape", "verification", "unknown_role", or "forbidden_role"
var TokenFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_failures_total",
		Help:      "Total number of bearer tokens rejected, by failure reason.",
	},
	[]string{"reason"},
)

// ── Email metrics ─────────────────────────────────────────────────────────────

// EmailsTotal counts outbound emails.
// Labels:
//   - kind: "confirmation" or "welcome"
//   - result: "ok" or "error"
var EmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_total",
		Help:      "Total number of outbound emails, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ── Cleanup metrics ───────────────────────────────────────────────────────────

// CleanupDeletedTotal counts registration confirmations removed by the
// cleanup job.
var CleanupDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cleanup_deleted_confirmations_total",
		Help:      "Total number of expired registration confirmations deleted.",
	},
)
