// Package metrics defines the custom Prometheus metrics of the eduplay
// platform API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/eduplay/platform-api/internal/core/domain"
)

const namespace = "eduplay"

// ── Session metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts account registration attempts.
// Label:
//   - result: "success" or the failure kind (e.g. "validation", "conflict")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "auth", "not_found" or "too_many_requests"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts completed logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of successful logouts.",
	},
)

// TokenRefreshesTotal counts refresh-token rotations.
// Label:
//   - result: "success" or the failure kind
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh token exchanges, by result.",
	},
	[]string{"result"},
)

// ── Game metrics ──────────────────────────────────────────────────────────────

// GamesRegisteredTotal counts physical game registration attempts.
// Label:
//   - result: "success" or the failure kind
var GamesRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_registered_total",
		Help:      "Total number of physical game registration attempts, by result.",
	},
	[]string{"result"},
)

// Result returns the "result" label value for an operation outcome.
func Result(err error) string {
	if err == nil {
		return "success"
	}
	return domain.KindOf(err).String()
}
