// Package metrics defines and registers all custom Prometheus metrics for the
// annotation service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are registered with the default Prometheus registry on package
// init (promauto), so the /metrics handler exposes them without further setup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "annotations"

// ── Credential metrics ────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered.",
	},
)

// LoginAttemptsTotal counts login checks.
// Label:
//   - result: "success", "invalid_credentials", "invalid_input" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Annotation metrics ────────────────────────────────────────────────────────

// AnnotationsCreatedTotal counts annotations inserted into the store.
// Label:
//   - linked: "true" when the annotation carries a user_id
var AnnotationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of annotations created.",
	},
	[]string{"linked"},
)

// IdempotencyTotal counts idempotency-key decisions on annotation creation.
// Label:
//   - result: "hit" (replayed, no insert), "miss" (new key), "conflict" (key
//     reused with a different body) or "error" (store unavailable)
var IdempotencyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_total",
		Help:      "Total number of idempotency-key checks, labelled by result.",
	},
	[]string{"result"},
)
