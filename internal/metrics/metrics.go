// Package metrics defines the custom Prometheus metrics of the user service.
// HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userservice"

// SignupsTotal counts signup attempts.
// Label result: "created", "conflict", "error".
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts credential checks.
// Label result: "success", "failure", "error".
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ConstraintViolationsTotal counts writes rejected by a uniqueness or reference rule.
var ConstraintViolationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "constraint_violations_total",
		Help:      "Total number of writes rejected by a store constraint.",
	},
	[]string{"entity", "field"},
)

// PasswordRehashesTotal counts stored passwords upgraded on login.
var PasswordRehashesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_rehashes_total",
		Help:      "Total number of stored passwords re-hashed after a successful login.",
	},
)
