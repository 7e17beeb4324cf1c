// Package metrics defines the custom Prometheus metrics of the PassaQui API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register themselves with the default registry at init time; the
// router exposes them on /metrics together with the standard HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "passaqui"

// SignupsTotal counts signup attempts by outcome.
// Labels:
//   - outcome: "created", "duplicate_email", "invalid_payload", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - outcome: "success", "invalid_credentials", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts by outcome.",
	},
	[]string{"outcome"},
)

// TripSearchesTotal counts search requests that produced a result set.
var TripSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trip_searches_total",
		Help:      "Total number of trip search requests served.",
	},
)

const (
	OutcomeCreated            = "created"
	OutcomeDuplicateEmail     = "duplicate_email"
	OutcomeInvalidPayload     = "invalid_payload"
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)
