// Package metrics exposes Prometheus collectors for the HTTP surface and
// the auth gate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth gate outcomes. The client never sees these distinctions; metrics
// and logs do.
const (
	OutcomeOK               = "ok"
	OutcomeMissingToken     = "missing_token"
	OutcomeExpired          = "expired"
	OutcomeBadSignature     = "bad_signature"
	OutcomeMalformed        = "malformed"
	OutcomeUnknownPrincipal = "unknown_principal"
)

// Metrics holds the collectors used by the HTTP adapter.
type Metrics struct {
	AuthDecisions   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers the collectors with reg (the default registerer when nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		AuthDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "threads",
			Subsystem: "auth",
			Name:      "decisions_total",
			Help:      "Auth gate decisions by outcome.",
		}, []string{"outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "threads",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}
