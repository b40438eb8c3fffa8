package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/greenwheels/console-api/internal/core/services"
)

// Metrics exposes Prometheus collectors for the console core.
type Metrics struct {
	logins         *prometheus.CounterVec
	guardDecisions *prometheus.CounterVec
	restores       *prometheus.CounterVec
}

// NewMetrics registers the console metrics against the provided registerer.
// A nil registerer falls back to the Prometheus default.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "greenwheels_logins_total",
		Help: "Login attempts partitioned by result.",
	}, []string{"result"})
	guardDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "greenwheels_guard_decisions_total",
		Help: "Route guard verdicts partitioned by outcome.",
	}, []string{"outcome"})
	restores := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "greenwheels_session_restores_total",
		Help: "Session restores partitioned by result.",
	}, []string{"result"})
	registerer.MustRegister(logins, guardDecisions, restores)
	return &Metrics{logins: logins, guardDecisions: guardDecisions, restores: restores}
}

func (m *Metrics) RecordLogin(success bool) {
	if m == nil {
		return
	}
	result := "denied"
	if success {
		result = "success"
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordGuardDecision(outcome services.Outcome) {
	if m == nil {
		return
	}
	m.guardDecisions.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) RecordRestore(authenticated bool) {
	if m == nil {
		return
	}
	result := "anonymous"
	if authenticated {
		result = "authenticated"
	}
	m.restores.WithLabelValues(result).Inc()
}
