// Package metrics exposes Prometheus instrumentation for the property ledger.
// All methods are safe on a nil *Metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for property transitions and the ownership store.
type Metrics struct {
	// Transition outcomes by action and result ("ok" or error class)
	Transitions *prometheus.CounterVec

	// Version conflicts seen by the commit loop, by action
	Conflicts *prometheus.CounterVec

	// Commit latency including retries
	CommitLatency *prometheus.HistogramVec

	// Best-effort side effects that failed (media delete, publish)
	SideEffectFailures *prometheus.CounterVec
}

// New registers all ledger metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "propledger_transitions_total",
			Help: "Property state transitions by action and outcome",
		}, []string{"action", "outcome"}),

		Conflicts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "propledger_version_conflicts_total",
			Help: "Optimistic concurrency conflicts by action",
		}, []string{"action"}),

		CommitLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "propledger_commit_duration_seconds",
			Help:    "Duration of conditional commits including conflict retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"action"}),

		SideEffectFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "propledger_side_effect_failures_total",
			Help: "Swallowed failures of best-effort collaborators",
		}, []string{"kind"}),
	}
}

// IncrementTransition records the outcome of an action.
func (m *Metrics) IncrementTransition(action, outcome string) {
	if m != nil {
		m.Transitions.WithLabelValues(action, outcome).Inc()
	}
}

// IncrementConflict records a version conflict.
func (m *Metrics) IncrementConflict(action string) {
	if m != nil {
		m.Conflicts.WithLabelValues(action).Inc()
	}
}

// ObserveCommit records commit latency.
func (m *Metrics) ObserveCommit(action string, d time.Duration) {
	if m != nil {
		m.CommitLatency.WithLabelValues(action).Observe(d.Seconds())
	}
}

// IncrementSideEffectFailure records a swallowed collaborator failure.
func (m *Metrics) IncrementSideEffectFailure(kind string) {
	if m != nil {
		m.SideEffectFailures.WithLabelValues(kind).Inc()
	}
}
