package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects counters for life state transitions and death saves
type Recorder struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	deathSaves  *prometheus.CounterVec
	rejected    *prometheus.CounterVec
}

// NewRecorder creates a Recorder backed by its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dying_transitions_total",
				Help: "Life state transitions applied, by source and target state",
			},
			[]string{"from", "to"},
		),
		deathSaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dying_death_saves_total",
				Help: "Death saving throws resolved, by outcome",
			},
			[]string{"outcome"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dying_rejected_operations_total",
				Help: "Operations resolved as no-ops because their preconditions did not hold",
			},
			[]string{"operation"},
		),
	}

	r.registry.MustRegister(r.transitions, r.deathSaves, r.rejected)
	return r
}

// Transition counts a state change
func (r *Recorder) Transition(from, to string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(from, to).Inc()
}

// DeathSave counts a resolved death save
func (r *Recorder) DeathSave(outcome string) {
	if r == nil {
		return
	}
	r.deathSaves.WithLabelValues(outcome).Inc()
}

// Rejected counts an operation that was logged and skipped
func (r *Recorder) Rejected(operation string) {
	if r == nil {
		return
	}
	r.rejected.WithLabelValues(operation).Inc()
}

// Registry exposes the underlying registry, mostly for tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
