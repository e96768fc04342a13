package verifier

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/HicaroD/razen/internal/diagnostics"
)

// Metrics holds counters about verification passes. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Passes        prometheus.Counter
	Deferrals     prometheus.Counter
	NodesFinished prometheus.Counter
	Diagnostics   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	const (
		namespace = "razen"
		subsystem = "verifier"
	)

	return &Metrics{
		Passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "passes_total",
			Help:      "Count of verification passes over a program",
		}),

		Deferrals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "deferrals_total",
			Help:      "Count of passes that left at least one directive deferred",
		}),

		NodesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes_finished_total",
			Help:      "Count of nodes that reached the finished phase",
		}),

		Diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "diagnostics_total",
			Help:      "Count of diagnostics reported by the verifier",
		}, []string{"kind"}),
	}
}

func (m *Metrics) PrometheusCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Passes,
		m.Deferrals,
		m.NodesFinished,
		m.Diagnostics,
	}
}

func (m *Metrics) pass(deferred bool) {
	if m == nil {
		return
	}
	m.Passes.Inc()
	if deferred {
		m.Deferrals.Inc()
	}
}

func (m *Metrics) nodeFinished() {
	if m == nil {
		return
	}
	m.NodesFinished.Inc()
}

func (m *Metrics) diagnostic(kind diagnostics.Kind) {
	if m == nil {
		return
	}
	m.Diagnostics.WithLabelValues(kind.String()).Inc()
}
