// Package metrics records solver telemetry with Prometheus collectors.
//
// The CLI has no scrape endpoint; a run writes its registry once in the
// textfile-collector format (see WriteTextfile).
package metrics

import (
	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "countdown"

// Recorder implements ports.Metrics.
type Recorder struct {
	solvesTotal     *prometheus.CounterVec
	nodesTotal      *prometheus.CounterVec
	solveDuration   *prometheus.HistogramVec
	generatedTotal  prometheus.Counter
	generateSeconds prometheus.Histogram
}

// New registers the collectors on reg. Pass a fresh prometheus.NewRegistry()
// per process or test; registering twice on the same registry panics.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		solvesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "solves_total",
				Help:      "Solver runs by solver and verified outcome",
			},
			[]string{"solver", "outcome"},
		),
		nodesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "nodes_visited_total",
				Help:      "Search states entered by solver",
			},
			[]string{"solver"},
		),
		solveDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "solver",
				Name:      "solve_duration_seconds",
				Help:      "Wall time per solve",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"solver"},
		),
		generatedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generator",
				Name:      "puzzles_total",
				Help:      "Puzzles generated",
			},
		),
		generateSeconds: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "generator",
				Name:      "generate_duration_seconds",
				Help:      "Wall time per generated puzzle",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 10, 6),
			},
		),
	}
}

func (r *Recorder) ObserveSolve(kind domain.SolverKind, outcome domain.Outcome, st ports.Stats) {
	name := kind.String()
	r.solvesTotal.WithLabelValues(name, outcome.String()).Inc()
	r.nodesTotal.WithLabelValues(name).Add(float64(st.Nodes))
	r.solveDuration.WithLabelValues(name).Observe(st.Duration.Seconds())
}

func (r *Recorder) ObserveGenerate(st ports.Stats) {
	r.generatedTotal.Inc()
	r.generateSeconds.Observe(st.Duration.Seconds())
}

// WriteTextfile dumps everything gathered by g to path in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

// Nop discards observations.
type Nop struct{}

func (Nop) ObserveSolve(domain.SolverKind, domain.Outcome, ports.Stats) {}
func (Nop) ObserveGenerate(ports.Stats)                                 {}
