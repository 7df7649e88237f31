// Package metrics records rotation planning metrics in Prometheus format.
//
// The CLI is short-lived so metrics are not scraped. After a command runs
// they are written to a node-exporter textfile collector file instead.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the planner's Prometheus collectors
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	plansTotal         *prometheus.CounterVec
	planErrors         *prometheus.CounterVec
	blocksSimulated    prometheus.Counter
	lineupsEvaluated   prometheus.Counter
	validLineups       prometheus.Gauge
	simulationDuration prometheus.Histogram
	minutesSpread      prometheus.Gauge
}

// Option applies a configuration option to the Manager
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom buckets for the duration histogram
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry sets the registry collectors are registered on
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// NewManager creates a metrics manager on its own registry
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "wcr",
		histogramBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.plansTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "rotation",
		Name:      "plans_total",
		Help:      "Rotation plans produced, by kind",
	}, []string{"kind"})

	m.planErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "rotation",
		Name:      "plan_errors_total",
		Help:      "Failed planning attempts, by kind",
	}, []string{"kind"})

	m.blocksSimulated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "rotation",
		Name:      "blocks_simulated_total",
		Help:      "Decision blocks simulated",
	})

	m.lineupsEvaluated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "rotation",
		Name:      "lineups_evaluated_total",
		Help:      "Lineup scorings performed across all blocks",
	})

	m.validLineups = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "rotation",
		Name:      "valid_lineups",
		Help:      "Lineups under the points cap in the last plan",
	})

	m.simulationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "rotation",
		Name:      "simulation_duration_seconds",
		Help:      "Wall time spent simulating a rotation",
		Buckets:   m.histogramBuckets,
	})

	m.minutesSpread = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "rotation",
		Name:      "minutes_spread",
		Help:      "Most minus fewest minutes played in the last plan",
	})
}

// RecordPlan records a successful simulation
func (m *Manager) RecordPlan(kind string, blocks, validLineups int, duration time.Duration, minutes map[string]float64) {
	m.plansTotal.WithLabelValues(kind).Inc()
	m.blocksSimulated.Add(float64(blocks))
	m.lineupsEvaluated.Add(float64(blocks * validLineups))
	m.validLineups.Set(float64(validLineups))
	m.simulationDuration.Observe(duration.Seconds())
	m.minutesSpread.Set(spread(minutes))
}

// RecordPlanError records a failed planning attempt
func (m *Manager) RecordPlanError(kind string) {
	m.planErrors.WithLabelValues(kind).Inc()
}

// Registry returns the registry holding the manager's collectors
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current metric values to path for the
// node-exporter textfile collector
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

func spread(minutes map[string]float64) float64 {
	if len(minutes) == 0 {
		return 0
	}

	first := true
	var lo, hi float64
	for _, v := range minutes {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return hi - lo
}
