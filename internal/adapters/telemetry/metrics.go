package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PromMetrics implements ports.Metrics on a prometheus registry. Counters
// track event totals, histograms the time spent per event.
type PromMetrics struct {
	registry *prometheus.Registry

	steps    prometheus.Counter
	stepDt   prometheus.Histogram
	regrids  prometheus.Histogram
	chkTime  prometheus.Histogram
	plotTime prometheus.Histogram
}

// NewPromMetrics builds the metrics on a private registry so parallel test
// instances never collide on metric registration.
func NewPromMetrics() *PromMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &PromMetrics{
		registry: reg,
		steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "strata",
			Subsystem: "driver",
			Name:      "steps_total",
			Help:      "Total time steps advanced",
		}),
		stepDt: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "strata",
			Subsystem: "driver",
			Name:      "step_dt",
			Help:      "Distribution of time step sizes",
			Buckets:   prometheus.ExponentialBuckets(1e-15, 10, 12),
		}),
		regrids: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "strata",
			Subsystem: "driver",
			Name:      "regrid_duration_seconds",
			Help:      "Wall time spent in full regrid operations",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		chkTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "strata",
			Subsystem: "driver",
			Name:      "checkpoint_duration_seconds",
			Help:      "Wall time spent writing checkpoints",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		plotTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "strata",
			Subsystem: "driver",
			Name:      "plot_duration_seconds",
			Help:      "Wall time spent writing plot files",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// Registry exposes the backing registry for scrape endpoints and tests.
func (m *PromMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *PromMetrics) StepAdvanced(dt float64) {
	m.steps.Inc()
	m.stepDt.Observe(dt)
}

func (m *PromMetrics) RegridDone(seconds float64) {
	m.regrids.Observe(seconds)
}

func (m *PromMetrics) CheckpointWritten(seconds float64) {
	m.chkTime.Observe(seconds)
}

func (m *PromMetrics) PlotWritten(seconds float64) {
	m.plotTime.Observe(seconds)
}
