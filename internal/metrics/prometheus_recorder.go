package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration   prom.Histogram
	buildOutcome    *prom.CounterVec
	pagesRendered   prom.Counter
	writeFailures   prom.Counter
	notesDiscovered prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on the
// given registry (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "notesite",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "notesite",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		pagesRendered: prom.NewCounter(prom.CounterOpts{
			Namespace: "notesite",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered across builds",
		}),
		writeFailures: prom.NewCounter(prom.CounterOpts{
			Namespace: "notesite",
			Name:      "write_failures_total",
			Help:      "Page write failures across builds",
		}),
		notesDiscovered: prom.NewGauge(prom.GaugeOpts{
			Namespace: "notesite",
			Name:      "notes_discovered",
			Help:      "Notes selected by the most recent scan",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.pagesRendered, pr.writeFailures, pr.notesDiscovered)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	p.buildOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) AddPagesRendered(n int) {
	p.pagesRendered.Add(float64(n))
}

func (p *PrometheusRecorder) AddWriteFailures(n int) {
	p.writeFailures.Add(float64(n))
}

func (p *PrometheusRecorder) SetNotesDiscovered(n int) {
	p.notesDiscovered.Set(float64(n))
}
