// Package metrics records one routeopt run in a private Prometheus registry
// and exports it in the text exposition format, suitable for the node
// exporter's textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/routeopt/tsp"
)

// Namespace prefixes every metric name.
const Namespace = "routeopt"

// Recorder owns the registry and the collectors of one run. It implements
// tsp.Observer and is safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	stageDuration *prometheus.GaugeVec
	passes        prometheus.Gauge
	tourCost      prometheus.Gauge
	vertices      prometheus.Gauge
	rescales      prometheus.Counter
	runs          prometheus.Counter
}

var _ tsp.Observer = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*config)

type config struct {
	runtime bool
}

// WithRuntimeCollectors also registers the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(c *config) {
		c.runtime = true
	}
}

// New builds a Recorder with a fresh registry.
func New(opts ...Option) *Recorder {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Recorder{
		reg: prometheus.NewRegistry(),
		stageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of the last run of each solver stage.",
		}, []string{"stage"}),
		passes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "two_opt_passes",
			Help:      "2-opt passes performed by the last solve.",
		}),
		tourCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "tour_cost",
			Help:      "Integer cost of the last tour.",
		}),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "tour_vertices",
			Help:      "Number of vertices in the last tour.",
		}),
		rescales: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "distance_rescales_total",
			Help:      "Cost matrix rebuilds with a doubled scale factor.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solves_total",
			Help:      "Completed solves.",
		}),
	}

	toRegister := []prometheus.Collector{r.stageDuration, r.passes, r.tourCost, r.vertices, r.rescales, r.runs}
	if cfg.runtime {
		toRegister = append(toRegister,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	r.reg.MustRegister(toRegister...)

	return r
}

// ObserveStage records the duration of a solver stage.
func (r *Recorder) ObserveStage(stage tsp.Stage, elapsed time.Duration) {
	r.stageDuration.WithLabelValues(string(stage)).Set(elapsed.Seconds())
}

// ObserveTour records the final tour of a solve.
func (r *Recorder) ObserveTour(t tsp.Tour, passes int) {
	r.passes.Set(float64(passes))
	r.tourCost.Set(float64(t.Cost))
	r.vertices.Set(float64(t.Len()))
	r.runs.Inc()
}

// ObserveRescale counts one cost-matrix rescale; it matches the
// costmatrix.WithRescaleHook signature.
func (r *Recorder) ObserveRescale(float64) {
	r.rescales.Inc()
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the current state of the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
