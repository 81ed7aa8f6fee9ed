package metrics

import (
	"github.com/npillmayer/splines"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder collects recomputation metrics for any number of splines.
type Recorder struct {
	recomputes *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	nodes      *prometheus.GaugeVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
// If reg is nil, collectors are not registered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		recomputes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splines",
			Name:      "recomputations_total",
			Help:      "Number of spline coefficient recomputations",
		}, []string{"spline"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splines",
			Name:      "solve_duration_seconds",
			Help:      "Time spent solving for spline coefficients",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~260ms
		}, []string{"spline"}),
		nodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "splines",
			Name:      "nodes",
			Help:      "Number of nodes at the last recomputation",
		}, []string{"spline"}),
	}
}

// Observe records a recomputation of the spline called name.
func (r *Recorder) Observe(name string, ev splines.RecomputeEvent) {
	tracer().Debugf("spline %q recomputed (%d nodes, %v)", name, ev.Nodes, ev.Duration)
	r.recomputes.WithLabelValues(name).Inc()
	r.duration.WithLabelValues(name).Observe(ev.Duration.Seconds())
	r.nodes.WithLabelValues(name).Set(float64(ev.Nodes))
}

// Hook returns a recompute hook reporting to r under name.
func (r *Recorder) Hook(name string) func(splines.RecomputeEvent) {
	return func(ev splines.RecomputeEvent) {
		r.Observe(name, ev)
	}
}

// Instrument returns a copy of cfg which reports recomputations to r under
// name. A hook already present in cfg is still called.
func Instrument[V any](cfg splines.Config[V], r *Recorder, name string) splines.Config[V] {
	hook := r.Hook(name)
	if prev := cfg.OnRecompute; prev != nil {
		cfg.OnRecompute = func(ev splines.RecomputeEvent) {
			prev(ev)
			hook(ev)
		}
	} else {
		cfg.OnRecompute = hook
	}
	return cfg
}
