// Package metrics exports layer stack transitions as prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ja-he/inputlayers/internal/layer"
)

// Recorder observes a layer stack and counts its transitions.
type Recorder struct {
	stack *layer.Stack

	pushes     *prometheus.CounterVec
	pops       *prometheus.CounterVec
	rejections *prometheus.CounterVec
	depth      prometheus.Gauge
	frames     prometheus.Histogram
}

// NewRecorder returns a pointer to a new Recorder observing the given stack.
func NewRecorder(stack *layer.Stack) *Recorder {
	r := &Recorder{
		stack: stack,
		pushes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inputlayers_pushes_total",
				Help: "Layers pushed, by pushed layer.",
			},
			[]string{"layer"},
		),
		pops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inputlayers_pops_total",
				Help: "Layers popped, by layer that became active.",
			},
			[]string{"layer"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inputlayers_rejections_total",
				Help: "Rejected transitions, by operation and reason.",
			},
			[]string{"op", "reason"},
		),
		depth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "inputlayers_stack_depth",
				Help: "Number of layers on the stack, root included.",
			},
		),
		frames: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "inputlayers_frame_seconds",
				Help:    "Duration of frame updates.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
			},
		),
	}
	r.depth.Set(float64(stack.Depth()))
	stack.AddObserver(r)
	return r
}

// Register registers all metrics with the given registerer.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{r.pushes, r.pops, r.rejections, r.depth, r.frames} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Close stops observing the stack.
func (r *Recorder) Close() {
	r.stack.RemoveObserver(r)
}

// LayerPushed counts a push.
func (r *Recorder) LayerPushed(top layer.Info) {
	r.pushes.WithLabelValues(top.Name).Inc()
	r.depth.Set(float64(r.stack.Depth()))
}

// LayerPopped counts a pop.
func (r *Recorder) LayerPopped(top layer.Info) {
	r.pops.WithLabelValues(top.Name).Inc()
	r.depth.Set(float64(r.stack.Depth()))
}

// LayerRejected counts a rejected transition.
func (r *Recorder) LayerRejected(op layer.Op, _ string, reason error) {
	r.rejections.WithLabelValues(string(op), layer.Reason(reason)).Inc()
}

// ObserveFrame records the duration of a frame update.
func (r *Recorder) ObserveFrame(d time.Duration) {
	r.frames.Observe(d.Seconds())
}
