// Package metrics exposes Prometheus instrumentation for pair-counting runs.
//
// A nil *Recorder is valid and records nothing, so callers never need to
// guard their observations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "twopoint"

// Recorder holds the collectors for one registry.
type Recorder struct {
	calls       *prometheus.CounterVec
	partitions  *prometheus.CounterVec
	seconds     *prometheus.HistogramVec
	downsampled *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pair_count_calls_total",
			Help:      "Number of reduced pair-count calls, by kind.",
		}, []string{"kind"}),
		partitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pair_count_partitions_total",
			Help:      "Number of partitions dispatched to the pair counter, by kind.",
		}, []string{"kind"}),
		seconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pair_count_seconds",
			Help:      "Wall time of reduced pair-count calls, by kind.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"kind"}),
		downsampled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downsampled_points_total",
			Help:      "Number of points dropped by downsampling, by sample.",
		}, []string{"sample"}),
	}
	for _, c := range []prometheus.Collector{r.calls, r.partitions, r.seconds, r.downsampled} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveCount records one reduced pair-count call.
func (r *Recorder) ObserveCount(kind string, partitions int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.calls.WithLabelValues(kind).Inc()
	r.partitions.WithLabelValues(kind).Add(float64(partitions))
	r.seconds.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveDownsample records how many points of sample were dropped.
func (r *Recorder) ObserveDownsample(sample string, dropped int) {
	if r == nil {
		return
	}
	r.downsampled.WithLabelValues(sample).Add(float64(dropped))
}
