package correlation

import (
	"io"

	"github.com/katalvlaran/twopoint/dispatch"
	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/metrics"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/sirupsen/logrus"
)

// DefaultMaxSampleSize is the catalog size above which samples are downsampled.
const DefaultMaxSampleSize = 1_000_000

// DefaultThetaOversample is the number of angular edges per projected edge.
const DefaultThetaOversample = 10

// Options configures every estimator call. Start from DefaultOptions.
//
// Fields:
//   - Estimator: formula; see package estimator.
//   - Randoms: random catalog. Required unless the domain is periodic
//     (TwoPoint) or the full sky is assumed (Angular, ProjectedCross).
//   - Period: periodic box lengths, one or per axis; nil for none.
//   - Workers: partitions counted concurrently (≥1).
//   - MaxSampleSize: catalogs above this size are uniformly downsampled; ≤0 disables.
//   - Seed: downsampling seed; 0 selects a fixed default.
//   - Counter: pair-counting backend.
//   - Group: when set, counts are all-reduced across the group instead
//     of a local pool, and only rank 0 logs.
//   - Logger, Metrics: observability; a nil Metrics records nothing.
//   - Subvolumes, Box: jackknife grid: divisions and box length, one or per axis.
//     A nil Box falls back to Period.
//   - DoAuto, DoCross: which terms Angular computes for two distinct samples.
//   - ThetaOversample: angular edges per projected edge in ProjectedCross.
//   - Weights1, Weights2, WeightsRandoms: per-point weights for ProjectedCross;
//     nil means unit weights.
type Options struct {
	Estimator     estimator.Estimator
	Randoms       pairs.Points
	Period        pairs.Period
	Workers       int
	MaxSampleSize int
	Seed          uint64
	Counter       pairs.Counter
	Group         dispatch.Group
	Logger        logrus.FieldLogger
	Metrics       *metrics.Recorder

	Subvolumes []int
	Box        []float64

	DoAuto, DoCross bool

	ThetaOversample int
	Weights1        []float64
	Weights2        []float64
	WeightsRandoms  []float64
}

// DefaultOptions returns the Natural estimator on one worker with the k-d tree
// counter, 10 jackknife divisions per axis and both angular terms enabled.
func DefaultOptions() Options {
	return Options{
		Estimator:       estimator.Natural,
		Workers:         1,
		MaxSampleSize:   DefaultMaxSampleSize,
		Counter:         pairs.KDTree{},
		Logger:          logrus.StandardLogger(),
		Subvolumes:      []int{10},
		DoAuto:          true,
		DoCross:         true,
		ThetaOversample: DefaultThetaOversample,
	}
}

// DefaultProjectedOptions is DefaultOptions with the Davis-Peebles estimator,
// which ProjectedCross can evaluate without RR.
func DefaultProjectedOptions() Options {
	o := DefaultOptions()
	o.Estimator = estimator.DavisPeebles

	return o
}

// run carries the per-call state shared by every counting stage.
type run struct {
	opts    Options
	log     logrus.FieldLogger
	red     dispatch.Reducer
	counter pairs.Counter
	close   func()
}

// start fills unset options and acquires the reducer. The caller must
// defer close.
func (o Options) start(call string) *run {
	r := &run{opts: o, counter: o.Counter, close: func() {}}
	if r.counter == nil {
		r.counter = pairs.KDTree{}
	}

	log := o.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if o.Group != nil && o.Group.Rank() != 0 {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}
	r.log = log.WithFields(logrus.Fields{"call": call, "estimator": o.Estimator.String()})

	if o.Group != nil {
		r.red = dispatch.GroupReducer{Group: o.Group, Recorder: o.Metrics}
		r.log.WithField("ranks", o.Group.Size()).Debug("reducing across group")
		return r
	}
	pool := dispatch.NewPool(o.Workers, dispatch.WithRecorder(o.Metrics))
	r.red = pool
	r.close = pool.Close

	return r
}

// count returns per-bin counts of a against b.
func (r *run) count(a, b pairs.Points, edges []float64, period pairs.Period) ([]float64, error) {
	cum, err := r.red.Count(r.counter, a, b, edges, period)
	if err != nil {
		return nil, err
	}

	return pairs.Diff(cum), nil
}

// jackknifeCount returns per-bin labelled count rows of a against b.
func (r *run) jackknifeCount(a, b pairs.Points, edges []float64, period pairs.Period,
	la, lb []int, n int) ([][]float64, error) {
	cum, err := r.red.JackknifeCount(r.counter, a, b, edges, period, la, lb, n)
	if err != nil {
		return nil, err
	}

	return pairs.DiffRows(cum), nil
}
