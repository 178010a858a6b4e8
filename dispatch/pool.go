package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/twopoint/metrics"
	"github.com/katalvlaran/twopoint/pairs"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Reducer runs a pairs.Counter over partitions of a and combines the partial
// results into the counts a single call on the whole of a would return.
type Reducer interface {
	Count(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period) ([]float64, error)
	JackknifeCount(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
		labelsA, labelsB []int, nLabels int) ([][]float64, error)
	SpecificWeightedCount(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
		weightsA, weightsB []float64) ([][]float64, error)
}

// Metric kinds reported by Pool and GroupReducer.
const (
	KindCount     = "count"
	KindJackknife = "jackknife"
	KindSpecific  = "specific_weighted"
)

// Option configures a Pool.
type Option func(*Pool)

// WithRecorder attaches a metrics recorder to the pool.
func WithRecorder(r *metrics.Recorder) Option {
	return func(p *Pool) { p.rec = r }
}

// Pool is a bounded set of workers scoped to a single estimator call.
// The zero value is not usable; call NewPool.
type Pool struct {
	workers int
	rec     *metrics.Recorder

	mu     sync.Mutex
	closed bool
}

var _ Reducer = (*Pool)(nil)

// NewPool returns a pool running at most workers partitions at once.
// workers < 1 is treated as 1.
func NewPool(workers int, opts ...Option) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{workers: workers}
	for _, o := range opts {
		o(p)
	}

	return p
}

// Workers returns the concurrency bound.
func (p *Pool) Workers() int { return p.workers }

// Close releases the pool. It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *Pool) checkOpen() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}

	return nil
}

// Count partitions a into Workers ranges, counts each against the whole of b,
// and sums the cumulative counts in partition order.
func (p *Pool) Count(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period) ([]float64, error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	ranges := Split(len(a), p.workers)
	if len(ranges) == 0 {
		return c.Count(a, b, edges, period)
	}

	start := time.Now()
	parts, err := runParts(p.workers, ranges, func(r Range) ([]float64, error) {
		return c.Count(a[r.Start:r.End], b, edges, period)
	})
	if err != nil {
		return nil, err
	}
	out := sumVectors(parts)
	p.rec.ObserveCount(KindCount, len(ranges), time.Since(start))

	return out, nil
}

// JackknifeCount is Count for labelled points; every row is summed independently.
func (p *Pool) JackknifeCount(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
	labelsA, labelsB []int, nLabels int) ([][]float64, error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	ranges := Split(len(a), p.workers)
	if len(ranges) == 0 || len(labelsA) != len(a) {
		// Let the counter report empty inputs and label mismatches itself.
		return c.JackknifeCount(a, b, edges, period, labelsA, labelsB, nLabels)
	}

	start := time.Now()
	parts, err := runParts(p.workers, ranges, func(r Range) ([][]float64, error) {
		return c.JackknifeCount(a[r.Start:r.End], b, edges, period, labelsA[r.Start:r.End], labelsB, nLabels)
	})
	if err != nil {
		return nil, err
	}
	out := parts[0]
	for _, part := range parts[1:] {
		for l := range out {
			floats.Add(out[l], part[l])
		}
	}
	p.rec.ObserveCount(KindJackknife, len(ranges), time.Since(start))

	return out, nil
}

// SpecificWeightedCount partitions a and concatenates the per-object rows
// in partition order.
func (p *Pool) SpecificWeightedCount(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
	weightsA, weightsB []float64) ([][]float64, error) {
	if err := p.checkOpen(); err != nil {
		return nil, err
	}
	ranges := Split(len(a), p.workers)
	if len(ranges) == 0 || (weightsA != nil && len(weightsA) != len(a)) {
		return c.SpecificWeightedCount(a, b, edges, period, weightsA, weightsB)
	}

	start := time.Now()
	parts, err := runParts(p.workers, ranges, func(r Range) ([][]float64, error) {
		var wa []float64
		if weightsA != nil {
			wa = weightsA[r.Start:r.End]
		}
		return c.SpecificWeightedCount(a[r.Start:r.End], b, edges, period, wa, weightsB)
	})
	if err != nil {
		return nil, err
	}
	out := make([][]float64, 0, len(a))
	for _, part := range parts {
		out = append(out, part...)
	}
	p.rec.ObserveCount(KindSpecific, len(ranges), time.Since(start))

	return out, nil
}

// runParts evaluates fn on every range with at most limit in flight and
// returns the results indexed by range. The first failure cancels the
// partitions that have not started yet and is returned.
func runParts[T any](limit int, ranges []Range, fn func(Range) (T, error)) ([]T, error) {
	out := make([]T, len(ranges))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(limit)
	for i, r := range ranges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(r)
			if err != nil {
				return err
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// sumVectors adds parts[1:] into parts[0] in order and returns it.
func sumVectors(parts [][]float64) []float64 {
	out := parts[0]
	for _, part := range parts[1:] {
		floats.Add(out, part)
	}

	return out
}
