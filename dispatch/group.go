package dispatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/twopoint/metrics"
	"github.com/katalvlaran/twopoint/pairs"
	"gonum.org/v1/gonum/floats"
)

// Group is a fixed set of cooperating ranks, in the manner of an MPI
// communicator. Every rank must call AllReduce the same number of times.
type Group interface {
	// Rank is this member's index in [0, Size).
	Rank() int
	// Size is the number of ranks.
	Size() int
	// AllReduce sums local element-wise across all ranks, in rank order,
	// and returns the total to every rank. A nil local marks this rank as
	// failed; every rank then receives an error.
	AllReduce(local []float64) ([]float64, error)
}

// NewLocalGroup returns size in-process ranks sharing one reduction barrier.
// Each handle is meant to be driven by its own goroutine.
func NewLocalGroup(size int) []Group {
	if size < 1 {
		size = 1
	}
	hub := &localHub{size: size, parts: make([][]float64, size)}
	hub.cond = sync.NewCond(&hub.mu)

	out := make([]Group, size)
	for r := range out {
		out[r] = localRank{hub: hub, rank: r}
	}

	return out
}

type localHub struct {
	mu   sync.Mutex
	cond *sync.Cond

	size    int
	gen     uint64
	arrived int
	failed  bool
	parts   [][]float64

	result []float64
	err    error
}

type localRank struct {
	hub  *localHub
	rank int
}

func (r localRank) Rank() int { return r.rank }
func (r localRank) Size() int { return r.hub.size }

func (r localRank) AllReduce(local []float64) ([]float64, error) {
	h := r.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	gen := h.gen
	if local == nil {
		h.failed = true
	} else {
		h.parts[r.rank] = local
	}
	h.arrived++

	if h.arrived == h.size {
		h.result, h.err = h.reduce()
		h.arrived = 0
		h.failed = false
		h.parts = make([][]float64, h.size)
		h.gen++
		h.cond.Broadcast()
	} else {
		for gen == h.gen {
			h.cond.Wait()
		}
	}
	if h.err != nil {
		return nil, h.err
	}

	return append([]float64(nil), h.result...), nil
}

// reduce runs with mu held once every rank has arrived.
func (h *localHub) reduce() ([]float64, error) {
	if h.failed {
		return nil, ErrRankFailed
	}
	out := append([]float64(nil), h.parts[0]...)
	for r, part := range h.parts[1:] {
		if len(part) != len(out) {
			return nil, fmt.Errorf("rank %d sent %d values, rank 0 sent %d: %w", r+1, len(part), len(out), ErrReduceShape)
		}
		floats.Add(out, part)
	}

	return out, nil
}

// GroupReducer runs each rank's partition of a locally and all-reduces the
// partial counts, so every rank returns the full result.
type GroupReducer struct {
	Group    Group
	Recorder *metrics.Recorder
}

var _ Reducer = GroupReducer{}

// Count implements Reducer through GroupCount.
func (gr GroupReducer) Count(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period) ([]float64, error) {
	start := time.Now()
	out, err := GroupCount(gr.Group, c, a, b, edges, period)
	if err == nil && gr.Group.Rank() == 0 {
		gr.Recorder.ObserveCount(KindCount, gr.Group.Size(), time.Since(start))
	}

	return out, err
}

// JackknifeCount implements Reducer through GroupJackknifeCount.
func (gr GroupReducer) JackknifeCount(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
	labelsA, labelsB []int, nLabels int) ([][]float64, error) {
	start := time.Now()
	out, err := GroupJackknifeCount(gr.Group, c, a, b, edges, period, labelsA, labelsB, nLabels)
	if err == nil && gr.Group.Rank() == 0 {
		gr.Recorder.ObserveCount(KindJackknife, gr.Group.Size(), time.Since(start))
	}

	return out, err
}

// SpecificWeightedCount implements Reducer through GroupSpecificWeightedCount.
func (gr GroupReducer) SpecificWeightedCount(c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
	weightsA, weightsB []float64) ([][]float64, error) {
	start := time.Now()
	out, err := GroupSpecificWeightedCount(gr.Group, c, a, b, edges, period, weightsA, weightsB)
	if err == nil && gr.Group.Rank() == 0 {
		gr.Recorder.ObserveCount(KindSpecific, gr.Group.Size(), time.Since(start))
	}

	return out, err
}

// rankRange is the slice of n points owned by g's rank. Ranks beyond the
// number of points own an empty range at the end.
func rankRange(g Group, n int) Range {
	ranges := Split(n, g.Size())
	if r := g.Rank(); r < len(ranges) {
		return ranges[r]
	}

	return Range{Start: n, End: n}
}

// allReduce contributes local, or a failure marker when err is set, and
// returns the group total. A local failure wins over ErrRankFailed.
func allReduce(g Group, local []float64, err error) ([]float64, error) {
	if err != nil {
		_, _ = g.AllReduce(nil)
		return nil, err
	}

	return g.AllReduce(local)
}

// GroupCount counts this rank's partition of a against all of b and sums the
// cumulative counts across the group.
func GroupCount(g Group, c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period) ([]float64, error) {
	r := rankRange(g, len(a))
	local, err := c.Count(a[r.Start:r.End], b, edges, period)

	return allReduce(g, local, err)
}

// GroupJackknifeCount is GroupCount for labelled points. The label table is
// flattened row-major for the reduction.
func GroupJackknifeCount(g Group, c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
	labelsA, labelsB []int, nLabels int) ([][]float64, error) {
	r := rankRange(g, len(a))
	var (
		rows [][]float64
		err  error
	)
	if len(labelsA) != len(a) {
		rows, err = c.JackknifeCount(a, b, edges, period, labelsA, labelsB, nLabels)
	} else {
		rows, err = c.JackknifeCount(a[r.Start:r.End], b, edges, period, labelsA[r.Start:r.End], labelsB, nLabels)
	}
	var flat []float64
	if err == nil {
		flat = make([]float64, 0, len(rows)*len(edges))
		for _, row := range rows {
			flat = append(flat, row...)
		}
	}
	sum, err := allReduce(g, flat, err)
	if err != nil {
		return nil, err
	}

	return reshape(sum, nLabels+1, len(edges)), nil
}

// GroupSpecificWeightedCount fills this rank's rows of a zero len(a)×len(edges)
// table and sums the tables across the group.
func GroupSpecificWeightedCount(g Group, c pairs.Counter, a, b pairs.Points, edges []float64, period pairs.Period,
	weightsA, weightsB []float64) ([][]float64, error) {
	r := rankRange(g, len(a))
	var (
		rows [][]float64
		err  error
	)
	if weightsA != nil && len(weightsA) != len(a) {
		rows, err = c.SpecificWeightedCount(a, b, edges, period, weightsA, weightsB)
	} else {
		var wa []float64
		if weightsA != nil {
			wa = weightsA[r.Start:r.End]
		}
		rows, err = c.SpecificWeightedCount(a[r.Start:r.End], b, edges, period, wa, weightsB)
	}
	var flat []float64
	if err == nil {
		flat = make([]float64, len(a)*len(edges))
		for i, row := range rows {
			copy(flat[(r.Start+i)*len(edges):], row)
		}
	}
	sum, err := allReduce(g, flat, err)
	if err != nil {
		return nil, err
	}

	return reshape(sum, len(a), len(edges)), nil
}

func reshape(flat []float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out
}
