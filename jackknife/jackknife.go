package jackknife

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/pairs"
	"gonum.org/v1/gonum/floats"
)

// Grid is a regular subvolume tiling of a box.
type Grid struct {
	Nsub []int
	Lbox []float64
}

// NewGrid broadcasts length-1 nsub and lbox to k axes and validates them.
func NewGrid(nsub []int, lbox []float64, k int) (Grid, error) {
	if k < 1 {
		return Grid{}, fmt.Errorf("dimension %d: %w", k, ErrGridShape)
	}
	n, err := broadcast(nsub, k, "nsub")
	if err != nil {
		return Grid{}, err
	}
	l, err := broadcast(lbox, k, "lbox")
	if err != nil {
		return Grid{}, err
	}
	for d := 0; d < k; d++ {
		if n[d] < 1 {
			return Grid{}, fmt.Errorf("nsub[%d] = %d: %w", d, n[d], ErrGridShape)
		}
		if !(l[d] > 0) || math.IsInf(l[d], 0) {
			return Grid{}, fmt.Errorf("lbox[%d] = %g: %w", d, l[d], ErrGridShape)
		}
	}

	return Grid{Nsub: n, Lbox: l}, nil
}

func broadcast[T any](v []T, k int, name string) ([]T, error) {
	switch len(v) {
	case k:
		return append([]T(nil), v...), nil
	case 1:
		out := make([]T, k)
		for i := range out {
			out[i] = v[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s has %d entries, want 1 or %d: %w", name, len(v), k, ErrGridShape)
	}
}

// Total is the number of subvolumes, Π Nsub.
func (g Grid) Total() int {
	n := 1
	for _, s := range g.Nsub {
		n *= s
	}

	return n
}

// Labels returns the subvolume label, in 1..Total, of every point.
func (g Grid) Labels(points pairs.Points) ([]int, error) {
	k, err := points.Dim()
	if err != nil {
		return nil, err
	}
	if len(points) > 0 && k != len(g.Nsub) {
		return nil, fmt.Errorf("points have %d columns, grid has %d: %w", k, len(g.Nsub), ErrGridShape)
	}

	out := make([]int, len(points))
	for i, p := range points {
		label, stride := 1, 1
		for d, x := range p {
			cell := int(math.Floor(x / (g.Lbox[d] / float64(g.Nsub[d]))))
			cell = min(max(cell, 0), g.Nsub[d]-1)
			label += cell * stride
			stride *= g.Nsub[d]
		}
		out[i] = label
	}

	return out, nil
}

// Rows splits a table of total+1 rows into the full row and the leave-one-out rows.
func Rows(counts [][]float64, total int) (full []float64, sub [][]float64, err error) {
	if len(counts) != total+1 {
		return nil, nil, fmt.Errorf("%d rows for %d subvolumes: %w", len(counts), total, ErrRowCount)
	}

	return counts[0], counts[1:], nil
}

// Evaluate applies e to row 0 of dd, dr and rr and then to each leave-one-out
// row. dr and rr may hold a single row, which is then shared by every
// evaluation, or be nil when e does not read them.
func Evaluate(e estimator.Estimator, dd, dr, rr [][]float64, f estimator.Factors) (full []float64, sub [][]float64, err error) {
	if len(dd) < 2 {
		return nil, nil, fmt.Errorf("DD has %d rows: %w", len(dd), ErrRowCount)
	}
	if len(dr) > 1 && len(dr) != len(dd) {
		return nil, nil, fmt.Errorf("DR has %d rows, DD has %d: %w", len(dr), len(dd), ErrRowCount)
	}
	if len(rr) > 1 && len(rr) != len(dd) {
		return nil, nil, fmt.Errorf("RR has %d rows, DD has %d: %w", len(rr), len(dd), ErrRowCount)
	}

	xi := make([][]float64, len(dd))
	for i := range dd {
		if xi[i], err = estimator.Evaluate(e, dd[i], rowAt(dr, i), rowAt(rr, i), f); err != nil {
			return nil, nil, err
		}
	}

	return xi[0], xi[1:], nil
}

func rowAt(t [][]float64, i int) []float64 {
	switch len(t) {
	case 0:
		return nil
	case 1:
		return t[0]
	default:
		return t[i]
	}
}

// Errors returns the per-bin jackknife standard error of the n = len(sub)
// leave-one-out estimates about full.
func Errors(sub [][]float64, full []float64) ([]float64, error) {
	n := len(sub)
	if n == 0 {
		return nil, fmt.Errorf("no leave-one-out rows: %w", ErrRowCount)
	}

	sum := make([]float64, len(full))
	dev := make([]float64, len(full))
	for l, row := range sub {
		if len(row) != len(full) {
			return nil, fmt.Errorf("row %d has %d bins, want %d: %w", l+1, len(row), len(full), ErrLengthMismatch)
		}
		floats.SubTo(dev, row, full)
		floats.Mul(dev, dev)
		floats.Add(sum, dev)
	}

	scale := float64(n-1) / float64(n)
	for i, s := range sum {
		sum[i] = math.Sqrt(scale * s)
	}

	return sum, nil
}
