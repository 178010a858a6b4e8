package pairs

import (
	"fmt"
	"math"
)

// Points is an ordered set of points in k-dimensional space, one row per point.
// Rows are read-only to every function in this module.
type Points [][]float64

// Dim returns the dimensionality shared by all rows, or 0 for an empty set.
// Rows of differing length yield ErrDimensionMismatch.
func (p Points) Dim() (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	k := len(p[0])
	for i := 1; i < len(p); i++ {
		if len(p[i]) != k {
			return 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(p[i]), k, ErrDimensionMismatch)
		}
	}

	return k, nil
}

// Equal reports whether p and q hold the same coordinates in the same order.
func Equal(p, q Points) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if len(p[i]) != len(q[i]) {
			return false
		}
		for d := range p[i] {
			if p[i][d] != q[i][d] {
				return false
			}
		}
	}

	return true
}

// Subset returns the rows of p at idx, in idx order. Rows are shared, not copied.
func (p Points) Subset(idx []int) Points {
	out := make(Points, len(idx))
	for i, j := range idx {
		out[i] = p[j]
	}

	return out
}

// Period holds per-axis box lengths for periodic boundary conditions.
// A nil or empty Period means an infinite, non-periodic domain.
type Period []float64

// Resolve expands p to k axes and validates it.
//
//   - empty           → nil (non-periodic)
//   - length 1        → broadcast to k axes
//   - all +Inf        → nil (non-periodic)
//   - finite and +Inf → ErrMixedPeriod
//   - length ∉ {1,k}  → ErrDimensionMismatch
func (p Period) Resolve(k int) (Period, error) {
	if len(p) == 0 {
		return nil, nil
	}
	var out Period
	switch len(p) {
	case k:
		out = append(Period(nil), p...)
	case 1:
		out = make(Period, k)
		for i := range out {
			out[i] = p[0]
		}
	default:
		return nil, fmt.Errorf("period has %d axes, points have %d: %w", len(p), k, ErrDimensionMismatch)
	}

	var finite, infinite int
	for _, l := range out {
		switch {
		case math.IsNaN(l) || l <= 0:
			return nil, fmt.Errorf("period %v: %w", []float64(p), ErrBadPeriod)
		case math.IsInf(l, 1):
			infinite++
		default:
			finite++
		}
	}
	if finite > 0 && infinite > 0 {
		return nil, ErrMixedPeriod
	}
	if infinite > 0 {
		return nil, nil
	}

	return out, nil
}

// Volume returns the product of the box lengths. It is +Inf for a nil Period.
func (p Period) Volume() float64 {
	if len(p) == 0 {
		return math.Inf(1)
	}
	v := 1.0
	for _, l := range p {
		v *= l
	}

	return v
}

// ValidateBins checks that edges is non-empty, non-negative and strictly increasing.
// A single edge is valid and describes zero bins.
func ValidateBins(edges []float64) error {
	if len(edges) == 0 {
		return fmt.Errorf("no edges: %w", ErrBadBins)
	}
	for i, e := range edges {
		if math.IsNaN(e) || e < 0 {
			return fmt.Errorf("edge %d = %g: %w", i, e, ErrBadBins)
		}
		if i > 0 && e <= edges[i-1] {
			return fmt.Errorf("edge %d = %g after %g: %w", i, e, edges[i-1], ErrBadBins)
		}
	}

	return nil
}

// CheckHalfBox returns ErrBinsExceedHalfBox when the largest edge is larger
// than half of the smallest periodic length. A nil period always passes.
func CheckHalfBox(edges []float64, period Period) error {
	if len(period) == 0 || len(edges) == 0 {
		return nil
	}
	minL := period[0]
	for _, l := range period[1:] {
		minL = math.Min(minL, l)
	}
	if rmax := edges[len(edges)-1]; rmax > minL/2 {
		return fmt.Errorf("max edge %g, box %g: %w", rmax, minL, ErrBinsExceedHalfBox)
	}

	return nil
}

// Diff converts cumulative counts into per-bin counts: out[i] = cum[i+1] - cum[i].
// Fewer than two entries yield an empty, non-nil slice.
func Diff(cum []float64) []float64 {
	if len(cum) < 2 {
		return []float64{}
	}
	out := make([]float64, len(cum)-1)
	for i := range out {
		out[i] = cum[i+1] - cum[i]
	}

	return out
}

// DiffRows applies Diff to every row.
func DiffRows(cum [][]float64) [][]float64 {
	out := make([][]float64, len(cum))
	for i, row := range cum {
		out[i] = Diff(row)
	}

	return out
}
