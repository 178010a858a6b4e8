package pairs

import (
	"fmt"
	"math"
	"sort"
)

// Counter is the pair-counting strategy every estimator runs on.
// Implementations must be safe for concurrent use on read-only inputs.
type Counter interface {
	// Count returns cumulative counts of ordered pairs (a_i, b_j) with
	// separation ≤ edges[n], one entry per edge.
	Count(a, b Points, edges []float64, period Period) ([]float64, error)

	// JackknifeCount returns nLabels+1 rows of cumulative counts. Row 0 counts
	// all pairs; row L counts the pairs in which neither point carries label L.
	JackknifeCount(a, b Points, edges []float64, period Period, labelsA, labelsB []int, nLabels int) ([][]float64, error)

	// SpecificWeightedCount returns one row per point of a: row i holds the
	// cumulative sum of weightsA[i]·weightsB[j] over neighbours j of a_i.
	// Nil weights mean unit weights.
	SpecificWeightedCount(a, b Points, edges []float64, period Period, weightsA, weightsB []float64) ([][]float64, error)
}

// Backend names accepted by New.
const (
	BackendKDTree     = "kdtree"
	BackendBruteForce = "brute"
)

// New returns the Counter registered under name.
func New(name string) (Counter, error) {
	switch name {
	case BackendKDTree:
		return KDTree{}, nil
	case BackendBruteForce:
		return BruteForce{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownBackend)
	}
}

// Backends lists the names accepted by New.
func Backends() []string {
	return []string{BackendKDTree, BackendBruteForce}
}

// searcher visits every indexed point within the search radius of q,
// reporting its index and squared minimum-image separation.
type searcher interface {
	visit(q []float64, fn func(j int, d2 float64))
}

// buildFunc indexes b for queries out to squared radius r2max.
type buildFunc func(b Points, period Period, r2max float64) searcher

// prepared holds validated inputs shared by all three counting modes.
type prepared struct {
	period Period
	e2     []float64 // squared edges
}

func prepare(a, b Points, edges []float64, period Period) (prepared, error) {
	if err := ValidateBins(edges); err != nil {
		return prepared{}, err
	}
	ka, err := a.Dim()
	if err != nil {
		return prepared{}, err
	}
	kb, err := b.Dim()
	if err != nil {
		return prepared{}, err
	}
	if len(a) > 0 && len(b) > 0 && ka != kb {
		return prepared{}, fmt.Errorf("%d vs %d columns: %w", ka, kb, ErrDimensionMismatch)
	}
	k := max(ka, kb)
	if k == 0 && (len(a) > 0 || len(b) > 0) {
		return prepared{}, fmt.Errorf("zero-column points: %w", ErrDimensionMismatch)
	}
	p, err := period.Resolve(k)
	if err != nil {
		return prepared{}, err
	}
	if err = CheckHalfBox(edges, p); err != nil {
		return prepared{}, err
	}

	e2 := make([]float64, len(edges))
	for i, e := range edges {
		e2[i] = e * e
	}

	return prepared{period: p, e2: e2}, nil
}

// binOf returns the first edge index whose squared value is ≥ d2,
// or len(e2) if d2 lies beyond the last edge.
func binOf(e2 []float64, d2 float64) int {
	return sort.SearchFloat64s(e2, d2)
}

// cumulate turns per-edge histograms into running sums in place.
func cumulate(h []float64) {
	for i := 1; i < len(h); i++ {
		h[i] += h[i-1]
	}
}

func runCount(build buildFunc, a, b Points, edges []float64, period Period) ([]float64, error) {
	p, err := prepare(a, b, edges, period)
	if err != nil {
		return nil, err
	}
	hist := make([]float64, len(edges))
	if len(a) == 0 || len(b) == 0 {
		return hist, nil
	}

	s := build(b, p.period, p.e2[len(p.e2)-1])
	for _, q := range a {
		s.visit(q, func(_ int, d2 float64) {
			if i := binOf(p.e2, d2); i < len(hist) {
				hist[i]++
			}
		})
	}
	cumulate(hist)

	return hist, nil
}

func runJackknifeCount(build buildFunc, a, b Points, edges []float64, period Period,
	labelsA, labelsB []int, nLabels int) ([][]float64, error) {
	p, err := prepare(a, b, edges, period)
	if err != nil {
		return nil, err
	}
	if len(labelsA) != len(a) || len(labelsB) != len(b) {
		return nil, fmt.Errorf("labels %d/%d for %d/%d points: %w",
			len(labelsA), len(labelsB), len(a), len(b), ErrLengthMismatch)
	}
	if err = checkLabels(labelsA, nLabels); err != nil {
		return nil, err
	}
	if err = checkLabels(labelsB, nLabels); err != nil {
		return nil, err
	}

	// total[i] counts every pair; excluded[L][i] counts pairs touching label L.
	total := make([]float64, len(edges))
	excluded := make([][]float64, nLabels+1)
	for l := range excluded {
		excluded[l] = make([]float64, len(edges))
	}

	if len(a) > 0 && len(b) > 0 {
		s := build(b, p.period, p.e2[len(p.e2)-1])
		for ia, q := range a {
			la := labelsA[ia]
			s.visit(q, func(j int, d2 float64) {
				i := binOf(p.e2, d2)
				if i >= len(total) {
					return
				}
				total[i]++
				excluded[la][i]++
				if lb := labelsB[j]; lb != la {
					excluded[lb][i]++
				}
			})
		}
	}

	out := make([][]float64, nLabels+1)
	out[0] = total
	for l := 1; l <= nLabels; l++ {
		row := make([]float64, len(edges))
		for i := range row {
			row[i] = total[i] - excluded[l][i]
		}
		out[l] = row
	}
	for _, row := range out {
		cumulate(row)
	}

	return out, nil
}

func checkLabels(labels []int, nLabels int) error {
	for i, l := range labels {
		if l < 1 || l > nLabels {
			return fmt.Errorf("point %d has label %d, want 1..%d: %w", i, l, nLabels, ErrBadLabel)
		}
	}

	return nil
}

func runSpecificWeightedCount(build buildFunc, a, b Points, edges []float64, period Period,
	weightsA, weightsB []float64) ([][]float64, error) {
	p, err := prepare(a, b, edges, period)
	if err != nil {
		return nil, err
	}
	if weightsA != nil && len(weightsA) != len(a) {
		return nil, fmt.Errorf("%d weights for %d points: %w", len(weightsA), len(a), ErrLengthMismatch)
	}
	if weightsB != nil && len(weightsB) != len(b) {
		return nil, fmt.Errorf("%d weights for %d points: %w", len(weightsB), len(b), ErrLengthMismatch)
	}

	out := make([][]float64, len(a))
	for i := range out {
		out[i] = make([]float64, len(edges))
	}
	if len(a) == 0 || len(b) == 0 {
		return out, nil
	}

	s := build(b, p.period, p.e2[len(p.e2)-1])
	for ia, q := range a {
		wa := weightAt(weightsA, ia)
		row := out[ia]
		s.visit(q, func(j int, d2 float64) {
			if i := binOf(p.e2, d2); i < len(row) {
				row[i] += wa * weightAt(weightsB, j)
			}
		})
		cumulate(row)
	}

	return out, nil
}

func weightAt(w []float64, i int) float64 {
	if w == nil {
		return 1
	}

	return w[i]
}

// minImage folds a coordinate difference into [-L/2, L/2].
func minImage(d, l float64) float64 {
	d = math.Mod(d, l)
	if d > l/2 {
		d -= l
	} else if d < -l/2 {
		d += l
	}

	return d
}

// sqDist is the squared separation of x and y, minimum-image when period is set.
func sqDist(x, y []float64, period Period) float64 {
	var sum float64
	for d := range x {
		diff := x[d] - y[d]
		if period != nil {
			diff = minImage(diff, period[d])
		}
		sum += diff * diff
	}

	return sum
}
