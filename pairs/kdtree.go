package pairs

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// KDTree counts pairs with range searches on a gonum k-d tree built over the
// second point set. Periodic domains are handled by querying the images of a
// point that lie within the search radius of a box face; each pair is kept
// only for its minimum-image shift, so nothing is counted twice.
type KDTree struct{}

var _ Counter = KDTree{}

// Count implements Counter.
func (KDTree) Count(a, b Points, edges []float64, period Period) ([]float64, error) {
	return runCount(buildTree, a, b, edges, period)
}

// JackknifeCount implements Counter.
func (KDTree) JackknifeCount(a, b Points, edges []float64, period Period,
	labelsA, labelsB []int, nLabels int) ([][]float64, error) {
	return runJackknifeCount(buildTree, a, b, edges, period, labelsA, labelsB, nLabels)
}

// SpecificWeightedCount implements Counter.
func (KDTree) SpecificWeightedCount(a, b Points, edges []float64, period Period,
	weightsA, weightsB []float64) ([][]float64, error) {
	return runSpecificWeightedCount(buildTree, a, b, edges, period, weightsA, weightsB)
}

// searchSlack widens the tree search so rounding in the tree's own metric
// never hides a pair that the exact minimum-image test accepts.
const searchSlack = 1e-9

// treePoint is a kdtree.Comparable that remembers its row in the input set.
type treePoint struct {
	pos []float64
	idx int
}

func (p treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.pos[d] - c.(treePoint).pos[d]
}

func (p treePoint) Dims() int { return len(p.pos) }

// Distance is squared, as kdtree keepers expect.
func (p treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(treePoint)
	var sum float64
	for d, x := range p.pos {
		diff := x - q.pos[d]
		sum += diff * diff
	}

	return sum
}

// treePoints satisfies kdtree.Interface.
type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p treePoints) Len() int                              { return len(p) }
func (p treePoints) Pivot(d kdtree.Dim) int                { return treePlane{Dim: d, treePoints: p}.Pivot() }
func (p treePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// treePlane pivots treePoints along one dimension.
type treePlane struct {
	kdtree.Dim
	treePoints
}

func (p treePlane) Less(i, j int) bool {
	return p.treePoints[i].pos[p.Dim] < p.treePoints[j].pos[p.Dim]
}
func (p treePlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfRandoms(p, 100)) }
func (p treePlane) Slice(start, end int) kdtree.SortSlicer {
	return treePlane{Dim: p.Dim, treePoints: p.treePoints[start:end]}
}
func (p treePlane) Swap(i, j int) {
	p.treePoints[i], p.treePoints[j] = p.treePoints[j], p.treePoints[i]
}

type treeSearch struct {
	tree    *kdtree.Tree
	orig    Points
	period  Period
	r2max   float64
	search2 float64 // r2max widened by searchSlack
	rmax    float64
}

func buildTree(b Points, period Period, r2max float64) searcher {
	pts := make(treePoints, len(b))
	for i, p := range b {
		pos := p
		if period != nil {
			pos = wrap(p, period)
		}
		pts[i] = treePoint{pos: pos, idx: i}
	}

	return &treeSearch{
		tree:    kdtree.New(pts, false),
		orig:    b,
		period:  period,
		r2max:   r2max,
		search2: r2max*(1+searchSlack) + searchSlack,
		rmax:    math.Sqrt(r2max),
	}
}

func (s *treeSearch) visit(q []float64, fn func(j int, d2 float64)) {
	if s.period == nil {
		s.query(q, q, nil, fn)
		return
	}

	base := wrap(q, s.period)
	shifts := make([][]float64, len(base))
	for d, x := range base {
		l := s.period[d]
		opts := []float64{0}
		if x < s.rmax*(1+searchSlack) {
			opts = append(opts, l)
		}
		if x > l-s.rmax*(1+searchSlack) {
			opts = append(opts, -l)
		}
		shifts[d] = opts
	}

	shift := make([]float64, len(base))
	var walk func(d int)
	walk = func(d int) {
		if d == len(base) {
			s.query(q, base, shift, fn)
			return
		}
		for _, sh := range shifts[d] {
			shift[d] = sh
			walk(d + 1)
		}
	}
	walk(0)
}

// query searches around base+shift and reports accepted neighbours of q.
func (s *treeSearch) query(q, base, shift []float64, fn func(j int, d2 float64)) {
	pos := base
	if shift != nil {
		pos = make([]float64, len(base))
		for d := range base {
			pos[d] = base[d] + shift[d]
		}
	}

	keep := kdtree.NewDistKeeper(s.search2)
	s.tree.NearestSet(keep, treePoint{pos: pos, idx: -1})
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		p := c.Comparable.(treePoint)
		if shift != nil && !s.canonical(base, p.pos, shift) {
			continue
		}
		if d2 := sqDist(q, s.orig[p.idx], s.period); d2 <= s.r2max {
			fn(p.idx, d2)
		}
	}
}

// canonical reports whether shift is the minimum-image shift between the
// wrapped query base and the wrapped tree point p.
func (s *treeSearch) canonical(base, p, shift []float64) bool {
	for d := range base {
		l := s.period[d]
		diff := base[d] - p[d]
		want := 0.0
		if diff > l/2 {
			want = -l
		} else if diff < -l/2 {
			want = l
		}
		if shift[d] != want {
			return false
		}
	}

	return true
}

// wrap folds x into [0, L) on every axis.
func wrap(x []float64, period Period) []float64 {
	out := make([]float64, len(x))
	for d, v := range x {
		l := period[d]
		w := math.Mod(v, l)
		if w < 0 {
			w += l
		}
		if w >= l {
			w -= l
		}
		out[d] = w
	}

	return out
}
