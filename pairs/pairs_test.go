package pairs_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/twopoint/pairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformBox returns n deterministic uniform points in [0, l)^k.
func uniformBox(seed int64, n, k int, l float64) pairs.Points {
	rng := rand.New(rand.NewSource(seed))
	pts := make(pairs.Points, n)
	for i := range pts {
		p := make([]float64, k)
		for d := range p {
			p[d] = rng.Float64() * l
		}
		pts[i] = p
	}

	return pts
}

func backends(t *testing.T) map[string]pairs.Counter {
	out := make(map[string]pairs.Counter)
	for _, name := range pairs.Backends() {
		c, err := pairs.New(name)
		require.NoError(t, err)
		out[name] = c
	}

	return out
}

// TestCount_Line checks hand-computed counts on four collinear points.
// Ordered pairs with self pairs: 4 at d=0, 6 at d=1, 4 at d=2, 2 at d=3.
func TestCount_Line(t *testing.T) {
	pts := pairs.Points{{0}, {1}, {2}, {3}}
	edges := []float64{0.5, 1.5, 2.5}
	for name, c := range backends(t) {
		got, err := c.Count(pts, pts, edges, nil)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{4, 10, 14}, got, name)
	}
}

// TestCount_PeriodicWrap verifies minimum-image separations across a box face.
func TestCount_PeriodicWrap(t *testing.T) {
	a := pairs.Points{{0.5, 5}}
	b := pairs.Points{{9.5, 5}}
	edges := []float64{0.5, 1.5}
	for name, c := range backends(t) {
		got, err := c.Count(a, b, edges, pairs.Period{10})
		require.NoError(t, err, name)
		assert.Equal(t, []float64{0, 1}, got, name)

		open, err := c.Count(a, b, edges, nil)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{0, 0}, open, name)
	}
}

// TestBackendsAgree compares KDTree against BruteForce on uniform points.
func TestBackendsAgree(t *testing.T) {
	a := uniformBox(1, 300, 3, 100)
	b := uniformBox(2, 400, 3, 100)
	edges := []float64{1, 5, 10, 20, 35, 50}

	for _, period := range []pairs.Period{nil, {100}} {
		want, err := pairs.BruteForce{}.Count(a, b, edges, period)
		require.NoError(t, err)
		got, err := pairs.KDTree{}.Count(a, b, edges, period)
		require.NoError(t, err)
		assert.Equal(t, want, got, "period %v", period)

		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i], got[i-1], "cumulative counts must not decrease")
		}
		for _, c := range pairs.Diff(got) {
			assert.GreaterOrEqual(t, c, 0.0)
		}
	}
}

// TestBackendsAgree_TwoDim exercises 2-D periodic images, including corners.
func TestBackendsAgree_TwoDim(t *testing.T) {
	a := uniformBox(3, 200, 2, 20)
	a = append(a, []float64{0.1, 0.1}, []float64{19.9, 19.9}, []float64{0, 19.99})
	edges := []float64{0.5, 2, 5, 10}

	want, err := pairs.BruteForce{}.Count(a, a, edges, pairs.Period{20, 20})
	require.NoError(t, err)
	got, err := pairs.KDTree{}.Count(a, a, edges, pairs.Period{20, 20})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestJackknifeCount_Rows checks row 0 against Count and every leave-one-out
// row against a count on the points that remain after removing that label.
func TestJackknifeCount_Rows(t *testing.T) {
	pts := uniformBox(4, 150, 3, 10)
	labels := make([]int, len(pts))
	for i, p := range pts {
		labels[i] = 1
		if p[0] >= 5 {
			labels[i] = 2
		}
	}
	edges := []float64{0.5, 1, 2}

	for name, c := range backends(t) {
		rows, err := c.JackknifeCount(pts, pts, edges, nil, labels, labels, 2)
		require.NoError(t, err, name)
		require.Len(t, rows, 3)

		full, err := c.Count(pts, pts, edges, nil)
		require.NoError(t, err)
		assert.Equal(t, full, rows[0], name)

		for l := 1; l <= 2; l++ {
			var keep pairs.Points
			for i, p := range pts {
				if labels[i] != l {
					keep = append(keep, p)
				}
			}
			want, err := c.Count(keep, keep, edges, nil)
			require.NoError(t, err)
			assert.Equal(t, want, rows[l], "%s label %d", name, l)
		}
	}
}

// TestSpecificWeightedCount_Rows checks per-object rows and weighting.
func TestSpecificWeightedCount_Rows(t *testing.T) {
	a := pairs.Points{{0}, {10}}
	b := pairs.Points{{0.5}, {1.5}, {10.2}}
	edges := []float64{1, 2}

	for name, c := range backends(t) {
		rows, err := c.SpecificWeightedCount(a, b, edges, nil, []float64{2, 3}, []float64{1, 10, 100})
		require.NoError(t, err, name)
		require.Len(t, rows, 2)
		assert.Equal(t, []float64{2, 22}, rows[0], name)
		assert.Equal(t, []float64{300, 300}, rows[1], name)

		unit, err := c.SpecificWeightedCount(a, b, edges, nil, nil, nil)
		require.NoError(t, err)
		total, err := c.Count(a, b, edges, nil)
		require.NoError(t, err)
		for i := range edges {
			assert.Equal(t, total[i], unit[0][i]+unit[1][i])
		}
	}
}

// TestCount_Errors walks the configuration-error taxonomy.
func TestCount_Errors(t *testing.T) {
	pts := pairs.Points{{1, 1, 1}, {2, 2, 2}}
	c := pairs.KDTree{}

	_, err := c.Count(pts, pairs.Points{{1, 1}}, []float64{1}, nil)
	assert.ErrorIs(t, err, pairs.ErrDimensionMismatch)

	_, err = c.Count(pts, pts, []float64{2, 1}, nil)
	assert.ErrorIs(t, err, pairs.ErrBadBins)

	_, err = c.Count(pts, pts, []float64{}, nil)
	assert.ErrorIs(t, err, pairs.ErrBadBins)

	_, err = c.Count(pts, pts, []float64{1}, pairs.Period{10, math.Inf(1), 10})
	assert.ErrorIs(t, err, pairs.ErrMixedPeriod)

	_, err = c.Count(pts, pts, []float64{1, 6}, pairs.Period{10})
	assert.ErrorIs(t, err, pairs.ErrBinsExceedHalfBox)

	_, err = c.Count(pts, pts, []float64{1}, pairs.Period{10, 10})
	assert.ErrorIs(t, err, pairs.ErrDimensionMismatch)

	_, err = c.Count(pts, pts, []float64{1}, pairs.Period{-1})
	assert.ErrorIs(t, err, pairs.ErrBadPeriod)

	_, err = c.JackknifeCount(pts, pts, []float64{1}, nil, []int{1, 3}, []int{1, 1}, 2)
	assert.ErrorIs(t, err, pairs.ErrBadLabel)

	_, err = c.JackknifeCount(pts, pts, []float64{1}, nil, []int{1}, []int{1, 1}, 2)
	assert.ErrorIs(t, err, pairs.ErrLengthMismatch)

	_, err = c.SpecificWeightedCount(pts, pts, []float64{1}, nil, []float64{1}, nil)
	assert.ErrorIs(t, err, pairs.ErrLengthMismatch)

	_, err = pairs.New("octree")
	assert.ErrorIs(t, err, pairs.ErrUnknownBackend)
}

// TestCount_SingleEdge verifies a single edge is valid and differences to nothing.
func TestCount_SingleEdge(t *testing.T) {
	pts := pairs.Points{{0, 0}, {0.5, 0}}
	got, err := pairs.BruteForce{}.Count(pts, pts, []float64{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, got)
	assert.Empty(t, pairs.Diff(got))
	assert.NotNil(t, pairs.Diff(got))
}

func TestPeriod_Resolve(t *testing.T) {
	p, err := pairs.Period{250}.Resolve(3)
	require.NoError(t, err)
	assert.Equal(t, pairs.Period{250, 250, 250}, p)
	assert.Equal(t, 250.0*250*250, p.Volume())

	p, err = pairs.Period{math.Inf(1)}.Resolve(2)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, math.IsInf(p.Volume(), 1))
}

func TestEqualAndSubset(t *testing.T) {
	pts := pairs.Points{{1, 2}, {3, 4}, {5, 6}}
	assert.True(t, pairs.Equal(pts, pairs.Points{{1, 2}, {3, 4}, {5, 6}}))
	assert.False(t, pairs.Equal(pts, pts[:2]))
	assert.False(t, pairs.Equal(pts, pairs.Points{{1, 2}, {3, 4}, {5, 7}}))
	assert.Equal(t, pairs.Points{{5, 6}, {1, 2}}, pts.Subset([]int{2, 0}))

	_, err := pairs.Points{{1, 2}, {3}}.Dim()
	assert.ErrorIs(t, err, pairs.ErrDimensionMismatch)
}
