package jackknife_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/jackknife"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := jackknife.NewGrid([]int{3}, []float64{90}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3}, g.Nsub)
	assert.Equal(t, []float64{90, 90, 90}, g.Lbox)
	assert.Equal(t, 27, g.Total())

	g, err = jackknife.NewGrid([]int{2, 5}, []float64{10}, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Total())

	for _, tc := range []struct {
		nsub []int
		lbox []float64
	}{
		{[]int{2, 2}, []float64{1}},
		{[]int{2}, []float64{1, 1}},
		{[]int{0}, []float64{1}},
		{[]int{2}, []float64{-1}},
		{[]int{2}, []float64{math.Inf(1)}},
		{nil, []float64{1}},
	} {
		_, err := jackknife.NewGrid(tc.nsub, tc.lbox, 3)
		assert.ErrorIs(t, err, jackknife.ErrGridShape, "%v %v", tc.nsub, tc.lbox)
	}
}

// TestLabels checks the x-fastest flattening and clamping at the box faces.
func TestLabels(t *testing.T) {
	g, err := jackknife.NewGrid([]int{2, 3}, []float64{10, 30}, 2)
	require.NoError(t, err)

	labels, err := g.Labels(pairs.Points{
		{1, 1},   // cell (0,0)
		{6, 1},   // cell (1,0)
		{1, 11},  // cell (0,1)
		{6, 25},  // cell (1,2)
		{10, 30}, // far faces clamp to (1,2)
		{-1, -1}, // below clamps to (0,0)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 6, 6, 1}, labels)

	_, err = g.Labels(pairs.Points{{1, 2, 3}})
	assert.ErrorIs(t, err, jackknife.ErrGridShape)

	labels, err = g.Labels(nil)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestRows(t *testing.T) {
	table := [][]float64{{10, 20}, {8, 15}, {7, 16}}
	full, sub, err := jackknife.Rows(table, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, full)
	assert.Equal(t, [][]float64{{8, 15}, {7, 16}}, sub)

	_, _, err = jackknife.Rows(table, 3)
	assert.ErrorIs(t, err, jackknife.ErrRowCount)
}

// TestErrors compares against a hand computation.
func TestErrors(t *testing.T) {
	full := []float64{0, 1}
	sub := [][]float64{{1, 1}, {-1, 3}}
	got, err := jackknife.Errors(sub, full)
	require.NoError(t, err)
	// bin 0: sqrt(1/2 · (1+1)) = 1; bin 1: sqrt(1/2 · (0+4)) = √2
	assert.InDeltaSlice(t, []float64{1, math.Sqrt2}, got, 1e-12)

	_, err = jackknife.Errors(nil, full)
	assert.ErrorIs(t, err, jackknife.ErrRowCount)
	_, err = jackknife.Errors([][]float64{{1}}, full)
	assert.ErrorIs(t, err, jackknife.ErrLengthMismatch)
}

// TestErrors_OrderInvariant permutes the leave-one-out rows.
func TestErrors_OrderInvariant(t *testing.T) {
	full := []float64{0.1, 0.5, -0.2}
	sub := [][]float64{{0.12, 0.4, -0.1}, {0.05, 0.55, -0.3}, {0.2, 0.48, -0.25}, {0.09, 0.6, -0.2}}
	want, err := jackknife.Errors(sub, full)
	require.NoError(t, err)

	perm := [][]float64{sub[2], sub[0], sub[3], sub[1]}
	got, err := jackknife.Errors(perm, full)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-15)
}

func TestEvaluate_SharedRR(t *testing.T) {
	dd := [][]float64{{8, 4}, {6, 2}, {4, 4}}
	rr := [][]float64{{4, 4}}
	full, sub, err := jackknife.Evaluate(estimator.Natural, dd, nil, rr, estimator.Unit)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, full)
	assert.Equal(t, [][]float64{{0.5, -0.5}, {0, 0}}, sub)

	_, _, err = jackknife.Evaluate(estimator.Natural, dd, nil, [][]float64{{1}, {1}}, estimator.Unit)
	assert.ErrorIs(t, err, jackknife.ErrRowCount)
	_, _, err = jackknife.Evaluate(estimator.DavisPeebles, dd, nil, rr, estimator.Unit)
	assert.ErrorIs(t, err, estimator.ErrMissingCounts)
}
