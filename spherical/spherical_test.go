package spherical_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/twopoint/cosmo"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/katalvlaran/twopoint/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linear is X(z) = 1000·z Mpc, so X/(1+z) is easy to compute by hand.
var linear = cosmo.DistanceFunc(func(z float64) float64 { return 1000 * z })

func TestToCartesian(t *testing.T) {
	got, err := spherical.ToCartesian(pairs.Points{{0, 0}, {90, 0}, {123, 90}, {180, -90}})
	require.NoError(t, err)
	want := pairs.Points{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, -1}}
	for i := range want {
		assert.InDeltaSlice(t, want[i], got[i], 1e-15, "row %d", i)
		assert.InDelta(t, 1, math.Sqrt(got[i][0]*got[i][0]+got[i][1]*got[i][1]+got[i][2]*got[i][2]), 1e-15)
	}

	_, err = spherical.ToCartesian(pairs.Points{{1, 2, 3}})
	assert.ErrorIs(t, err, spherical.ErrNotAngular)

	got, err = spherical.ToCartesian(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestChordBins matches chord lengths to Euclidean distances between unit vectors.
func TestChordBins(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0, math.Sqrt2, 2}, spherical.ChordBins([]float64{0, 90, 180}), 1e-15)

	pts, err := spherical.ToCartesian(pairs.Points{{10, 20}, {10, 55}})
	require.NoError(t, err)
	d := math.Sqrt(math.Pow(pts[0][0]-pts[1][0], 2) + math.Pow(pts[0][1]-pts[1][1], 2) + math.Pow(pts[0][2]-pts[1][2], 2))
	assert.InDelta(t, spherical.ChordBins([]float64{35})[0], d, 1e-14)
}

func TestProjectedThetaBins(t *testing.T) {
	rBins := []float64{1, 10}
	z := []float64{0.25, 1}
	theta, err := spherical.ProjectedThetaBins(rBins, z, 3, linear)
	require.NoError(t, err)
	require.Len(t, theta, 6)

	// θ_min = 1/(1000/2) rad, θ_max = 10/(250/1.25) rad
	assert.InDelta(t, 0.002*180/math.Pi, theta[0], 1e-12)
	assert.InDelta(t, 0.05*180/math.Pi, theta[5], 1e-12)
	for i := 1; i < len(theta); i++ {
		assert.InDelta(t, theta[1]/theta[0], theta[i]/theta[i-1], 1e-9, "log-spaced")
	}

	_, err = spherical.ProjectedThetaBins([]float64{1}, z, 3, linear)
	assert.ErrorIs(t, err, pairs.ErrBadBins)
	_, err = spherical.ProjectedThetaBins([]float64{0, 1}, z, 3, linear)
	assert.ErrorIs(t, err, pairs.ErrBadBins)
	_, err = spherical.ProjectedThetaBins(rBins, []float64{0.5, 0}, 3, linear)
	assert.ErrorIs(t, err, spherical.ErrBadRedshift)
	_, err = spherical.ProjectedThetaBins(rBins, nil, 3, linear)
	assert.ErrorIs(t, err, spherical.ErrBadRedshift)
	_, err = spherical.ProjectedThetaBins([]float64{1, 5000}, []float64{0.001}, 3, linear)
	assert.ErrorIs(t, err, spherical.ErrThetaRange)
}

// TestRebin places each angular bin by its lower edge.
func TestRebin(t *testing.T) {
	z := []float64{0.25, 1}                   // scales 200 and 500 Mpc/rad
	thetaDeg := []float64{0.1, 0.2, 0.4, 0.8} // three angular bins
	rBins := []float64{0, 1, 2, 4}

	rows := [][]float64{
		{1, 2, 4},
		{10, 20, 40},
	}
	got, err := spherical.Rebin(rows, thetaDeg, rBins, z, linear)
	require.NoError(t, err)

	// object 0: r = 200·θ_k·π/180 = 0.349, 0.698, 1.396 → bins 0, 0, 1
	// object 1: r = 500·θ_k·π/180 = 0.873, 1.745, 3.491 → bins 0, 1, 2
	assert.Equal(t, []float64{1 + 2 + 10, 4 + 20, 40}, got)

	// separations beyond the last edge are dropped
	got, err = spherical.Rebin(rows, thetaDeg, []float64{0, 1}, z, linear)
	require.NoError(t, err)
	assert.Equal(t, []float64{13}, got)

	_, err = spherical.Rebin(rows[:1], thetaDeg, rBins, z, linear)
	assert.ErrorIs(t, err, spherical.ErrLengthMismatch)
	_, err = spherical.Rebin([][]float64{{1}, {1}}, thetaDeg, rBins, z, linear)
	assert.ErrorIs(t, err, spherical.ErrLengthMismatch)
}
