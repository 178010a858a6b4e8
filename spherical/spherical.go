package spherical

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/twopoint/cosmo"
	"github.com/katalvlaran/twopoint/pairs"
	"gonum.org/v1/gonum/floats"
)

const deg = math.Pi / 180

// ToCartesian converts (ra, dec) rows in degrees to unit vectors
// (cos δ cos α, cos δ sin α, sin δ).
func ToCartesian(points pairs.Points) (pairs.Points, error) {
	k, err := points.Dim()
	if err != nil {
		return nil, err
	}
	if len(points) > 0 && k != 2 {
		return nil, fmt.Errorf("%d columns: %w", k, ErrNotAngular)
	}

	out := make(pairs.Points, len(points))
	for i, p := range points {
		ra, dec := p[0]*deg, p[1]*deg
		cd := math.Cos(dec)
		out[i] = []float64{cd * math.Cos(ra), cd * math.Sin(ra), math.Sin(dec)}
	}

	return out, nil
}

// ChordBins converts angular edges in degrees to chord lengths on the unit sphere.
func ChordBins(thetaDeg []float64) []float64 {
	out := make([]float64, len(thetaDeg))
	for i, t := range thetaDeg {
		out[i] = 2 * math.Sin(t*deg/2)
	}

	return out
}

// ProjectedThetaBins returns oversample·len(rBins) log-spaced angular edges,
// in degrees, covering every separation in rBins (Mpc) at every redshift in z:
//
//	θ_min = min(r)/(X(z_max)/(1+z_max))
//	θ_max = max(r)/(X(z_min)/(1+z_min))
//
// where X is the comoving distance of c.
func ProjectedThetaBins(rBins, z []float64, oversample int, c cosmo.Cosmology) ([]float64, error) {
	if err := pairs.ValidateBins(rBins); err != nil {
		return nil, err
	}
	if len(rBins) < 2 || rBins[0] <= 0 {
		return nil, fmt.Errorf("projected bins %v need two positive edges: %w", rBins, pairs.ErrBadBins)
	}
	if len(z) == 0 {
		return nil, fmt.Errorf("no redshifts: %w", ErrBadRedshift)
	}
	for i, zi := range z {
		if !(zi > 0) || math.IsInf(zi, 0) {
			return nil, fmt.Errorf("z[%d] = %g: %w", i, zi, ErrBadRedshift)
		}
	}
	if oversample < 1 {
		oversample = 1
	}

	zmin, zmax := floats.Min(z), floats.Max(z)
	thetaMin := rBins[0] / (c.ComovingDistance(zmax) / (1 + zmax))
	thetaMax := rBins[len(rBins)-1] / (c.ComovingDistance(zmin) / (1 + zmin))
	if thetaMax/deg > 180 {
		return nil, fmt.Errorf("θ_max = %g deg at z = %g: %w", thetaMax/deg, zmin, ErrThetaRange)
	}

	theta := floats.LogSpan(make([]float64, oversample*len(rBins)), thetaMin, thetaMax)
	floats.Scale(1/deg, theta)

	return theta, nil
}

// Rebin folds per-object angular counts into physical bins. rows[j][k] is the
// count of object j in angular bin [θ_k, θ_k+1); it is credited to the r bin
// holding X(z_j)/(1+z_j)·θ_k, and dropped when that separation lies outside rBins.
// The result has len(rBins)−1 entries.
func Rebin(rows [][]float64, thetaDeg, rBins, z []float64, c cosmo.Cosmology) ([]float64, error) {
	if len(rows) != len(z) {
		return nil, fmt.Errorf("%d rows for %d redshifts: %w", len(rows), len(z), ErrLengthMismatch)
	}
	nTheta := max(len(thetaDeg)-1, 0)
	nR := max(len(rBins)-1, 0)
	out := make([]float64, nR)

	for j, row := range rows {
		if len(row) != nTheta {
			return nil, fmt.Errorf("row %d has %d bins, want %d: %w", j, len(row), nTheta, ErrLengthMismatch)
		}
		scale := c.ComovingDistance(z[j]) / (1 + z[j])
		for k, n := range row {
			r := scale * thetaDeg[k] * deg
			if idx := sort.SearchFloat64s(rBins, r) - 1; idx >= 0 && idx < nR {
				out[idx] += n
			}
		}
	}

	return out, nil
}
