package correlation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/twopoint/cosmo"
	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/katalvlaran/twopoint/randoms"
	"github.com/katalvlaran/twopoint/spherical"
	"gonum.org/v1/gonum/floats"
)

// ProjectedCross estimates the projected cross-correlation w(r_p) between a
// sample1 of (ra, dec) positions with redshifts z and an angular sample2, in
// the physical bins rbins (Mpc).
//
// Each sample1 object's neighbours are counted on an angular grid oversampled
// opts.ThetaOversample times, then folded into rbins at that object's own
// transverse scale c.ComovingDistance(z)/(1+z). Only D1D2 and D1R are counted,
// so the estimator must not read RR (ErrEstimatorNeedsRR); use
// DefaultProjectedOptions for Davis-Peebles. A nil c is the default flat ΛCDM.
//
// Without opts.Randoms the full sky is assumed: each sample1 object expects
// w1·Σw2·ΔΩ/4π weighted neighbours in a shell of solid angle ΔΩ.
func ProjectedCross(sample1 pairs.Points, z []float64, sample2 pairs.Points, rbins []float64,
	c cosmo.Cosmology, opts Options) ([]float64, error) {
	e := opts.Estimator
	k, err := checkSamples(e, sample1, sample2, opts.Randoms)
	if err != nil {
		return nil, err
	}
	if e.Requirements().RR {
		return nil, fmt.Errorf("%v: %w", e, ErrEstimatorNeedsRR)
	}
	if k != 2 {
		return nil, fmt.Errorf("%d columns: %w", k, spherical.ErrNotAngular)
	}
	if sample2 == nil {
		sample2 = sample1
	}
	if err = checkAligned(len(sample1), len(z), "redshifts"); err != nil {
		return nil, err
	}
	if err = checkWeights(opts.Weights1, len(sample1), "sample1"); err != nil {
		return nil, err
	}
	if err = checkWeights(opts.Weights2, len(sample2), "sample2"); err != nil {
		return nil, err
	}
	if err = checkWeights(opts.WeightsRandoms, len(opts.Randoms), "randoms"); err != nil {
		return nil, err
	}
	if err = pairs.ValidateBins(rbins); err != nil {
		return nil, err
	}
	if len(rbins) == 1 {
		return []float64{}, nil
	}
	if c == nil {
		c = cosmo.DefaultFlatLambdaCDM()
	}
	theta, err := spherical.ProjectedThetaBins(rbins, z, opts.ThetaOversample, c)
	if err != nil {
		return nil, err
	}
	mode, err := randoms.SelectMode(true, len(opts.Randoms) > 0)
	if err != nil {
		return nil, err
	}

	r := opts.start("ProjectedCross")
	defer r.close()
	r.log.WithField("theta_edges", len(theta)).Debug("projected angular grid")

	w1, w2, wr := opts.Weights1, opts.Weights2, opts.WeightsRandoms
	s := newSampler(opts, r.log)
	distinct := !pairs.Equal(sample1, sample2)
	var s1, s2 pairs.Points
	if distinct {
		s1 = s.points("sample1", sample1, &z, &w1)
		s2 = s.points("sample2", sample2, &w2)
	} else {
		s1 = s.points("sample1", sample1, &z, &w1, &w2)
		s2 = s1
		if w2 == nil {
			w2 = w1
		}
	}
	rnd := opts.Randoms
	if mode == randoms.Empirical {
		rnd = s.points("randoms", rnd, &wr)
	}

	xyz1, err := spherical.ToCartesian(s1)
	if err != nil {
		return nil, err
	}
	xyz2 := xyz1
	if distinct {
		if xyz2, err = spherical.ToCartesian(s2); err != nil {
			return nil, err
		}
	}
	chords := spherical.ChordBins(theta)

	r.log.Debug("counting data pairs")
	cum, err := r.red.SpecificWeightedCount(r.counter, xyz1, xyz2, chords, nil, w1, w2)
	if err != nil {
		return nil, err
	}
	dd := pairs.DiffRows(cum)

	r.log.WithField("mode", mode.String()).Debug("counting random pairs")
	var dr [][]float64
	f := estimator.Unit
	if mode == randoms.Analytic {
		dr = expectedNeighbours(w1, len(s1), totalWeight(w2, len(s2)), chords)
	} else {
		xyzR, err := spherical.ToCartesian(rnd)
		if err != nil {
			return nil, err
		}
		cum, err := r.red.SpecificWeightedCount(r.counter, xyz1, xyzR, chords, nil, w1, wr)
		if err != nil {
			return nil, err
		}
		dr = pairs.DiffRows(cum)
		f = estimator.CountFactors(e, float64(len(s1)), float64(len(s2)), float64(len(rnd)), float64(len(rnd)))
	}

	projDD, err := spherical.Rebin(dd, theta, rbins, z, c)
	if err != nil {
		return nil, err
	}
	projDR, err := spherical.Rebin(dr, theta, rbins, z, c)
	if err != nil {
		return nil, err
	}

	return estimator.Evaluate(e, projDD, projDR, nil, f)
}

// expectedNeighbours returns, per sample1 object, the full-sky expected
// weighted neighbour count in every chord shell.
func expectedNeighbours(w1 []float64, n1 int, sumW2 float64, chords []float64) [][]float64 {
	shells := randoms.FullSky().Shells(chords)
	floats.Scale(sumW2/(4*math.Pi), shells)

	out := make([][]float64, n1)
	for j := range out {
		row := make([]float64, len(shells))
		floats.AddScaled(row, weightOf(w1, j), shells)
		out[j] = row
	}

	return out
}

func weightOf(w []float64, i int) float64 {
	if w == nil {
		return 1
	}

	return w[i]
}

func totalWeight(w []float64, n int) float64 {
	if w == nil {
		return float64(n)
	}

	return floats.Sum(w)
}

func checkAligned(n, got int, what string) error {
	if n != got {
		return fmt.Errorf("%d %s for %d points: %w", got, what, n, ErrLengthMismatch)
	}

	return nil
}

func checkWeights(w []float64, n int, sample string) error {
	if w == nil {
		return nil
	}

	return checkAligned(n, len(w), sample+" weights")
}
