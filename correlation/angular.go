package correlation

import (
	"fmt"

	"github.com/katalvlaran/twopoint/pairs"
	"github.com/katalvlaran/twopoint/randoms"
	"github.com/katalvlaran/twopoint/spherical"
)

// Angular estimates the angular correlation function w(θ) of (ra, dec)
// catalogs in degrees, in the angular bins thetaBins (degrees).
//
// Points are mapped onto the unit sphere and counted by chord length. With
// no opts.Randoms the full sky is assumed to be covered and DR, RR follow
// from spherical cap areas; otherwise they are counted against the randoms.
// For two distinct samples opts.DoAuto selects XI11 and XI22 and
// opts.DoCross selects XI12; an auto-correlation always returns XI11.
func Angular(sample1 pairs.Points, thetaBins []float64, sample2 pairs.Points, opts Options) (Result, error) {
	k, err := checkSamples(opts.Estimator, sample1, sample2, opts.Randoms)
	if err != nil {
		return Result{}, err
	}
	if k != 2 {
		return Result{}, fmt.Errorf("%d columns: %w", k, spherical.ErrNotAngular)
	}
	if err = pairs.ValidateBins(thetaBins); err != nil {
		return Result{}, err
	}
	if last := thetaBins[len(thetaBins)-1]; last > 180 {
		return Result{}, fmt.Errorf("max θ %g deg: %w", last, spherical.ErrThetaRange)
	}
	auto := isAuto(sample1, sample2)
	if !auto && !opts.DoAuto && !opts.DoCross {
		return Result{}, ErrNothingRequested
	}
	mode, err := randoms.SelectMode(true, len(opts.Randoms) > 0)
	if err != nil {
		return Result{}, err
	}

	r := opts.start("Angular")
	defer r.close()

	s := newSampler(opts, r.log)
	s1 := s.points("sample1", sample1)
	s2 := s1
	if !auto {
		s2 = s.points("sample2", sample2)
	}
	rnd := opts.Randoms
	if mode == randoms.Empirical {
		rnd = s.points("randoms", rnd)
	}

	xyz1, err := spherical.ToCartesian(s1)
	if err != nil {
		return Result{}, err
	}
	xyz2 := xyz1
	if !auto {
		if xyz2, err = spherical.ToCartesian(s2); err != nil {
			return Result{}, err
		}
	}
	chords := spherical.ChordBins(thetaBins)

	t := tally{mode: mode, auto: auto, n1: float64(len(s1)), n2: float64(len(s2)), nr: float64(len(rnd))}
	doAuto := auto || opts.DoAuto

	r.log.Debug("counting data pairs")
	if doAuto {
		if t.d1d1, err = r.count(xyz1, xyz1, chords, nil); err != nil {
			return Result{}, err
		}
	}
	if !auto && opts.DoCross {
		if t.d1d2, err = r.count(xyz1, xyz2, chords, nil); err != nil {
			return Result{}, err
		}
	}
	if !auto && opts.DoAuto {
		if t.d2d2, err = r.count(xyz2, xyz2, chords, nil); err != nil {
			return Result{}, err
		}
	}

	r.log.WithField("mode", mode.String()).Debug("counting random pairs")
	if mode == randoms.Analytic {
		t.rc = randoms.AnalyticCounts(randoms.FullSky(), chords, t.n1, t.n2, auto)
	} else {
		xyzR, err := spherical.ToCartesian(rnd)
		if err != nil {
			return Result{}, err
		}
		smp := randoms.Samples{Data1: xyz1, Randoms: xyzR}
		if !auto && opts.DoAuto {
			smp.Data2 = xyz2
		}
		if t.rc, err = randoms.EmpiricalCounts(r.red, r.counter, smp, chords, nil, opts.Estimator.Requirements()); err != nil {
			return Result{}, err
		}
	}

	return t.result(opts, auto, opts.DoAuto, opts.DoCross)
}
