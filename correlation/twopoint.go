package correlation

import (
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/katalvlaran/twopoint/randoms"
)

// TwoPoint estimates the spatial two-point correlation function of sample1,
// or of sample1 and sample2, in the bins delimited by rbins.
//
// With opts.Period set and no opts.Randoms, DR and RR are computed
// analytically from the box volume; otherwise they are counted against
// opts.Randoms. A non-periodic call without randoms fails with ErrNoRandoms.
//
// Complexity: dominated by the pair counter, roughly O(N log N + pairs) per
// counted combination with the k-d tree backend.
func TwoPoint(sample1 pairs.Points, rbins []float64, sample2 pairs.Points, opts Options) (Result, error) {
	k, err := checkSamples(opts.Estimator, sample1, sample2, opts.Randoms)
	if err != nil {
		return Result{}, err
	}
	period, err := opts.Period.Resolve(k)
	if err != nil {
		return Result{}, err
	}
	if err = pairs.ValidateBins(rbins); err != nil {
		return Result{}, err
	}
	if err = pairs.CheckHalfBox(rbins, period); err != nil {
		return Result{}, err
	}
	mode, err := randoms.SelectMode(period != nil, len(opts.Randoms) > 0)
	if err != nil {
		return Result{}, err
	}

	r := opts.start("TwoPoint")
	defer r.close()

	auto := isAuto(sample1, sample2)
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

	t := tally{mode: mode, auto: auto, scalar: true, n1: float64(len(s1)), n2: float64(len(s2)), nr: float64(len(rnd))}

	r.log.Debug("counting data pairs")
	if t.d1d1, err = r.count(s1, s1, rbins, period); err != nil {
		return Result{}, err
	}
	if !auto {
		if t.d1d2, err = r.count(s1, s2, rbins, period); err != nil {
			return Result{}, err
		}
		if t.d2d2, err = r.count(s2, s2, rbins, period); err != nil {
			return Result{}, err
		}
	}

	r.log.WithField("mode", mode.String()).Debug("counting random pairs")
	if mode == randoms.Analytic {
		t.rc = randoms.AnalyticCounts(randoms.Box(period), rbins, t.n1, t.n2, auto)
	} else {
		smp := randoms.Samples{Data1: s1, Randoms: rnd}
		if !auto {
			smp.Data2 = s2
		}
		if t.rc, err = randoms.EmpiricalCounts(r.red, r.counter, smp, rbins, period, opts.Estimator.Requirements()); err != nil {
			return Result{}, err
		}
	}

	return t.result(opts, auto, true, true)
}

// result evaluates the requested terms of t.
func (t tally) result(opts Options, auto, doAuto, doCross bool) (Result, error) {
	e := opts.Estimator
	res := Result{Auto: auto}
	var err error
	if auto || doAuto {
		if res.XI11, err = t.xi11(e); err != nil {
			return Result{}, err
		}
	}
	if auto {
		return res, nil
	}
	if doCross {
		if res.XI12, err = t.xi12(e); err != nil {
			return Result{}, err
		}
	}
	if doAuto {
		if res.XI22, err = t.xi22(e); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}
