package correlation

import (
	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/jackknife"
	"github.com/katalvlaran/twopoint/pairs"
)

// TwoPointJackknife is TwoPoint with jackknife errors. The box described by
// opts.Box (or opts.Period when Box is nil) is cut into opts.Subvolumes
// divisions per axis; every data and random point is labelled by the
// subvolume it falls in, each count is taken once with all labels, and the
// estimator is re-evaluated with each subvolume left out.
//
// A random catalog is always required: leaving a subvolume out must also
// remove its randoms, which analytic expectations cannot do.
func TwoPointJackknife(sample1, rnd pairs.Points, rbins []float64, sample2 pairs.Points, opts Options) (JackknifeResult, error) {
	k, err := checkSamples(opts.Estimator, sample1, sample2, rnd)
	if err != nil {
		return JackknifeResult{}, err
	}
	period, err := opts.Period.Resolve(k)
	if err != nil {
		return JackknifeResult{}, err
	}
	if err = pairs.ValidateBins(rbins); err != nil {
		return JackknifeResult{}, err
	}
	if err = pairs.CheckHalfBox(rbins, period); err != nil {
		return JackknifeResult{}, err
	}
	if len(rnd) == 0 {
		return JackknifeResult{}, ErrNoRandoms
	}
	box := opts.Box
	if box == nil {
		box = period
	}
	grid, err := jackknife.NewGrid(opts.Subvolumes, box, k)
	if err != nil {
		return JackknifeResult{}, err
	}

	r := opts.start("TwoPointJackknife")
	defer r.close()

	auto := isAuto(sample1, sample2)
	s := newSampler(opts, r.log)
	s1 := s.points("sample1", sample1)
	s2 := s1
	if !auto {
		s2 = s.points("sample2", sample2)
	}
	rnd = s.points("randoms", rnd)

	l1, err := grid.Labels(s1)
	if err != nil {
		return JackknifeResult{}, err
	}
	l2 := l1
	if !auto {
		if l2, err = grid.Labels(s2); err != nil {
			return JackknifeResult{}, err
		}
	}
	lr, err := grid.Labels(rnd)
	if err != nil {
		return JackknifeResult{}, err
	}
	total := grid.Total()
	r.log.WithField("subvolumes", total).Debug("labelled subvolumes")

	var d1d1, d1d2, d2d2, d1r, d2r, rr [][]float64
	r.log.Debug("counting data pairs")
	if d1d1, err = r.jackknifeCount(s1, s1, rbins, period, l1, l1, total); err != nil {
		return JackknifeResult{}, err
	}
	if !auto {
		if d1d2, err = r.jackknifeCount(s1, s2, rbins, period, l1, l2, total); err != nil {
			return JackknifeResult{}, err
		}
		if d2d2, err = r.jackknifeCount(s2, s2, rbins, period, l2, l2, total); err != nil {
			return JackknifeResult{}, err
		}
	}

	r.log.Debug("counting random pairs")
	need := opts.Estimator.Requirements()
	if need.RR {
		if rr, err = r.jackknifeCount(rnd, rnd, rbins, period, lr, lr, total); err != nil {
			return JackknifeResult{}, err
		}
	}
	if need.DR {
		if d1r, err = r.jackknifeCount(s1, rnd, rbins, period, l1, lr, total); err != nil {
			return JackknifeResult{}, err
		}
		if !auto {
			if d2r, err = r.jackknifeCount(s2, rnd, rbins, period, l2, lr, total); err != nil {
				return JackknifeResult{}, err
			}
		}
	}

	e := opts.Estimator
	n1, n2, nr := float64(len(s1)), float64(len(s2)), float64(len(rnd))
	out := JackknifeResult{Result: Result{Auto: auto}}
	if out.XI11, out.Err11, err = jackknifeTerm(e, d1d1, d1r, rr, estimator.ScalarFactors(n1/nr), total); err != nil {
		return JackknifeResult{}, err
	}
	if auto {
		return out, nil
	}
	if out.XI12, out.Err12, err = jackknifeTerm(e, d1d2, d1r, rr, estimator.CountFactors(e, n1, n2, nr, nr), total); err != nil {
		return JackknifeResult{}, err
	}
	if out.XI22, out.Err22, err = jackknifeTerm(e, d2d2, d2r, rr, estimator.ScalarFactors(n2/nr), total); err != nil {
		return JackknifeResult{}, err
	}

	return out, nil
}

// jackknifeTerm evaluates one correlation term on labelled count tables and
// returns the full-sample values with their errors.
func jackknifeTerm(e estimator.Estimator, dd, dr, rr [][]float64, f estimator.Factors, total int) ([]float64, []float64, error) {
	if _, _, err := jackknife.Rows(dd, total); err != nil {
		return nil, nil, err
	}
	full, sub, err := jackknife.Evaluate(e, dd, dr, rr, f)
	if err != nil {
		return nil, nil, err
	}
	errs, err := jackknife.Errors(sub, full)
	if err != nil {
		return nil, nil, err
	}

	return full, errs, nil
}
