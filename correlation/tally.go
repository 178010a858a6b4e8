package correlation

import (
	"fmt"

	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/katalvlaran/twopoint/randoms"
)

// Result holds correlation function values, one per bin. For an
// auto-correlation only XI11 is set. Fields not computed are nil.
type Result struct {
	Auto bool
	XI11 []float64
	XI12 []float64
	XI22 []float64
}

// JackknifeResult adds per-bin jackknife standard errors to Result.
type JackknifeResult struct {
	Result
	Err11 []float64
	Err12 []float64
	Err22 []float64
}

// isAuto reports whether sample2 aliases sample1.
func isAuto(sample1, sample2 pairs.Points) bool {
	return sample2 == nil || pairs.Equal(sample1, sample2)
}

// checkSamples validates the estimator and that sample1, sample2 and randoms
// share one dimensionality, which it returns.
func checkSamples(e estimator.Estimator, sample1, sample2, rnd pairs.Points) (int, error) {
	if !e.Valid() {
		return 0, fmt.Errorf("%v: %w", e, estimator.ErrUnsupportedEstimator)
	}
	if len(sample1) == 0 {
		return 0, ErrEmptySample
	}
	k, err := sample1.Dim()
	if err != nil {
		return 0, err
	}
	others := []struct {
		name string
		p    pairs.Points
	}{{"sample2", sample2}, {"randoms", rnd}}
	for _, o := range others {
		if len(o.p) == 0 {
			continue
		}
		kp, err := o.p.Dim()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", o.name, err)
		}
		if kp != k {
			return 0, fmt.Errorf("%s has %d columns, sample1 has %d: %w", o.name, kp, k, pairs.ErrDimensionMismatch)
		}
	}

	return k, nil
}

// tally holds the per-bin counts of one call and knows how to normalise them.
type tally struct {
	d1d1, d1d2, d2d2 []float64
	rc               randoms.Counts
	mode             randoms.Mode
	auto             bool
	n1, n2, nr       float64
	// scalar normalises auto terms by the single ratio n/nr.
	scalar bool
}

func (t tally) self(e estimator.Estimator, n float64) estimator.Factors {
	if t.scalar {
		return estimator.ScalarFactors(n / t.nr)
	}

	return estimator.CountFactors(e, n, n, t.nr, t.nr)
}

// xi11 is the sample1 auto-correlation. Analytic randoms make the expected
// count the only denominator, for DR and RR alike.
func (t tally) xi11(e estimator.Estimator) ([]float64, error) {
	if t.mode == randoms.Analytic {
		rr := t.rc.D1R
		if t.auto {
			rr = t.rc.RR
		}
		return estimator.Evaluate(e, t.d1d1, t.rc.D1R, rr, estimator.Unit)
	}

	return estimator.Evaluate(e, t.d1d1, t.rc.D1R, t.rc.RR, t.self(e, t.n1))
}

// xi12 is the cross-correlation.
func (t tally) xi12(e estimator.Estimator) ([]float64, error) {
	if t.mode == randoms.Analytic {
		return estimator.Evaluate(e, t.d1d2, t.rc.RR, t.rc.RR, estimator.Unit)
	}

	return estimator.Evaluate(e, t.d1d2, t.rc.D1R, t.rc.RR, estimator.CountFactors(e, t.n1, t.n2, t.nr, t.nr))
}

// xi22 is the sample2 auto-correlation.
func (t tally) xi22(e estimator.Estimator) ([]float64, error) {
	if t.mode == randoms.Analytic {
		return estimator.Evaluate(e, t.d2d2, t.rc.D2R, t.rc.D2R, estimator.Unit)
	}

	return estimator.Evaluate(e, t.d2d2, t.rc.D2R, t.rc.RR, t.self(e, t.n2))
}
