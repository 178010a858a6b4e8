package estimator

import "fmt"

// Factors normalises pair counts taken on samples of different sizes.
// DD scales the DD/RR ratio and DR scales every ratio involving DR.
// Hamilton is scale free and ignores both.
type Factors struct {
	DD, DR float64
}

// Unit leaves counts unscaled; it is what analytic randoms use.
var Unit = Factors{DD: 1, DR: 1}

// ScalarFactors builds factors from one data/random size ratio f,
// e.g. N/NR for an auto-correlation or √(N1·N2)/NR for a cross.
func ScalarFactors(f float64) Factors {
	return Factors{DD: f * f, DR: f}
}

// CountFactors builds factors from explicit sample sizes: nd1 and nd2 data
// points against nr1 and nr2 random points.
//
//	fDD = nd1·nd2/(nr1·nr2)
//	fDR = nd2/nr2 for Davis-Peebles, nd1/nr1 otherwise
func CountFactors(e Estimator, nd1, nd2, nr1, nr2 float64) Factors {
	f := Factors{DD: nd1 * nd2 / (nr1 * nr2)}
	if e == DavisPeebles {
		f.DR = nd2 / nr2
	} else {
		f.DR = nd1 / nr1
	}

	return f
}

// Evaluate applies e bin by bin to per-bin counts dd, dr and rr.
// Counts that e does not read may be nil. The result has the length of dd;
// bins with zero denominators are left as ±Inf or NaN.
func Evaluate(e Estimator, dd, dr, rr []float64, f Factors) ([]float64, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%v: %w", e, ErrUnsupportedEstimator)
	}
	req := e.Requirements()
	if err := check("DD", dd, true, len(dd)); err != nil {
		return nil, err
	}
	if err := check("DR", dr, req.DR, len(dd)); err != nil {
		return nil, err
	}
	if err := check("RR", rr, req.RR, len(dd)); err != nil {
		return nil, err
	}

	xi := make([]float64, len(dd))
	for i := range xi {
		switch e {
		case Natural:
			xi[i] = dd[i]/(f.DD*rr[i]) - 1
		case DavisPeebles:
			xi[i] = dd[i]/(f.DR*dr[i]) - 1
		case Hewett:
			xi[i] = dd[i]/(f.DD*rr[i]) - dr[i]/(f.DR*rr[i])
		case Hamilton:
			xi[i] = dd[i]*rr[i]/(dr[i]*dr[i]) - 1
		case LandySzalay:
			xi[i] = dd[i]/(f.DD*rr[i]) - 2*dr[i]/(f.DR*rr[i]) + 1
		}
	}

	return xi, nil
}

func check(name string, counts []float64, required bool, n int) error {
	if counts == nil {
		if required {
			return fmt.Errorf("%s: %w", name, ErrMissingCounts)
		}
		return nil
	}
	if len(counts) != n {
		return fmt.Errorf("%s has %d bins, DD has %d: %w", name, len(counts), n, ErrLengthMismatch)
	}

	return nil
}
