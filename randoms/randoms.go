package randoms

import (
	"math"

	"github.com/katalvlaran/twopoint/dispatch"
	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/pairs"
)

// Mode selects how random pair counts are obtained.
type Mode int

const (
	// Analytic derives counts from shell volumes; needs a periodic or full-sky domain.
	Analytic Mode = iota
	// Empirical counts pairs against an explicit random catalog.
	Empirical
)

func (m Mode) String() string {
	if m == Analytic {
		return "analytic"
	}

	return "empirical"
}

// SelectMode returns Analytic for a periodic domain without randoms and
// Empirical whenever a catalog is supplied. A non-periodic domain without
// randoms yields ErrNoRandoms.
func SelectMode(periodic, haveRandoms bool) (Mode, error) {
	switch {
	case haveRandoms:
		return Empirical, nil
	case periodic:
		return Analytic, nil
	default:
		return 0, ErrNoRandoms
	}
}

// Counts holds per-bin random pair counts. A nil field was not computed.
type Counts struct {
	D1R, D2R, RR []float64
}

// BallVolume is the volume of a k-ball of radius r: π^{k/2}/Γ(k/2+1)·r^k.
func BallVolume(r float64, k int) float64 {
	h := float64(k) / 2

	return math.Pow(math.Pi, h) / math.Gamma(h+1) * math.Pow(r, float64(k))
}

// CapArea is the solid angle of a spherical cap on the unit sphere whose
// rim lies at the given chord length from its pole: 2π(1 − cos θ),
// θ = 2·asin(chord/2).
func CapArea(chord float64) float64 {
	theta := 2 * math.Asin(chord/2)

	return 2 * math.Pi * (1 - math.Cos(theta))
}

// Domain is the space analytic randoms fill uniformly.
type Domain struct {
	// Measure maps a bin edge to the enclosed volume (or solid angle).
	Measure func(edge float64) float64
	// Volume is the size of the whole domain.
	Volume float64
}

// Box is a k-dimensional periodic box; period must already be resolved.
func Box(period pairs.Period) Domain {
	k := len(period)

	return Domain{
		Measure: func(r float64) float64 { return BallVolume(r, k) },
		Volume:  period.Volume(),
	}
}

// FullSky is the unit sphere; edges are chord lengths.
func FullSky() Domain {
	return Domain{Measure: CapArea, Volume: 4 * math.Pi}
}

// Shells returns the measure of each bin shell, one entry fewer than edges.
func (d Domain) Shells(edges []float64) []float64 {
	enclosed := make([]float64, len(edges))
	for i, e := range edges {
		enclosed[i] = d.Measure(e)
	}

	return pairs.Diff(enclosed)
}

// AnalyticCounts returns expected per-bin counts for n1 (and, for a cross,
// n2) points filling d. For an auto-correlation RR holds exactly the D1R
// values and D2R is nil.
func AnalyticCounts(d Domain, edges []float64, n1, n2 float64, auto bool) Counts {
	dv := d.Shells(edges)
	rho1 := n1 / d.Volume

	d1r := make([]float64, len(dv))
	for i, v := range dv {
		d1r[i] = n1 * (v * rho1)
	}
	if auto {
		return Counts{D1R: d1r, RR: append([]float64{}, d1r...)}
	}

	rho2 := n2 / d.Volume
	rhoR := n1 * n2 / d.Volume
	d2r := make([]float64, len(dv))
	rr := make([]float64, len(dv))
	for i, v := range dv {
		d2r[i] = n2 * (v * rho2)
		rr[i] = v * rhoR
	}

	return Counts{D1R: d1r, D2R: d2r, RR: rr}
}

// Samples names the point sets an empirical count runs over. A nil Data2
// means there is no second sample and D2R is not counted.
type Samples struct {
	Data1, Data2, Randoms pairs.Points
}

// EmpiricalCounts counts D1R, D2R and RR against s.Randoms through red,
// skipping DR or RR when need says the estimator never reads them.
func EmpiricalCounts(red dispatch.Reducer, c pairs.Counter, s Samples, edges []float64,
	period pairs.Period, need estimator.Requirements) (Counts, error) {
	var (
		out Counts
		err error
	)
	count := func(a, b pairs.Points) ([]float64, error) {
		cum, err := red.Count(c, a, b, edges, period)
		if err != nil {
			return nil, err
		}
		return pairs.Diff(cum), nil
	}

	if need.RR {
		if out.RR, err = count(s.Randoms, s.Randoms); err != nil {
			return Counts{}, err
		}
	}
	if need.DR {
		if out.D1R, err = count(s.Data1, s.Randoms); err != nil {
			return Counts{}, err
		}
		if s.Data2 != nil {
			if out.D2R, err = count(s.Data2, s.Randoms); err != nil {
				return Counts{}, err
			}
		}
	}

	return out, nil
}
