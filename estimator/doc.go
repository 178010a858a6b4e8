// Package estimator turns DD, DR and RR pair counts into two-point
// correlation function values.
//
// What:
//
//   - Estimator enumerates the five supported formulas: Natural,
//     DavisPeebles, Hewett, Hamilton and LandySzalay.
//   - Requirements reports which of DD/DR/RR a formula consumes, so callers
//     can skip the pair counts it never reads.
//   - Factors carries the sample-size normalisations; ScalarFactors builds
//     them from a single data/random ratio, CountFactors from explicit sizes.
//   - Evaluate is the pure per-bin computation.
//
// Formulas, per bin:
//
//	Natural        DD/(fDD·RR) − 1
//	Davis-Peebles  DD/(fDR·DR) − 1
//	Hewett         DD/(fDD·RR) − DR/(fDR·RR)
//	Hamilton       DD·RR/DR² − 1
//	Landy-Szalay   DD/(fDD·RR) − 2·DR/(fDR·RR) + 1
//
// Degenerate bins:
//
//	A zero RR or DR is not an error. The division is carried out and the bin
//	holds ±Inf or NaN; callers read a non-finite value as "too few pairs".
//
// Errors:
//
//   - ErrUnsupportedEstimator: unknown name or enum value.
//   - ErrMissingCounts:        a count the formula needs is nil.
//   - ErrLengthMismatch:       the supplied counts differ in length.
package estimator
