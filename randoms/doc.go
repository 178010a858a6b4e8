// Package randoms supplies the DR and RR denominators of a correlation
// estimator.
//
// Two modes are available and SelectMode picks between them:
//
//   - Analytic: a periodic box (or the full sky) is uniformly filled, so the
//     expected counts follow from the shell volume of each bin, the domain
//     volume and the sample sizes. No random catalog is materialised.
//   - Empirical: DR and RR are counted against an explicit random catalog
//     through a dispatch.Reducer.
//
// Analytic expectations for samples of n1 and n2 points in volume V, with
// shell volume ΔV per bin:
//
//	D1R = n1·(n1/V)·ΔV
//	D2R = n2·(n2/V)·ΔV          (cross only)
//	RR  = D1R                   (auto; the same values, exactly)
//	RR  = (n1·n2/V)·ΔV          (cross)
//
// Shell volumes use BallVolume in k dimensions and CapArea on the unit sphere.
package randoms
