// Package correlation estimates two-point correlation functions of point
// catalogs: spatial (TwoPoint), spatial with jackknife errors
// (TwoPointJackknife), angular (Angular) and projected cross (ProjectedCross).
//
// Every call follows the same pipeline:
//
//  1. Validate the configuration; nothing is counted if it is inconsistent.
//  2. Downsample any catalog larger than Options.MaxSampleSize, once.
//  3. Count data pairs through a worker pool (or a dispatch.Group).
//  4. Obtain DR and RR, analytically for periodic boxes and the full sky,
//     otherwise against Options.Randoms.
//  5. Combine the counts with Options.Estimator.
//
// Auto versus cross:
//
//	When sample2 is nil or holds exactly the coordinates of sample1, the call is
//	an auto-correlation: Result.Auto is set and only XI11 is filled. Otherwise
//	XI11, XI12 and XI22 are returned for the two autos and the cross.
//
// Counts are taken with self pairs and both orderings of every pair, on the
// data and the random side alike. Estimators the counts cannot support (a
// zero RR or DR in some bin) produce ±Inf or NaN in that bin rather than an
// error.
//
// Errors:
//
//   - ErrEmptySample:       sample1 holds no points.
//   - ErrNoRandoms:         no periodic box (or full sky) and no randoms.
//   - ErrEstimatorNeedsRR:  ProjectedCross was asked for an estimator that reads RR.
//   - ErrNothingRequested:  Angular with DoAuto and DoCross both off on a cross.
//   - ErrLengthMismatch:    redshifts or weights not aligned with their points.
//
// Configuration errors of the underlying packages (pairs.ErrDimensionMismatch,
// pairs.ErrBinsExceedHalfBox, estimator.ErrUnsupportedEstimator,
// jackknife.ErrGridShape, spherical.ErrNotAngular, ...) are returned wrapped
// and are also re-exported here for convenience.
package correlation
