// Package twopoint is a toolkit for measuring how points cluster: pair
// counts and two-point correlation functions of 3-D boxes, open survey
// volumes and the celestial sphere.
//
// What is in the box?
//
//	• Pair counting: k-d tree and brute-force backends, periodic boxes,
//	  jackknife labels and per-object weighted counts
//	• Dispatch: a bounded worker pool and an all-reduce group over
//	  partitions of the first sample
//	• Randoms: analytic expectations for periodic boxes and the full sky,
//	  or empirical counts against a random catalog
//	• Estimators: Natural, Davis-Peebles, Hewett, Hamilton, Landy-Szalay
//	• Jackknife: subvolume labels and leave-one-out standard errors
//	• Projected cross-correlation w(r_p) over a flat ΛCDM cosmology
//
// Layout:
//
//	pairs/        Points, Period, bin validation and the pair Counter backends
//	dispatch/     Split, Pool (errgroup) and Group (all-reduce) reducers
//	estimator/    the five formulas and their count requirements
//	randoms/      analytic and empirical DR/RR
//	jackknife/    subvolume grid, labels, leave-one-out errors
//	spherical/    (ra, dec) to unit vectors, chord and projected bins
//	cosmo/        comoving distances
//	correlation/  TwoPoint, TwoPointJackknife, Angular, ProjectedCross
//	metrics/      Prometheus counters for counting and downsampling
//	cmd/twopoint  command line front end over text catalogs
//
// Quick start:
//
//	opts := correlation.DefaultOptions()
//	opts.Period = pairs.Period{250}
//	res, err := correlation.TwoPoint(galaxies, []float64{1, 2, 5, 10, 20}, nil, opts)
//
//	go install github.com/katalvlaran/twopoint/cmd/twopoint@latest
package twopoint
