// Package jackknife estimates per-bin errors of a correlation function by
// leaving one spatial subvolume out at a time.
//
// What:
//
//   - Grid tiles a box of size Lbox with Nsub divisions per axis and labels
//     points 1..Total by the cell they fall in; 0 is reserved for "full sample".
//   - Rows splits a labelled pair-count table into its full row and the
//     Total leave-one-out rows.
//   - Evaluate runs an estimator on the full row and on every leave-one-out row.
//   - Errors combines the leave-one-out estimates into standard errors:
//
//	err = sqrt((n−1)/n · Σ_L (ξ_L − ξ_full)²)
//
// The error depends only on the set of leave-one-out estimates, never on the
// order in which subvolumes were labelled.
//
// Labelling:
//
//	label = 1 + Σ_d clamp(floor(x_d/(Lbox_d/Nsub_d)), 0, Nsub_d−1) · Π_{e<d} Nsub_e
//
// Points on or beyond the far face land in the last cell along that axis.
//
// Errors:
//
//   - ErrGridShape:       Nsub or Lbox length is neither 1 nor k, or a value is non-positive.
//   - ErrRowCount:        a table does not hold Total+1 rows.
//   - ErrLengthMismatch:  rows of differing bin counts.
package jackknife
