// Package pairs counts pairs of points whose separation falls within a set of
// bin edges. It is the substrate every correlation estimator in this module
// runs on.
//
// What:
//
//   - Counter is the strategy interface: plain cumulative counts, jackknife
//     counts stratified by subvolume label, and per-object weighted counts.
//   - KDTree answers each query with a gonum k-d tree range search.
//   - BruteForce compares every pair; it is the reference implementation.
//   - Points, Period and bin-edge validation shared by the whole module.
//
// Conventions:
//
//   - Counts are cumulative: entry i holds the number of pairs with
//     separation ≤ edges[i]. Use Diff to obtain per-bin counts.
//   - Every ordered pair is counted, self pairs included. Estimators rely on
//     the same convention on both numerator and denominator sides.
//   - Separations are compared squared against squared edges, so all
//     backends return bit-identical results.
//   - Under a Period, separations follow the minimum-image convention.
//
// Complexity:
//
//   - BruteForce: O(N·M) distance evaluations.
//   - KDTree:     O(M log M) build + O(N·(log M + m)) queries, m = neighbours
//     within the largest edge.
//
// Errors:
//
//   - ErrDimensionMismatch: point sets (or period) of differing dimensionality.
//   - ErrBadBins:           edges empty, negative or not strictly increasing.
//   - ErrMixedPeriod:       some axes periodic, others infinite.
//   - ErrBadPeriod:         non-positive or NaN box length.
//   - ErrBinsExceedHalfBox: max edge larger than half the smallest box length.
//   - ErrBadLabel:          jackknife label outside 1..nLabels.
//   - ErrLengthMismatch:    labels or weights not aligned with their points.
//   - ErrUnknownBackend:    New called with an unregistered backend name.
package pairs
