package estimator

import "errors"

var (
	// ErrUnsupportedEstimator indicates a name or value outside the five formulas.
	ErrUnsupportedEstimator = errors.New("estimator: unsupported estimator")

	// ErrMissingCounts indicates that a count required by the formula is nil.
	ErrMissingCounts = errors.New("estimator: required pair counts missing")

	// ErrLengthMismatch indicates DD, DR and RR of different lengths.
	ErrLengthMismatch = errors.New("estimator: pair counts differ in length")
)
