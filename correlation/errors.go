package correlation

import (
	"errors"

	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/jackknife"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/katalvlaran/twopoint/randoms"
	"github.com/katalvlaran/twopoint/spherical"
)

var (
	// ErrEmptySample indicates that sample1 has no points.
	ErrEmptySample = errors.New("correlation: sample1 is empty")

	// ErrEstimatorNeedsRR indicates an estimator reading RR in ProjectedCross,
	// which only counts D1D2 and D1R.
	ErrEstimatorNeedsRR = errors.New("correlation: projected cross-correlation cannot supply RR")

	// ErrNothingRequested indicates a cross Angular call with DoAuto and DoCross unset.
	ErrNothingRequested = errors.New("correlation: neither auto nor cross correlation requested")

	// ErrLengthMismatch indicates redshifts or weights that do not line up with their points.
	ErrLengthMismatch = errors.New("correlation: per-point values do not match the sample")
)

// Configuration errors raised underneath, re-exported.
var (
	ErrNoRandoms            = randoms.ErrNoRandoms
	ErrDimensionMismatch    = pairs.ErrDimensionMismatch
	ErrBinsExceedHalfBox    = pairs.ErrBinsExceedHalfBox
	ErrMixedPeriod          = pairs.ErrMixedPeriod
	ErrBadBins              = pairs.ErrBadBins
	ErrUnsupportedEstimator = estimator.ErrUnsupportedEstimator
	ErrGridShape            = jackknife.ErrGridShape
	ErrNotAngular           = spherical.ErrNotAngular
)
