package pairs

import "errors"

// Sentinel errors for pair counting. Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context helps; callers match with errors.Is.
var (
	// ErrDimensionMismatch indicates point sets (or a period) of different dimensionality.
	ErrDimensionMismatch = errors.New("pairs: dimension mismatch")

	// ErrBadBins indicates empty, negative, NaN or non-increasing bin edges.
	ErrBadBins = errors.New("pairs: bin edges must be non-negative and strictly increasing")

	// ErrMixedPeriod indicates a period with both finite and infinite axes.
	ErrMixedPeriod = errors.New("pairs: period must be finite on all axes or infinite on all axes")

	// ErrBadPeriod indicates a non-positive or NaN box length.
	ErrBadPeriod = errors.New("pairs: period lengths must be positive")

	// ErrBinsExceedHalfBox indicates max(edges) > min(period)/2.
	ErrBinsExceedHalfBox = errors.New("pairs: bin edges exceed half the periodic box")

	// ErrBadLabel indicates a jackknife label outside 1..nLabels.
	ErrBadLabel = errors.New("pairs: subvolume label out of range")

	// ErrLengthMismatch indicates labels or weights not aligned with points.
	ErrLengthMismatch = errors.New("pairs: length mismatch")

	// ErrUnknownBackend indicates an unregistered counter backend name.
	ErrUnknownBackend = errors.New("pairs: unknown backend")
)
