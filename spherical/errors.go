package spherical

import "errors"

var (
	// ErrNotAngular indicates points that are not (ra, dec) pairs.
	ErrNotAngular = errors.New("spherical: angular points must have 2 columns")

	// ErrLengthMismatch indicates per-object inputs of differing lengths.
	ErrLengthMismatch = errors.New("spherical: per-object inputs differ in length")

	// ErrBadRedshift indicates a missing, non-positive or non-finite redshift.
	ErrBadRedshift = errors.New("spherical: redshifts must be positive and finite")

	// ErrThetaRange indicates a projected bin that subtends more than 180 degrees.
	ErrThetaRange = errors.New("spherical: angular bin exceeds 180 degrees")
)
