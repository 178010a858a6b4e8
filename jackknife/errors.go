package jackknife

import "errors"

var (
	// ErrGridShape indicates subvolume divisions or box lengths that do not
	// match the dimensionality, or are not positive.
	ErrGridShape = errors.New("jackknife: subvolume grid shape mismatch")

	// ErrRowCount indicates a count table without one row per subvolume plus the full row.
	ErrRowCount = errors.New("jackknife: row count does not match subvolume count")

	// ErrLengthMismatch indicates leave-one-out rows of differing bin counts.
	ErrLengthMismatch = errors.New("jackknife: rows differ in length")
)
