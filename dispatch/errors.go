package dispatch

import "errors"

var (
	// ErrPoolClosed indicates work submitted to a released Pool.
	ErrPoolClosed = errors.New("dispatch: pool is closed")

	// ErrRankFailed indicates that at least one rank of a Group failed
	// before contributing to a reduction.
	ErrRankFailed = errors.New("dispatch: a rank failed during reduction")

	// ErrReduceShape indicates partial results of differing lengths.
	ErrReduceShape = errors.New("dispatch: partial results differ in shape")
)
