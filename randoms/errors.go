package randoms

import "errors"

// ErrNoRandoms indicates a non-periodic domain without a random catalog:
// there is nothing to normalise the data counts against.
var ErrNoRandoms = errors.New("randoms: non-periodic domain requires a random catalog")
