// Package stats: sentinel error set.
// Numeric degeneracies (empty input, zero variance) propagate as NaN per
// the package contract; sentinels exist only where an operation returns
// a composite result that cannot carry a meaningful NaN.

package stats

import "errors"

// ErrTooFewSamples is returned by Describe when the sample holds fewer
// than two observations, the minimum for its sample variance.
// Tests and callers match it via errors.Is.
var ErrTooFewSamples = errors.New("stats: need at least two observations")
