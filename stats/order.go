package stats

import (
	"math"
	"sort"
)

// Percentile returns the mid-rank percentile of v within xs: the
// fraction of elements strictly less than v, plus half credit for each
// element exactly equal to v, scaled to [0, 100].
//
// Ties are split rather than rounded up or down, so
// Percentile([1,2,3,4,5], 3) == 50. An empty xs yields NaN.
func Percentile(xs []float64, v float64) float64 {
	var below, equal float64
	for _, x := range xs {
		switch {
		case x < v:
			below++
		case x == v:
			equal++
		}
	}

	return (below + 0.5*equal) / float64(len(xs)) * 100
}

// Quantile returns the q-th quantile of xs for q in [0, 1] using linear
// interpolation between order statistics (type 7 in the common
// statistical nomenclature, the default of R and NumPy).
//
// The sample is sorted ascending into a working copy — the caller's
// slice is never reordered — and the value at fractional position
// (n−1)·q is taken: the element itself when the position is integral,
// otherwise the linear interpolation between the two bracketing
// elements.
//
// Quantile(xs, 0.5) equals the standard median: the middle element for
// odd n, the average of the two middle elements for even n.
//
// An empty xs or q outside [0, 1] yields NaN.
func Quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 || q < 0 || q > 1 {
		return math.NaN()
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return quantileSorted(sorted, q)
}

// quantileSorted evaluates the type-7 quantile on an already
// ascending-sorted, non-empty sample with q in [0, 1].
func quantileSorted(sorted []float64, q float64) float64 {
	pos := float64(len(sorted)-1) * q
	lo := int(math.Floor(pos))
	if pos == float64(lo) {
		return sorted[lo]
	}

	return sorted[lo] + (sorted[lo+1]-sorted[lo])*(pos-float64(lo))
}

// Quartile25 returns the first quartile, Quantile(xs, 0.25).
func Quartile25(xs []float64) float64 { return Quantile(xs, 0.25) }

// Quartile50 returns the second quartile (the median), Quantile(xs, 0.50).
func Quartile50(xs []float64) float64 { return Quantile(xs, 0.50) }

// Quartile75 returns the third quartile, Quantile(xs, 0.75).
func Quartile75(xs []float64) float64 { return Quantile(xs, 0.75) }

// Median is an alias for Quartile50.
func Median(xs []float64) float64 { return Quartile50(xs) }

// InterQuartileRange returns Q3 − Q1, the spread of the central half of
// the sample.
func InterQuartileRange(xs []float64) float64 {
	return Quartile75(xs) - Quartile25(xs)
}
