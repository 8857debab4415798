// Package stats provides descriptive statistics over plain float64
// slices: moments, dispersion, relationship measures, and order
// statistics.
//
// 🚀 What is stats?
//
//	Pure functions from sample to number:
//	  • Sum, Mean, Min, Max
//	  • Variance & StdDev with optional Bessel correction
//	  • SampleCovariance, SampleCorrelation, ZScore
//	  • Percentile (mid-rank), Quantile (type-7 linear interpolation)
//	  • Quartile25/50/75, Median, InterQuartileRange
//	  • Describe — a five-number-plus-moments Summary in one call
//
// ⚙️ Contracts:
//
//   - Inputs are never mutated; Quantile and friends sort a working copy.
//   - Degenerate inputs (empty slice, n < 2 for sample statistics,
//     zero variance for correlation) yield NaN or ±Inf. The violation
//     propagates loudly through downstream arithmetic instead of being
//     papered over; callers validate sample size up front.
//   - Non-finite observations (NaN/±Inf) likewise propagate: a sample
//     containing them is a contract violation, not a supported input.
//
// Conventions, chosen once and used everywhere:
//
//   - Quantile estimation is "type 7": sort ascending, take the value at
//     fractional position (n−1)·q, linearly interpolating between the
//     two bracketing elements.
//   - Percentile is mid-rank: strictly smaller elements count 1, exact
//     ties count 0.5, scaled to [0, 100].
//
// Complexity: all moment and relationship functions are O(n); order
// statistics are O(n log n) due to the sorted working copy.
package stats
