package stats

import "math"

// SampleCovariance returns the sample covariance of the paired
// observations (a[i], b[i]): the mean-centered dot product divided by
// n−1 (Bessel's correction).
//
// Positive values indicate co-movement, negative values inverse
// movement. The magnitude is unbounded and carries the product of both
// variables' units, so it is not comparable across scales — use
// SampleCorrelation for a scale-free measure.
//
// Contract: a and b must have equal length n ≥ 2. Mismatched lengths or
// an empty pair yield NaN; n == 1 yields NaN through the zero
// denominator.
func SampleCovariance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.NaN()
	}

	ma, mb := Mean(a), Mean(b)
	var acc float64
	for i := range a {
		acc += (a[i] - ma) * (b[i] - mb)
	}

	return acc / float64(len(a)-1)
}

// SampleCorrelation returns the Pearson correlation coefficient of the
// paired observations: SampleCovariance(a, b) normalized by both sample
// standard deviations.
//
// The result is bounded in [−1, 1] by the Cauchy–Schwarz inequality for
// non-degenerate inputs. If either sequence has zero variance the
// division yields NaN; the length contract follows SampleCovariance.
func SampleCorrelation(a, b []float64) float64 {
	return SampleCovariance(a, b) / (StdDev(a, true) * StdDev(b, true))
}

// ZScore returns how many standard deviations x lies from the mean:
// (x − mean) / stdDev. A zero stdDev yields ±Inf (or NaN when x equals
// the mean), per the package's loud-degeneracy contract.
func ZScore(x, mean, stdDev float64) float64 {
	return (x - mean) / stdDev
}
