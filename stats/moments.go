package stats

import "math"

// Sum returns the total of all elements of xs. An empty slice sums to 0.
func Sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}

	return total
}

// Mean returns the arithmetic mean of xs.
//
// The caller must supply a non-empty sample; an empty xs yields NaN.
// For any non-empty xs, Mean(xs) lies within [Min(xs), Max(xs)].
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	return Sum(xs) / float64(len(xs))
}

// Min returns the smallest element of xs, or NaN for an empty slice.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

// Max returns the largest element of xs, or NaN for an empty slice.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

// Variance returns the mean squared deviation of xs from its mean.
//
// With sample=true the sum of squares is divided by n−1 instead of n
// (Bessel's correction), compensating for the bias of estimating a
// population variance from a sample; this requires n ≥ 2.
//
// Identity: Variance(xs, true) == Variance(xs, false) * n / (n−1).
//
// Degenerate inputs yield NaN: an empty slice always, and n == 1 when
// sample=true (division by zero in the corrected denominator).
func Variance(xs []float64, sample bool) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	m := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}

	if sample {
		return ss / float64(len(xs)-1)
	}

	return ss / float64(len(xs))
}

// StdDev returns the square root of Variance(xs, sample), in the same
// units as the observations. The sample flag and degenerate-input
// behavior follow Variance.
func StdDev(xs []float64, sample bool) float64 {
	return math.Sqrt(Variance(xs, sample))
}
