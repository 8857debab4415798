package stats

import "sort"

// Summary bundles the descriptive statistics of one sample: size, the
// first two moments, and the five-number spread.
type Summary struct {
	N        int     // number of observations
	Sum      float64 // total of all observations
	Mean     float64 // arithmetic mean
	Variance float64 // sample variance (Bessel-corrected)
	StdDev   float64 // sample standard deviation
	Min      float64 // smallest observation
	Q1       float64 // first quartile (type-7)
	Median   float64 // second quartile
	Q3       float64 // third quartile
	Max      float64 // largest observation
	IQR      float64 // Q3 − Q1
}

// Describe computes a Summary of xs in one call.
//
// It requires n ≥ 2 so the sample variance is defined, and returns
// ErrTooFewSamples otherwise. xs is not mutated; the quartiles sort a
// single shared working copy.
func Describe(xs []float64) (Summary, error) {
	if len(xs) < 2 {
		return Summary{}, ErrTooFewSamples
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	s := Summary{
		N:        len(xs),
		Sum:      Sum(xs),
		Mean:     Mean(xs),
		Variance: Variance(xs, true),
		Min:      sorted[0],
		Q1:       quantileSorted(sorted, 0.25),
		Median:   quantileSorted(sorted, 0.50),
		Q3:       quantileSorted(sorted, 0.75),
		Max:      sorted[len(sorted)-1],
	}
	s.StdDev = StdDev(xs, true)
	s.IQR = s.Q3 - s.Q1

	return s, nil
}
