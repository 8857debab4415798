package stats_test

import (
	"fmt"

	"github.com/katalvlaran/geostat/stats"
)

// ExampleMean computes the arithmetic mean of a small sample.
func ExampleMean() {
	fmt.Println(stats.Mean([]float64{1, 2, 3, 4}))
	// Output: 2.5
}

// ExampleVariance contrasts the population and Bessel-corrected sample
// denominators on the same observations.
func ExampleVariance() {
	xs := []float64{1, 2, 3, 4, 5}
	fmt.Println(stats.Variance(xs, false))
	fmt.Println(stats.Variance(xs, true))
	// Output:
	// 2
	// 2.5
}

// ExamplePercentile shows the mid-rank convention: ties earn half
// credit.
func ExamplePercentile() {
	fmt.Println(stats.Percentile([]float64{1, 2, 3, 4, 5}, 3))
	// Output: 50
}

// ExampleQuantile interpolates linearly between order statistics
// (type-7 estimation).
func ExampleQuantile() {
	xs := []float64{1, 2, 3, 4}
	fmt.Println(stats.Quantile(xs, 0.5))
	fmt.Println(stats.Quantile(xs, 0.25))
	// Output:
	// 2.5
	// 1.75
}

// ExampleDescribe summarizes a sensor sample in one call.
func ExampleDescribe() {
	s, err := stats.Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("n=%d mean=%.2f stddev=%.2f median=%.1f iqr=%.1f\n",
		s.N, s.Mean, s.StdDev, s.Median, s.IQR)
	// Output: n=8 mean=5.00 stddev=2.14 median=4.5 iqr=1.5
}
