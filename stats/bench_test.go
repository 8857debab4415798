package stats_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/geostat/stats"
)

// benchSample builds a deterministic pseudo-random sample of length n.
func benchSample(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64()
	}

	return xs
}

// BenchmarkMean_1k measures the single-pass mean over 1000 elements.
func BenchmarkMean_1k(b *testing.B) {
	xs := benchSample(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.Mean(xs)
	}
}

// BenchmarkVariance_1k measures the two-pass sample variance.
func BenchmarkVariance_1k(b *testing.B) {
	xs := benchSample(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.Variance(xs, true)
	}
}

// BenchmarkQuantile_1k measures the sort-dominated quantile path,
// including the working-copy allocation.
func BenchmarkQuantile_1k(b *testing.B) {
	xs := benchSample(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.Quantile(xs, 0.95)
	}
}

// BenchmarkDescribe_1k measures the full summary.
func BenchmarkDescribe_1k(b *testing.B) {
	xs := benchSample(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stats.Describe(xs); err != nil {
			b.Fatalf("Describe failed: %v", err)
		}
	}
}
