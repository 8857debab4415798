package dist_test

import (
	"testing"

	"github.com/katalvlaran/geostat/dist"
)

// BenchmarkZScoreToPValue_Center measures the series near zero, where
// it converges in a handful of terms.
func BenchmarkZScoreToPValue_Center(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = dist.ZScoreToPValue(0.5)
	}
}

// BenchmarkZScoreToPValue_Tail measures the series near the clamp,
// where the term count peaks.
func BenchmarkZScoreToPValue_Tail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = dist.ZScoreToPValue(6.0)
	}
}

// BenchmarkPValueToZScore measures the rational approximation, one
// branch per iteration pair.
func BenchmarkPValueToZScore(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = dist.PValueToZScore(0.7)
		_ = dist.PValueToZScore(0.97)
	}
}
