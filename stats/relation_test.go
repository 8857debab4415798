package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/geostat/stats"
)

// TestSampleCovariance_Fixture checks a hand-computed pair with exact
// binary values.
func TestSampleCovariance_Fixture(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 5, 4, 5}

	assert.Equal(t, 1.5, stats.SampleCovariance(a, b))
}

// TestSampleCovariance_Properties verifies sign semantics: co-movement
// positive, inverse movement negative, self-covariance equals sample
// variance.
func TestSampleCovariance_Properties(t *testing.T) {
	up := []float64{1, 2, 3, 4}
	down := []float64{4, 3, 2, 1}

	assert.Positive(t, stats.SampleCovariance(up, up))
	assert.Negative(t, stats.SampleCovariance(up, down))
	assert.InDelta(t, stats.Variance(up, true), stats.SampleCovariance(up, up), 1e-12)
}

// TestSampleCovariance_Contract verifies the NaN contract for
// mismatched lengths and too-small samples.
func TestSampleCovariance_Contract(t *testing.T) {
	assert.True(t, math.IsNaN(stats.SampleCovariance([]float64{1, 2}, []float64{1})), "length mismatch")
	assert.True(t, math.IsNaN(stats.SampleCovariance(nil, nil)), "empty pair")
	assert.True(t, math.IsNaN(stats.SampleCovariance([]float64{1}, []float64{1})), "n=1")
}

// TestSampleCorrelation_Fixture pins the Pearson coefficient of the
// covariance fixture and checks the [-1, 1] bound on perfect lines.
func TestSampleCorrelation_Fixture(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 5, 4, 5}

	assert.InDelta(t, 0.7745966692414834, stats.SampleCorrelation(a, b), 1e-12)

	perfect := []float64{2, 4, 6, 8}
	assert.InDelta(t, 1.0, stats.SampleCorrelation([]float64{1, 2, 3, 4}, perfect), 1e-12)
	assert.InDelta(t, -1.0, stats.SampleCorrelation([]float64{4, 3, 2, 1}, perfect), 1e-12)
}

// TestSampleCorrelation_MatchesGonum cross-checks against the gonum
// reference on a non-trivial pair.
func TestSampleCorrelation_MatchesGonum(t *testing.T) {
	a := []float64{0.2, 1.7, 3.1, 2.2, 5.9, 4.0}
	b := []float64{1.1, 2.3, 2.0, 4.8, 5.1, 3.3}

	assert.InDelta(t, stat.Correlation(a, b, nil), stats.SampleCorrelation(a, b), 1e-12)
	assert.InDelta(t, stat.Covariance(a, b, nil), stats.SampleCovariance(a, b), 1e-12)
}

// TestSampleCorrelation_ZeroVariance verifies that a constant sequence
// yields NaN through the zero denominator, per the loud-degeneracy
// contract.
func TestSampleCorrelation_ZeroVariance(t *testing.T) {
	constant := []float64{3, 3, 3, 3}
	moving := []float64{1, 2, 3, 4}

	assert.True(t, math.IsNaN(stats.SampleCorrelation(constant, moving)))
}

// TestZScore_Basic checks the deviation count and the stdDev=0
// degeneracy.
func TestZScore_Basic(t *testing.T) {
	assert.Equal(t, 2.0, stats.ZScore(10, 4, 3))
	assert.Equal(t, -1.5, stats.ZScore(1, 4, 2))
	assert.Equal(t, 0.0, stats.ZScore(4, 4, 3))

	assert.True(t, math.IsInf(stats.ZScore(5, 4, 0), 1), "x above mean with zero stddev is +Inf")
	assert.True(t, math.IsNaN(stats.ZScore(4, 4, 0)), "x equal to mean with zero stddev is NaN")
}
