// Package geostat is a small toolbox of pure numeric functions for
// descriptive statistics, standard-normal conversions, and geodesy.
//
// 🚀 What is geostat?
//
//	A collection of independent, stateless computations over plain
//	float64 slices and (lon, lat) coordinate pairs:
//		• Moments: sum, mean, variance, standard deviation
//		• Relationships: sample covariance, Pearson correlation, z-scores
//		• Order statistics: mid-rank percentile, type-7 quantiles, IQR
//		• Normal distribution: z-score ↔ p-value conversions
//		• Geodesy: haversine & spherical Vincenty great-circle distance
//		• Geometry: antimeridian-aware bounding boxes, point-in-polygon
//
// ✨ Why choose geostat?
//
//   - Predictable contracts – degenerate inputs yield NaN/±Inf loudly,
//     never a silently guessed value
//   - No shared state – every call is independent and safe to run
//     concurrently from any number of goroutines
//   - Caller-owned data – input slices are never mutated; sorting
//     always operates on a working copy
//
// Everything is organized under three subpackages:
//
//	stats/ — moments, covariance/correlation, percentiles & quantiles
//	dist/  — cumulative standard normal and its inverse
//	geo/   — earth-radius units, great-circle distance, containment tests
//
// A cobra-based CLI lives in cmd/geostat for describing samples and
// measuring routes from the shell; runnable scenarios sit in examples/.
//
//	go get github.com/katalvlaran/geostat
package geostat
