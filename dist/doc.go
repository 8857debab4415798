// Package dist converts between z-scores and p-values under the
// standard normal distribution.
//
// ZScoreToPValue evaluates the cumulative distribution Φ(z) with a
// convergent power series around zero; PValueToZScore inverts it with a
// pair of published rational polynomial fits. Both are plain float64
// computations with no state and no allocation.
//
// Accuracy:
//
//   - ZScoreToPValue matches the reference CDF to better than 1e-10 over
//     the supported range and clamps to exactly 0 below z = −6.5 and
//     exactly 1 above z = +6.5, where the series loses precision.
//   - PValueToZScore is accurate to roughly 1e-7 in the central region;
//     the round trip PValueToZScore(ZScoreToPValue(z)) recovers z within
//     1e-6 for |z| ≤ 2. PValueToZScore(1) is +Inf by construction.
//
// Out-of-domain inputs follow the clamping rules above rather than
// erroring; see the function docs for the exact boundary behavior.
package dist
