// SPDX-License-Identifier: MIT

// Test bridge: exposes unexported kernels to package sampler_test only.

package sampler

// CumulativeForTest exposes cumulative with DefaultTolerance to external tests.
func CumulativeForTest(p []float64) ([]float64, error) {
	return cumulative(p, DefaultTolerance)
}

// PickForTest exposes pick to external tests.
func PickForTest(cdf []float64, u float64) int {
	return pick(cdf, u)
}
