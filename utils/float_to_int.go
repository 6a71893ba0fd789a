// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt32 quantizes x from [-1, 1] to the full int32 range.
// Out of range input is clamped; +1.0 maps to math.MaxInt32.
func Float32ToInt32(x float32) int32 {
	v := float64(x) * 2147483648.0
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	if math.IsNaN(v) {
		return 0
	}

	return int32(v)
}

// Int32ToFloat32 is the inverse of Float32ToInt32 for full-scale samples.
func Int32ToFloat32(x int32) float32 {
	return float32(float64(x) / 2147483648.0)
}
