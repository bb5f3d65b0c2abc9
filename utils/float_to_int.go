// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCM16Scale is the divisor between 16-bit PCM integers and floats in [-1, 1].
const PCM16Scale = 32768.0

// FloatToInt16 converts a float sample to 16-bit PCM.
//
// The input is clamped to [-1, 1], scaled by PCM16Scale and rounded half away
// from zero; +1.0 saturates at math.MaxInt16. Any value produced by
// Int16ToFloat converts back to the same integer.
func FloatToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := RoundHalfAwayFromZero(x * PCM16Scale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}

	return int16(v)
}

// Int16ToFloat converts a 16-bit PCM sample to a float in [-1, 1).
func Int16ToFloat(v int16) float64 {
	return float64(v) / PCM16Scale
}
