// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// RoundHalfAwayFromZero rounds x to the nearest integer, with ties going away
// from zero: 3.5 -> 4, -2.5 -> -3, 2.4 -> 2.
func RoundHalfAwayFromZero(x float64) int {
	if x < 0 {
		return -int(math.Floor(-x + 0.5))
	}

	return int(math.Floor(x + 0.5))
}
