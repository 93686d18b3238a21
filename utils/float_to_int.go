// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM scales a normalized sample to a signed integer of the given bit
// depth. Input is clamped to [-1, 1] and the positive peak saturates at
// 2^(bits-1)-1, so x == k/2^(bits-1) maps back to k exactly.
func FloatToPCM(x float32, bitDepth int) int {
	scale := float64(int64(1) << (bitDepth - 1))

	v := math.Round(float64(x) * scale)
	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}
	return int(v)
}
