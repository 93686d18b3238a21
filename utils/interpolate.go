// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom segment between y1 (x = 0) and
// y2 (x = 1), using y0 and y3 as the outer neighbours.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// LinearInterpolate returns the value at fractional position pos over
// samples, with positions outside [0, len-1] clamped to the end points.
func LinearInterpolate(samples []float32, pos float64) float32 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	if pos <= 0 {
		return samples[0]
	}
	if pos >= float64(n-1) {
		return samples[n-1]
	}

	i := int(pos)
	frac := pos - float64(i)
	a, b := float64(samples[i]), float64(samples[i+1])
	return float32(a + (b-a)*frac)
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields just start.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	// pin the end point against accumulated rounding
	out[n-1] = stop
	return out
}
