// SPDX-License-Identifier: EPL-2.0

package filters

import (
	"math"

	"github.com/ik5/audfx/audio"
)

// DefaultResonance disables the feedback path.
const DefaultResonance = 1.0

// LowPass runs a one-pole RC low-pass over every channel of buf:
//
//	alpha = dt / (rc + dt), dt = 1/sampleRate, rc = 1/(2*pi*cutoff)
//	y[0] = alpha * x[0]
//	y[i] = alpha * x[i] + (1-alpha) * y[i-1]
//
// With resonance > 1 every y[i] past the first gets y[i]*(resonance-1)*0.1
// added and is clamped to [-1, 1] before it feeds the next sample.
// sampleRate <= 0 uses buf.SampleRate.
func LowPass(buf *audio.Buffer, cutoff float64, sampleRate int, resonance float64) *audio.Buffer {
	if sampleRate <= 0 {
		sampleRate = buf.SampleRate
	}

	dt := 1 / float64(sampleRate)
	rc := 1 / (2 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	feedback := 0.0
	if resonance > 1 {
		feedback = (resonance - 1) * 0.1
	}

	channels := max(buf.Channels, 1)
	frames := len(buf.Data) / channels
	out := audio.NewBuffer(channels, buf.SampleRate, frames)
	if frames == 0 {
		return out
	}

	for c := range channels {
		y := alpha * float64(buf.Data[c])
		out.Data[c] = float32(y)

		for i := channels + c; i < frames*channels; i += channels {
			y = alpha*float64(buf.Data[i]) + (1-alpha)*y
			if feedback != 0 {
				y = min(max(y+y*feedback, -1), 1)
			}
			out.Data[i] = float32(y)
		}
	}
	return out
}
