// SPDX-License-Identifier: EPL-2.0

package filters

import (
	"math"

	"github.com/ik5/audfx/audio"
)

const (
	DefaultSampleRate = 44100
	DefaultAmplitude  = 0.5
	DefaultDutyCycle  = 0.5
)

// Sine generates amplitude*sin(2*pi*frequency*t).
func Sine(frequency, duration float64, sampleRate int, amplitude float64) *audio.Buffer {
	return generate(duration, sampleRate, func(t float64) float64 {
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	})
}

// Sawtooth generates a ramp from -amplitude up towards +amplitude once per
// period.
func Sawtooth(frequency, duration float64, sampleRate int, amplitude float64) *audio.Buffer {
	return generate(duration, sampleRate, func(t float64) float64 {
		return amplitude * (2*phase(frequency*t) - 1)
	})
}

// Square generates +amplitude while the phase is below dutyCycle and
// -amplitude for the rest of the period.
func Square(frequency, duration float64, sampleRate int, amplitude, dutyCycle float64) *audio.Buffer {
	return generate(duration, sampleRate, func(t float64) float64 {
		if phase(frequency*t) < dutyCycle {
			return amplitude
		}
		return -amplitude
	})
}

// generate evaluates wave at floor(duration*sampleRate) evenly spaced times
// starting at 0, end point excluded.
func generate(duration float64, sampleRate int, wave func(t float64) float64) *audio.Buffer {
	n := int(math.Floor(duration * float64(sampleRate)))
	if n <= 0 {
		return audio.NewBuffer(1, sampleRate, 0)
	}

	out := audio.NewBuffer(1, sampleRate, n)
	step := duration / float64(n)
	for k := range out.Data {
		out.Data[k] = float32(wave(float64(k) * step))
	}
	return out
}

// phase returns the fractional part of x in [0, 1).
func phase(x float64) float64 {
	return x - math.Floor(x)
}
