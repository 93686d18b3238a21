// SPDX-License-Identifier: EPL-2.0

package filters

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

// Envelope describes an ADSR shape. Attack, Decay and Release are in
// seconds; SustainLevel is a gain.
type Envelope struct {
	Attack       float64
	Decay        float64
	SustainLevel float64
	Release      float64
}

var DefaultEnvelope = Envelope{
	Attack:       0.1,
	Decay:        0.1,
	SustainLevel: 0.7,
	Release:      0.2,
}

// phases converts the envelope times to frame counts for a buffer of total
// frames. When attack, decay and release do not fit, they are scaled down
// together and release takes whatever is left.
func (e Envelope) phases(total, sampleRate int) (attack, decay, sustain, release int) {
	rate := float64(sampleRate)
	attack = max(int(e.Attack*rate), 0)
	decay = max(int(e.Decay*rate), 0)
	release = max(int(e.Release*rate), 0)

	sustain = total - attack - decay - release
	if sustain >= 0 {
		return attack, decay, sustain, release
	}

	scale := float64(total) / float64(attack+decay+release)
	attack = int(float64(attack) * scale)
	decay = int(float64(decay) * scale)
	release = total - attack - decay
	return attack, decay, 0, release
}

// Curve returns the per frame gains of the envelope over frames frames.
// The result always has exactly frames entries.
func (e Envelope) Curve(frames, sampleRate int) []float64 {
	curve := make([]float64, max(frames, 0))
	if len(curve) == 0 {
		return curve
	}

	attack, decay, sustain, release := e.phases(len(curve), sampleRate)

	pos := 0
	pos += copy(curve[pos:], utils.Linspace(0, 1, attack))
	pos += copy(curve[pos:], utils.Linspace(1, e.SustainLevel, decay))
	for range sustain {
		curve[pos] = e.SustainLevel
		pos++
	}
	copy(curve[pos:], utils.Linspace(e.SustainLevel, 0, release))

	return curve
}

// ApplyEnvelope multiplies every frame of buf by the envelope curve. All
// channels of a frame share one gain. sampleRate <= 0 uses buf.SampleRate.
func ApplyEnvelope(buf *audio.Buffer, env Envelope, sampleRate int) *audio.Buffer {
	if sampleRate <= 0 {
		sampleRate = buf.SampleRate
	}

	channels := max(buf.Channels, 1)
	frames := len(buf.Data) / channels
	curve := env.Curve(frames, sampleRate)

	samples := make([]float64, frames*channels)
	gains := make([]float64, len(samples))
	for i := range samples {
		samples[i] = float64(buf.Data[i])
		gains[i] = curve[i/channels]
	}

	product := make([]float64, len(samples))
	vecmath.MulBlock(product, samples, gains)

	out := audio.NewBuffer(channels, buf.SampleRate, frames)
	for i, v := range product {
		out.Data[i] = float32(v)
	}
	return out
}
