// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/audfx/audio"

const (
	DefaultEchoDelay = 8000
	DefaultEchoDecay = 0.5
)

// EchoTap is one stage of a MultiEcho chain.
type EchoTap struct {
	Delay int     // frames
	Decay float64 // gain applied to the delayed copy
}

// DefaultEchoTaps are used by MultiEcho when no taps are given.
var DefaultEchoTaps = []EchoTap{
	{Delay: 4000, Decay: 0.6},
	{Delay: 8000, Decay: 0.4},
	{Delay: 12000, Decay: 0.2},
}

// Echo returns buf followed by a copy of itself delayed by delay frames and
// scaled by decay. The output is delay frames longer than the input and the
// echo is added on top of the dry signal.
//
// An empty buffer is returned as an empty copy. A negative delay is treated
// as zero.
func Echo(buf *audio.Buffer, delay int, decay float64) *audio.Buffer {
	channels, frames := layout(buf)
	if frames == 0 {
		return buf.Clone()
	}
	delay = max(delay, 0)

	dry := buf.Data[:frames*channels]
	out := audio.NewBuffer(channels, buf.SampleRate, frames+delay)
	copy(out.Data, dry)
	superimpose(out.Data, dry, delay*channels, float32(decay))

	return out
}

// MultiEcho applies Echo once per tap, each tap working on the output of the
// one before it. nil or empty taps fall back to DefaultEchoTaps.
func MultiEcho(buf *audio.Buffer, taps []EchoTap) *audio.Buffer {
	if len(taps) == 0 {
		taps = DefaultEchoTaps
	}

	out := buf.Clone()
	for _, tap := range taps {
		out = Echo(out, tap.Delay, tap.Decay)
	}
	return out
}
