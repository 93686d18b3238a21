// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

const (
	DefaultRoomSize        = 0.5
	DefaultDamping         = 0.3
	DefaultDopplerVelocity = 1.0
)

// DefaultPanPositions approximate a five speaker layout:
// left, right, center, left surround, right surround.
var DefaultPanPositions = []float64{-0.8, 0.8, 0, -0.5, 0.5}

// reflection gains, earliest first
var reverbGains = [4]float32{0.4, 0.3, 0.2, 0.1}

// PanToSurround spreads a mono signal over len(positions) channels. Each
// position in [-1, 1] gets the gain sqrt(left*right) where the near side
// has gain 1 and the far side (1-|pan|)/2.
//
// Multi-channel input is downmixed first. Empty positions fall back to
// DefaultPanPositions.
func PanToSurround(buf *audio.Buffer, positions []float64) *audio.Buffer {
	if len(positions) == 0 {
		positions = DefaultPanPositions
	}

	mono := buf
	if buf.Channels > 1 {
		mono = audio.ToMono(buf)
	}

	channels := len(positions)
	out := audio.NewBuffer(channels, buf.SampleRate, len(mono.Data))
	for c, pan := range positions {
		gain := float32(panGain(pan))
		for f, v := range mono.Data {
			out.Data[f*channels+c] = v * gain
		}
	}
	return out
}

func panGain(pan float64) float64 {
	left, right := 1.0, 1.0
	if pan <= 0 {
		right = (pan + 1) * 0.5
	} else {
		left = (1 - pan) * 0.5
	}
	return math.Sqrt(left * right)
}

// reverbDelays returns the four reflection delays in frames for roomSize.
func reverbDelays(roomSize float64) [4]int {
	return [4]int{
		max(int(roomSize*1000+500), 0),
		max(int(roomSize*1500+800), 0),
		max(int(roomSize*2000+1200), 0),
		max(int(roomSize*2500+1600), 0),
	}
}

// RoomReverb adds four early and late reflections of a damped copy of buf.
// The damped copy comes from a one-pole smoother run per channel,
// d[i] = (1-damping)*x[i] + damping*d[i-1], starting from the raw first
// sample; damping <= 0 skips it.
//
// The output is the dry signal followed by room for the longest reflection,
// so it is always longer than the input, even for empty input.
func RoomReverb(buf *audio.Buffer, roomSize, damping float64) *audio.Buffer {
	channels, frames := layout(buf)
	src := buf.Data[:frames*channels]

	damped := make([]float32, len(src))
	copy(damped, src)
	if damping > 0 {
		keep, carry := float32(1-damping), float32(damping)
		for c := range channels {
			for i := channels + c; i < len(damped); i += channels {
				damped[i] = keep*damped[i] + carry*damped[i-channels]
			}
		}
	}

	delays := reverbDelays(roomSize)
	maxDelay := 0
	for _, d := range delays {
		maxDelay = max(maxDelay, d)
	}

	out := audio.NewBuffer(channels, buf.SampleRate, frames+maxDelay)
	copy(out.Data, src)
	for k, d := range delays {
		superimpose(out.Data, damped, d*channels, reverbGains[k])
	}
	return out
}

// Doppler simulates a source moving at velocity (as a fraction of the speed
// of sound) by resampling buf to floor(frames/(1+velocity)) frames with
// linear interpolation over [0, frames-1]. Pitch and length change together.
//
// A zero or non-finite target length yields an empty buffer.
func Doppler(buf *audio.Buffer, velocity float64) *audio.Buffer {
	channels, frames := layout(buf)

	target := math.Floor(float64(frames) * (1 / (1 + velocity)))
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 || frames == 0 {
		return audio.NewBuffer(channels, buf.SampleRate, 0)
	}
	n := int(target)

	positions := utils.Linspace(0, float64(frames-1), n)
	out := audio.NewBuffer(channels, buf.SampleRate, n)
	for c := range channels {
		channel := buf.Channel(c)
		if channel == nil {
			// zero channel buffers are read as mono
			channel = buf.Data[:frames]
		}
		for k, pos := range positions {
			out.Data[k*channels+c] = utils.LinearInterpolate(channel, pos)
		}
	}
	return out
}
