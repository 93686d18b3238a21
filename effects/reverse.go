// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audfx/audio"
)

const (
	DefaultSegmentLength = 1024
	DefaultGateThreshold = 0.1
	DefaultGateLength    = 512
)

// Reverse returns buf with its frame order reversed. Samples within a frame
// keep their channel order.
func Reverse(buf *audio.Buffer) *audio.Buffer {
	channels, frames := layout(buf)
	out := audio.NewBuffer(channels, buf.SampleRate, frames)
	reverseFrames(out.Data, buf.Data[:frames*channels], channels)
	return out
}

// ReverseSegments splits buf into consecutive runs of segmentLength frames
// and reverses each run in place. The last run may be shorter.
// segmentLength <= 0 returns an unchanged copy.
func ReverseSegments(buf *audio.Buffer, segmentLength int) *audio.Buffer {
	return reverseWhere(buf, segmentLength, func([]float32) bool { return true })
}

// GateReverse works like ReverseSegments with gateLength sized runs, but a
// run is reversed only when its peak absolute sample exceeds threshold.
func GateReverse(buf *audio.Buffer, threshold float64, gateLength int) *audio.Buffer {
	return reverseWhere(buf, gateLength, func(segment []float32) bool {
		return peak(segment) > threshold
	})
}

func reverseWhere(buf *audio.Buffer, segmentLength int, reverse func(segment []float32) bool) *audio.Buffer {
	channels, frames := layout(buf)
	out := audio.NewBuffer(channels, buf.SampleRate, frames)
	src := buf.Data[:frames*channels]
	copy(out.Data, src)

	if segmentLength <= 0 {
		return out
	}

	for start := 0; start < frames; start += segmentLength {
		end := min(start+segmentLength, frames)
		segment := src[start*channels : end*channels]
		if reverse(segment) {
			reverseFrames(out.Data[start*channels:end*channels], segment, channels)
		}
	}
	return out
}

func peak(samples []float32) float64 {
	var p float64
	for _, v := range samples {
		p = max(p, math.Abs(float64(v)))
	}
	return p
}
