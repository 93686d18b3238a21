// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/audfx/audio"

// layout returns the channel count and whole frame count of b.
func layout(b *audio.Buffer) (channels, frames int) {
	channels = max(b.Channels, 1)
	return channels, len(b.Data) / channels
}

// reverseFrames copies src into dst with the frame order reversed.
func reverseFrames(dst, src []float32, channels int) {
	frames := len(src) / channels
	for f := range frames {
		copy(dst[f*channels:(f+1)*channels], src[(frames-1-f)*channels:(frames-f)*channels])
	}
}

// superimpose adds gain*src onto dst starting shift samples in.
func superimpose(dst, src []float32, shift int, gain float32) {
	tail := dst[shift:]
	for i, v := range src {
		if i >= len(tail) {
			return
		}
		tail[i] += v * gain
	}
}
