// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer is an in-memory block of interleaved float32 samples.
//
// Data is frame-major: frame f occupies Data[f*Channels : (f+1)*Channels].
// Decoded audio is normalized to roughly [-1, 1]; processed buffers may
// exceed that range.
type Buffer struct {
	Data       []float32
	Channels   int
	SampleRate int
}

// NewBuffer allocates a zeroed buffer holding frames frames.
func NewBuffer(channels, sampleRate, frames int) *Buffer {
	if channels < 1 {
		channels = 1
	}
	if frames < 0 {
		frames = 0
	}
	return &Buffer{
		Data:       make([]float32, frames*channels),
		Channels:   channels,
		SampleRate: sampleRate,
	}
}

// NewMono wraps samples in a single channel buffer. samples is not copied.
func NewMono(sampleRate int, samples []float32) *Buffer {
	return &Buffer{Data: samples, Channels: 1, SampleRate: sampleRate}
}

// Len returns the number of samples across all channels.
func (b *Buffer) Len() int { return len(b.Data) }

// Frames returns the number of complete frames.
func (b *Buffer) Frames() int {
	if b.Channels < 1 {
		return len(b.Data)
	}
	return len(b.Data) / b.Channels
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	data := make([]float32, len(b.Data))
	copy(data, b.Data)
	return &Buffer{Data: data, Channels: b.Channels, SampleRate: b.SampleRate}
}

// Channel returns a copy of channel c as a flat slice.
// An out of range channel yields nil.
func (b *Buffer) Channel(c int) []float32 {
	if c < 0 || c >= b.Channels {
		return nil
	}
	frames := b.Frames()
	out := make([]float32, frames)
	for f := range frames {
		out[f] = b.Data[f*b.Channels+c]
	}
	return out
}

// Interleave builds a frame-major buffer from per-channel slices.
// The result is truncated to the shortest channel.
func Interleave(sampleRate int, channels ...[]float32) *Buffer {
	if len(channels) == 0 {
		return NewBuffer(1, sampleRate, 0)
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}

	out := NewBuffer(len(channels), sampleRate, frames)
	n := len(channels)
	for c, ch := range channels {
		for f := range frames {
			out.Data[f*n+c] = ch[f]
		}
	}
	return out
}
