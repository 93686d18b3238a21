// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ToMono averages every frame of b into a single channel using MonoMixer.
// Mono input is returned as a copy.
func ToMono(b *Buffer) *Buffer {
	if b.Channels <= 1 {
		out := b.Clone()
		out.Channels = 1
		return out
	}

	// MonoMixer over an in-memory source cannot fail
	out, err := ReadAll(NewMonoMixer(NewBufferSource(b)))
	if err != nil {
		return NewBuffer(1, b.SampleRate, 0)
	}
	return out
}

// Resample converts b to targetRate through the cubic Resampler.
// Channel count is preserved. An equal rate returns a copy.
func Resample(b *Buffer, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("target rate must be > 0: %d", targetRate)
	}
	if b.SampleRate <= 0 {
		return nil, fmt.Errorf("source rate must be > 0: %d", b.SampleRate)
	}
	if b.SampleRate == targetRate {
		return b.Clone(), nil
	}

	out, err := ReadAll(NewResampler(NewBufferSource(b), targetRate))
	if err != nil {
		return nil, fmt.Errorf("resampling %d -> %d Hz: %w", b.SampleRate, targetRate, err)
	}
	return out, nil
}
