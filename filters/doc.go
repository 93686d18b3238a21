// SPDX-License-Identifier: EPL-2.0

// Package filters contains stereo vocal filters, waveform generators, an
// ADSR envelope and a one-pole low-pass filter.
//
// # Vocal Filters
//
// Vocals are usually mixed to the center, so they appear identically in
// both channels. Subtracting the channels cancels them; averaging them
// favours them:
//
//	karaoke := filters.VocalRemoval(left, right)
//	vocals := filters.VocalIsolation(left, right)
//
// DynamicVocalRemoval decides per window: strongly correlated windows are
// subtracted, the rest are averaged. RemoveVocals, IsolateVocals and
// RemoveVocalsDynamic do the same on a stereo audio.Buffer.
//
// # Synthesis
//
// Sine, Sawtooth and Square return mono buffers of floor(duration*rate)
// samples:
//
//	tone := filters.Square(440, 1, filters.DefaultSampleRate, filters.DefaultAmplitude, 0.25)
//	tone = filters.ApplyEnvelope(tone, filters.DefaultEnvelope, tone.SampleRate)
//	tone = filters.LowPass(tone, 2000, tone.SampleRate, 1.5)
//
// The low-pass filter is a strict recurrence over each channel. With
// resonance above 1 part of the output is fed back and the result is
// clamped to [-1, 1].
package filters
