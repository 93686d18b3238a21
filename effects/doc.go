// SPDX-License-Identifier: EPL-2.0

// Package effects holds time-domain and spatial transforms over
// audio.Buffer values.
//
// Every function returns a new buffer and leaves its input untouched.
// Indices and lengths (delays, segment sizes) count frames, so a stereo
// delay of 8000 shifts both channels by 8000 frames.
//
// # Temporal Effects
//
//	out := effects.Echo(buf, effects.DefaultEchoDelay, effects.DefaultEchoDecay)
//	out = effects.MultiEcho(out, effects.DefaultEchoTaps)
//	out = effects.ReverseSegments(out, effects.DefaultSegmentLength)
//
// MultiEcho feeds each tap the output of the previous one, so the tail
// grows by the sum of all tap delays.
//
// # Spatial Effects
//
// PanToSurround spreads a mono signal across one output channel per pan
// position. RoomReverb adds four damped reflections whose delays scale with
// the room size. Doppler resamples the signal by 1/(1+velocity), changing
// pitch and duration together.
//
// Parameters are not range checked; out of range values are applied to the
// formulas as given.
package effects
