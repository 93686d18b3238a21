// SPDX-License-Identifier: EPL-2.0

// Package audfx decodes WAV audio, runs it through signal processing
// stages and encodes the result.
//
// # Subpackages
//
//   - audio: the in-memory Buffer, streaming Source types, resampling and
//     channel mixing
//   - formats/wav: RIFF/WAVE parsing, decoding and encoding
//   - effects: echo, reverse, surround panning, room reverb and Doppler
//   - filters: vocal removal, waveform synthesis, ADSR envelope and
//     low-pass filtering
//
// # Stages
//
// A Stage maps one buffer to a new one. Any transform from the
// subpackages can be wrapped into a Stage and chained:
//
//	chain := audfx.Chain(
//	    func(b *audio.Buffer) *audio.Buffer { return effects.Echo(b, 8000, 0.5) },
//	    effects.Reverse,
//	    audfx.Mono,
//	)
//	out := chain(buf)
//
// # Byte Level Processing
//
// ProcessBytes handles a whole WAV file held in memory, decoding it,
// applying the stages and encoding at the requested bit depth (0 keeps
// the input depth):
//
//	out, err := audfx.ProcessBytes(data, 16, effects.Reverse)
//
// ProcessBatch does the same for many files concurrently, keeping the
// order of the inputs and stopping at the first error:
//
//	outs, err := audfx.ProcessBatch(ctx, files, 0, runtime.NumCPU(), effects.Reverse)
//
// Transforms themselves are synchronous and never share state, so
// independent buffers can be processed in parallel safely.
package audfx
