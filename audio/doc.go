// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample model shared by every other package.
//
// # Buffer
//
// Buffer is the in-memory representation that decoders produce and that
// effects and filters consume:
//
//	type Buffer struct {
//	    Data       []float32 // interleaved, frame-major
//	    Channels   int
//	    SampleRate int
//	}
//
// A frame is one instant's set of per-channel samples. Frame f lives at
// Data[f*Channels : (f+1)*Channels]. Decoded audio is normalized to about
// [-1.0, 1.0]; echo and reverb superposition can push processed buffers
// past that range on purpose.
//
// Transforms never mutate their input. Use Clone when a private copy is
// needed, Channel to pull a single channel out, and Interleave to put
// channels back together:
//
//	left, right := buf.Channel(0), buf.Channel(1)
//	stereo := audio.Interleave(buf.SampleRate, left, right)
//
// # Streaming Sources
//
// The Source interface streams interleaved samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// BufferSource adapts a Buffer to Source and ReadAll collects a Source back
// into a Buffer, so streaming stages can be used on in-memory audio.
//
// # Resampling and Downmixing
//
// Resampler changes the sample rate with cubic interpolation and MonoMixer
// averages channels. Resample and ToMono run them over a whole Buffer:
//
//	mono := audio.ToMono(stereo)
//	at8k, err := audio.Resample(mono, 8000)
//
// # Format Registry
//
// The registry maps a container key or file extension to a Decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(".WAV")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ErrInvalidDstSize
// is returned when a destination slice is not a whole number of frames.
package audio
