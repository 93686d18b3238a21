// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE buffers.
//
// # Decoding
//
// Decoding works on a complete in-memory buffer:
//
//	header, buf, err := wav.Decode(data)
//
// or in two steps:
//
//	header, err := wav.ParseHeader(data)
//	buf, err := wav.DecodeSamples(data, header)
//
// ParseHeader checks the RIFF/WAVE magic, reads the fmt chunk that must
// directly follow it, and then walks the chunk list until it reaches the
// data chunk, skipping LIST, fact or any other chunk in between.
//
// Supported payloads:
//   - 16-bit signed PCM, normalized by 2^15
//   - 24-bit signed PCM, assembled from byte triplets and normalized by 2^23
//   - 32-bit IEEE float, passed through
//
// Multi-channel payloads keep their interleaved frame layout in the
// returned audio.Buffer.
//
// Decoder adapts the package to the audio.Decoder interface so it can be
// registered in an audio.Registry.
//
// # Encoding
//
// Encode and EncodeBytes write a buffer back out. 16 and 24-bit PCM go
// through the github.com/go-audio/wav encoder; 32-bit output is written as
// IEEE float:
//
//	out, err := wav.EncodeBytes(buf, 16)
//
// # Error Handling
//
// Structural problems are reported as *FormatError; the sentinels
// ErrTooShort, ErrBadMagic, ErrMissingFmtChunk and ErrMissingDataChunk can
// be matched with errors.Is. A bit depth other than 16, 24 or 32 yields
// *UnsupportedFormatError:
//
//	var unsupported *wav.UnsupportedFormatError
//	if errors.As(err, &unsupported) {
//	    fmt.Println("bit depth", unsupported.BitsPerSample)
//	}
package wav
