// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audfx/audio"
)

// writeFloat32 writes b as a canonical 44-byte header IEEE float WAV.
func writeFloat32(w io.Writer, b *audio.Buffer) error {
	numChannels := uint16(max(b.Channels, 1))
	const bitsPerSample = 32
	samples := b.Data[:b.Frames()*int(numChannels)]

	blockAlign := numChannels * bitsPerSample / 8
	byteRate := uint32(b.SampleRate) * uint32(blockAlign)
	dataSize := uint32(len(samples) * 4)

	header := make([]byte, canonicalHeaderSize)
	le := binary.LittleEndian

	copy(header[0:4], riffID)
	le.PutUint32(header[4:8], canonicalHeaderSize-8+dataSize)
	copy(header[8:12], waveID)

	copy(header[12:16], fmtID)
	le.PutUint32(header[16:20], 16)
	le.PutUint16(header[20:22], formatFloat)
	le.PutUint16(header[22:24], numChannels)
	le.PutUint32(header[24:28], uint32(b.SampleRate))
	le.PutUint32(header[28:32], byteRate)
	le.PutUint16(header[32:34], blockAlign)
	le.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], dataID)
	le.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing float header: %w", err)
	}

	// write the payload in bounded chunks
	const chunkSize = 8192
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*4)
	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*4]

		for j, s := range chunk {
			le.PutUint32(out[j*4:], math.Float32bits(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing float samples: %w", err)
		}
	}

	return nil
}
