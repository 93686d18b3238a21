// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

const (
	// canonicalHeaderSize is RIFF(12) + fmt chunk(24) + data chunk header(8).
	canonicalHeaderSize = 44

	riffHeaderSize  = 12
	chunkHeaderSize = 8

	formatPCM   = 1
	formatFloat = 3
)

var (
	riffID = []byte("RIFF")
	waveID = []byte("WAVE")
	fmtID  = []byte("fmt ")
	dataID = []byte("data")
)

// Header is the metadata of a RIFF/WAVE buffer. DataOffset and DataSize
// locate the sample payload inside the buffer the header was parsed from.
type Header struct {
	FileSize      uint32
	AudioFormat   uint16
	Channels      int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
	DataOffset    int
	DataSize      int
}

// ParseHeader reads the RIFF/WAVE preamble and fmt chunk, then walks the
// chunk list until it finds the data chunk. Any chunks between fmt and data
// are skipped.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < canonicalHeaderSize {
		return h, ErrTooShort
	}
	if !bytes.Equal(data[0:4], riffID) || !bytes.Equal(data[8:12], waveID) {
		return h, ErrBadMagic
	}
	if !bytes.Equal(data[12:16], fmtID) {
		return h, ErrMissingFmtChunk
	}

	le := binary.LittleEndian
	h.FileSize = le.Uint32(data[4:8])
	fmtSize := int(le.Uint32(data[16:20]))
	h.AudioFormat = le.Uint16(data[20:22])
	h.Channels = int(le.Uint16(data[22:24]))
	h.SampleRate = int(le.Uint32(data[24:28]))
	h.ByteRate = int(le.Uint32(data[28:32]))
	h.BlockAlign = int(le.Uint16(data[32:34]))
	h.BitsPerSample = int(le.Uint16(data[34:36]))

	offset, size, ok := findChunk(data, riffHeaderSize+chunkHeaderSize+fmtSize, dataID)
	if !ok {
		return h, ErrMissingDataChunk
	}
	h.DataOffset = offset
	h.DataSize = size

	return h, nil
}

// findChunk scans chunk headers from offset and returns the payload offset
// and declared size of the first chunk tagged id.
func findChunk(data []byte, offset int, id []byte) (int, int, bool) {
	for offset >= 0 && offset+chunkHeaderSize <= len(data) {
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		if bytes.Equal(data[offset:offset+4], id) {
			return offset + chunkHeaderSize, size, true
		}
		offset += chunkHeaderSize + size
	}
	return 0, 0, false
}
