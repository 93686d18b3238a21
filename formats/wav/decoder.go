// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audfx/audio"
)

const (
	scale16 = 1 << 15
	scale24 = 1 << 23
)

// Decode parses the header of a complete WAV buffer and decodes its samples.
func Decode(data []byte) (Header, *audio.Buffer, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return h, nil, err
	}

	buf, err := DecodeSamples(data, h)
	if err != nil {
		return h, nil, err
	}
	return h, buf, nil
}

// DecodeSamples converts the payload located by h into normalized float32
// samples. 16 and 24-bit integers are scaled by 2^15 and 2^23, 32-bit data
// is taken as IEEE-754 float. A payload that runs past the end of data is
// cut short, as are trailing partial samples and frames.
func DecodeSamples(data []byte, h Header) (*audio.Buffer, error) {
	start := min(max(h.DataOffset, 0), len(data))
	end := min(start+max(h.DataSize, 0), len(data))
	payload := data[start:end]

	var samples []float32
	switch h.BitsPerSample {
	case 16:
		samples = decodePCM16(payload)
	case 24:
		samples = decodePCM24(payload)
	case 32:
		samples = decodeFloat32(payload)
	default:
		return nil, &UnsupportedFormatError{BitsPerSample: h.BitsPerSample}
	}

	channels := max(h.Channels, 1)
	samples = samples[:len(samples)-len(samples)%channels]

	return &audio.Buffer{
		Data:       samples,
		Channels:   channels,
		SampleRate: h.SampleRate,
	}, nil
}

func decodePCM16(payload []byte) []float32 {
	out := make([]float32, len(payload)/2)
	for i := range out {
		v := int16(binary.LittleEndian.Uint16(payload[2*i:]))
		out[i] = float32(v) / scale16
	}
	return out
}

// decodePCM24 assembles each little-endian byte triplet into an int32 and
// sign-extends bit 23.
func decodePCM24(payload []byte) []float32 {
	out := make([]float32, len(payload)/3)
	for i := range out {
		b := payload[3*i : 3*i+3]
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v >= 1<<23 {
			v -= 1 << 24
		}
		out[i] = float32(v) / scale24
	}
	return out
}

func decodeFloat32(payload []byte) []float32 {
	out := make([]float32, len(payload)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[4*i:]))
	}
	return out
}

// Decoder reads a whole WAV stream into memory and exposes it as an
// audio.Source. It satisfies audio.Decoder.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	_, buf, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return audio.NewBufferSource(buf), nil
}
