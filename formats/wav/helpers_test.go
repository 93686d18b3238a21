// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

type chunk struct {
	id   string
	body []byte
}

// buildWAV assembles a RIFF/WAVE file with a 16 byte fmt chunk, the given
// extra chunks and a data chunk carrying payload.
func buildWAV(format uint16, channels, sampleRate, bits int, payload []byte, extra ...chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	body.WriteString("fmt ")
	binary.Write(body, binary.LittleEndian, uint32(16))
	binary.Write(body, binary.LittleEndian, format)
	binary.Write(body, binary.LittleEndian, uint16(channels))
	binary.Write(body, binary.LittleEndian, uint32(sampleRate))
	binary.Write(body, binary.LittleEndian, uint32(sampleRate*channels*bits/8))
	binary.Write(body, binary.LittleEndian, uint16(channels*bits/8))
	binary.Write(body, binary.LittleEndian, uint16(bits))

	for _, c := range extra {
		body.WriteString(c.id)
		binary.Write(body, binary.LittleEndian, uint32(len(c.body)))
		body.Write(c.body)
	}

	body.WriteString("data")
	binary.Write(body, binary.LittleEndian, uint32(len(payload)))
	body.Write(payload)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func pcm16Payload(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func pcm24Payload(samples ...int32) []byte {
	out := make([]byte, 0, len(samples)*3)
	for _, s := range samples {
		out = append(out, byte(s), byte(s>>8), byte(s>>16))
	}
	return out
}

func float32Payload(samples ...float32) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}
