// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/internal/audiotest"
)

func TestEncodeBytes_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bits       int
		format     uint16
		channels   int
		sampleRate int
		frames     int
	}{
		{name: "16-bit mono", bits: 16, format: formatPCM, channels: 1, sampleRate: 8000, frames: 10},
		{name: "16-bit stereo", bits: 16, format: formatPCM, channels: 2, sampleRate: 44100, frames: 7},
		{name: "24-bit stereo", bits: 24, format: formatPCM, channels: 2, sampleRate: 48000, frames: 5},
		{name: "32-bit float 5ch", bits: 32, format: formatFloat, channels: 5, sampleRate: 96000, frames: 3},
		{name: "empty", bits: 16, format: formatPCM, channels: 1, sampleRate: 8000, frames: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := audio.NewBuffer(tt.channels, tt.sampleRate, tt.frames)
			out, err := EncodeBytes(buf, tt.bits)
			if err != nil {
				t.Fatalf("EncodeBytes() error = %v", err)
			}

			dataSize := tt.frames * tt.channels * tt.bits / 8
			if len(out) != canonicalHeaderSize+dataSize {
				t.Fatalf("len = %d, want %d", len(out), canonicalHeaderSize+dataSize)
			}

			h, err := ParseHeader(out)
			if err != nil {
				t.Fatalf("ParseHeader() error = %v", err)
			}

			want := Header{
				FileSize:      uint32(len(out) - 8),
				AudioFormat:   tt.format,
				Channels:      tt.channels,
				SampleRate:    tt.sampleRate,
				ByteRate:      tt.sampleRate * tt.channels * tt.bits / 8,
				BlockAlign:    tt.channels * tt.bits / 8,
				BitsPerSample: tt.bits,
				DataOffset:    canonicalHeaderSize,
				DataSize:      dataSize,
			}
			if h != want {
				t.Errorf("header = %+v, want %+v", h, want)
			}
		})
	}
}

// TestRoundTrip_PCM16 decodes a 16-bit file, re-encodes it and decodes the
// result again; every sample must land within one quantization step.
func TestRoundTrip_PCM16(t *testing.T) {
	t.Parallel()

	payload := make([]int16, 0, 2000)
	for i := range 1000 {
		v := int16(math.Sin(float64(i)*0.05) * 30000)
		payload = append(payload, v, -v)
	}
	payload = append(payload, math.MaxInt16, math.MinInt16)

	original := buildWAV(formatPCM, 2, 22050, 16, pcm16Payload(payload...),
		chunk{id: "LIST", body: make([]byte, 26)})

	_, first, err := Decode(original)
	if err != nil {
		t.Fatalf("Decode(original) error = %v", err)
	}

	encoded, err := EncodeBytes(first, 16)
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}

	_, second, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode(encoded) error = %v", err)
	}

	if second.Channels != first.Channels || second.SampleRate != first.SampleRate {
		t.Fatalf("layout changed: %d ch @ %d Hz -> %d ch @ %d Hz",
			first.Channels, first.SampleRate, second.Channels, second.SampleRate)
	}
	audiotest.RequireSamplesNearlyEqual(t, second.Data, first.Data, 1.0/32768)
}

func TestRoundTrip_AllDepths(t *testing.T) {
	t.Parallel()

	src := &audio.Buffer{
		Data:       []float32{0, 0.5, -0.5, 0.25, -1, 0.999, -0.125, 0.0625},
		Channels:   2,
		SampleRate: 32000,
	}

	tests := []struct {
		bits int
		eps  float64
	}{
		{bits: 16, eps: 1.0 / 32768},
		{bits: 24, eps: 1.0 / (1 << 23)},
		{bits: 32, eps: 0},
	}

	for _, tt := range tests {
		out, err := EncodeBytes(src, tt.bits)
		if err != nil {
			t.Fatalf("bits=%d: EncodeBytes() error = %v", tt.bits, err)
		}

		h, got, err := Decode(out)
		if err != nil {
			t.Fatalf("bits=%d: Decode() error = %v", tt.bits, err)
		}
		if h.BitsPerSample != tt.bits {
			t.Errorf("BitsPerSample = %d, want %d", h.BitsPerSample, tt.bits)
		}
		audiotest.RequireSamplesNearlyEqual(t, got.Data, src.Data, tt.eps)
	}
}

func TestEncode_ClipsOutOfRange(t *testing.T) {
	t.Parallel()

	src := audio.NewMono(8000, []float32{1.8, -2.5})
	out, err := EncodeBytes(src, 16)
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}

	_, got, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	audiotest.RequireSamplesNearlyEqual(t, got.Data, []float32{32767.0 / 32768.0, -1}, 0)
}

func TestEncode_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	_, err := EncodeBytes(audio.NewBuffer(1, 8000, 4), 8)

	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) || unsupported.BitsPerSample != 8 {
		t.Errorf("EncodeBytes() error = %v, want UnsupportedFormatError{8}", err)
	}
}

func TestWriteSeeker(t *testing.T) {
	t.Parallel()

	ws := &writeSeeker{}
	ws.Write([]byte("hello world"))

	if _, err := ws.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	ws.Write([]byte("there"))

	if _, err := ws.Seek(2, io.SeekEnd); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	ws.Write([]byte("!"))

	if got, want := string(ws.Bytes()), "hello there\x00\x00!"; got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}

	if _, err := ws.Seek(-100, io.SeekCurrent); err == nil {
		t.Error("Seek() to a negative position should fail")
	}
}

func BenchmarkEncodeBytes_PCM16(b *testing.B) {
	src := audio.NewBuffer(2, 44100, 44100)
	for i := range src.Data {
		src.Data[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := EncodeBytes(src, 16); err != nil {
			b.Fatal(err)
		}
	}
}
