// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/ik5/audfx/internal/audiotest"
)

func TestToMono(t *testing.T) {
	t.Parallel()

	stereo := Interleave(8000, []float32{0.4, 1, -1}, []float32{0.6, 0, 1})
	mono := ToMono(stereo)

	if mono.Channels != 1 || mono.SampleRate != 8000 {
		t.Fatalf("ToMono() layout = %d ch @ %d Hz", mono.Channels, mono.SampleRate)
	}
	audiotest.RequireSamplesNearlyEqual(t, mono.Data, []float32{0.5, 0.5, 0}, 1e-7)

	// input untouched
	audiotest.RequireSamplesNearlyEqual(t, stereo.Data, []float32{0.4, 0.6, 1, 0, -1, 1}, 0)
}

func TestToMono_MultiChannel(t *testing.T) {
	t.Parallel()

	b := NewBuffer(4, 8000, 6000)
	for f := range b.Frames() {
		for c := range 4 {
			b.Data[f*4+c] = float32(c) / 10
		}
	}

	mono := ToMono(b)
	if mono.Frames() != 6000 {
		t.Fatalf("Frames() = %d, want 6000", mono.Frames())
	}
	for i, v := range mono.Data {
		if math.Abs(float64(v)-0.15) > 1e-6 {
			t.Fatalf("[%d] = %v, want 0.15", i, v)
		}
	}
}

func TestToMono_MonoIsCopy(t *testing.T) {
	t.Parallel()

	b := NewMono(8000, []float32{1, 2})
	mono := ToMono(b)
	mono.Data[0] = 5

	if b.Data[0] != 1 {
		t.Error("ToMono() on mono input shares the sample slice")
	}
}

func TestResample_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
		channels int
	}{
		{name: "down 44.1k to 8k", from: 44100, to: 8000, channels: 1},
		{name: "up 8k to 16k", from: 8000, to: 16000, channels: 1},
		{name: "stereo 48k to 44.1k", from: 48000, to: 44100, channels: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// one second of a low tone
			in, err := ReadAll(audiotest.NewSineSource(tt.from, tt.channels, tt.from, 220))
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			out, err := Resample(in, tt.to)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}

			if out.SampleRate != tt.to || out.Channels != tt.channels {
				t.Fatalf("layout = %d ch @ %d Hz", out.Channels, out.SampleRate)
			}

			tolerance := tt.to / 50
			if diff := out.Frames() - tt.to; diff < -tolerance || diff > tolerance {
				t.Errorf("Frames() = %d, want ≈%d (±%d)", out.Frames(), tt.to, tolerance)
			}
			audiotest.RequireFinite(t, out.Data)
		})
	}
}

func TestResample_ConstantStaysConstant(t *testing.T) {
	t.Parallel()

	in := NewBuffer(1, 16000, 1600)
	for i := range in.Data {
		in.Data[i] = 0.5
	}

	out, err := Resample(in, 11025)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	for i, v := range out.Data {
		if math.Abs(float64(v)-0.5) > 1e-4 {
			t.Fatalf("[%d] = %v, want ≈0.5", i, v)
		}
	}
}

func TestResample_SameRateAndErrors(t *testing.T) {
	t.Parallel()

	in := NewMono(8000, []float32{1, 2, 3})
	out, err := Resample(in, 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	audiotest.RequireSamplesNearlyEqual(t, out.Data, in.Data, 0)

	if _, err := Resample(in, 0); err == nil {
		t.Error("Resample() to 0 Hz should fail")
	}
	if _, err := Resample(NewMono(0, []float32{1}), 8000); err == nil {
		t.Error("Resample() from 0 Hz should fail")
	}
}

func TestResample_Empty(t *testing.T) {
	t.Parallel()

	out, err := Resample(NewBuffer(2, 44100, 0), 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if out.Len() != 0 || out.Channels != 2 {
		t.Errorf("Resample() of empty buffer = %d samples, %d ch", out.Len(), out.Channels)
	}
}
