// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"testing"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(io.Reader) (Source, error) {
	return NewBufferSource(NewBuffer(2, 44100, 100)), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}
	registry.Register("wav", decoder)

	tests := []struct {
		key    string
		wantOK bool
	}{
		{key: "wav", wantOK: true},
		{key: "WAV", wantOK: true},
		{key: ".wav", wantOK: true},
		{key: ".Wav", wantOK: true},
		{key: "mp3", wantOK: false},
		{key: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := registry.Get(tt.key)
		if ok != tt.wantOK {
			t.Errorf("Get(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
		}
		if ok && got != decoder {
			t.Errorf("Get(%q) returned a different decoder", tt.key)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &stubDecoder{name: "first"}
	second := &stubDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register(".WAV", second)

	got, ok := registry.Get("wav")
	if !ok || got != second {
		t.Error("Register() did not overwrite an existing key")
	}
	if formats := registry.Formats(); len(formats) != 1 {
		t.Errorf("Formats() = %v, want a single key", formats)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, key := range []string{"wav", "wave", "rf64"} {
		registry.Register(key, &stubDecoder{name: key})
	}

	got := registry.Formats()
	sort.Strings(got)
	want := []string{"rf64", "wav", "wave"}

	if len(got) != len(want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
		go func() {
			_, _ = registry.Get("format")
			_ = registry.Formats()
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	if got, ok := registry.Get("format"); !ok || got != decoder {
		t.Error("Get() failed after concurrent operations")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &stubDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get(".wav")
	}
}
