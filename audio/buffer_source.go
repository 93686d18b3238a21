// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const defaultBufSize = 4096

// BufferSource streams a Buffer through the Source interface so that
// in-memory audio can feed a Resampler or MonoMixer.
type BufferSource struct {
	buf *Buffer
	pos int
}

func NewBufferSource(b *Buffer) *BufferSource {
	return &BufferSource{buf: b}
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *BufferSource) Channels() int   { return max(s.buf.Channels, 1) }
func (s *BufferSource) BufSize() int    { return defaultBufSize }
func (s *BufferSource) Close() error    { return nil }

// Reset rewinds the source to the first frame.
func (s *BufferSource) Reset() { s.pos = 0 }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	// Only whole frames are handed out
	total := s.buf.Frames() * channels
	if s.pos >= total {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Data[s.pos:total])
	s.pos += n

	if s.pos >= total {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src into a Buffer. src is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = defaultBufSize
	}
	// ReadSamples implementations expect whole frames
	size -= size % channels
	if size == 0 {
		size = channels
	}

	out := &Buffer{Channels: channels, SampleRate: src.SampleRate()}
	chunk := make([]float32, size)

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			out.Data = append(out.Data, chunk[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			// a source that stalls without EOF would spin forever
			break
		}
	}

	return out, nil
}
