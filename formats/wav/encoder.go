// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

// Encode writes b as a WAV file at the given bit depth. 16 and 24-bit output
// is integer PCM, 32-bit output is IEEE float. The RIFF and data chunk sizes
// are computed from the number of samples written.
func Encode(w io.WriteSeeker, b *audio.Buffer, bitDepth int) error {
	switch bitDepth {
	case 16, 24:
		return encodePCM(w, b, bitDepth)
	case 32:
		return writeFloat32(w, b)
	default:
		return &UnsupportedFormatError{BitsPerSample: bitDepth}
	}
}

// EncodeBytes is Encode into memory.
func EncodeBytes(b *audio.Buffer, bitDepth int) ([]byte, error) {
	ws := &writeSeeker{}
	if err := Encode(ws, b, bitDepth); err != nil {
		return nil, err
	}
	return ws.Bytes(), nil
}

func encodePCM(w io.WriteSeeker, b *audio.Buffer, bitDepth int) error {
	channels := max(b.Channels, 1)
	frames := b.Frames()

	ints := make([]int, frames*channels)
	for i := range ints {
		ints[i] = utils.FloatToPCM(b.Data[i], bitDepth)
	}

	enc := gowav.NewEncoder(w, b.SampleRate, bitDepth, channels, formatPCM)
	err := enc.Write(&goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  b.SampleRate,
		},
		Data:           ints,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("encoding %d-bit pcm: %w", bitDepth, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}
	return nil
}

// writeSeeker is an in-memory io.WriteSeeker. Writing past the end grows the
// buffer, zero filling any gap.
type writeSeeker struct {
	buf []byte
	pos int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.pos + int64(len(p))
	if end > int64(len(ws.buf)) {
		if end > int64(cap(ws.buf)) {
			grown := make([]byte, end, max(end, 2*int64(cap(ws.buf))))
			copy(grown, ws.buf)
			ws.buf = grown
		} else {
			ws.buf = ws.buf[:end]
		}
	}

	n := copy(ws.buf[ws.pos:], p)
	ws.pos += int64(n)
	return n, nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = ws.pos + offset
	case io.SeekEnd:
		next = int64(len(ws.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, fmt.Errorf("negative position: %d", next)
	}
	ws.pos = next
	return next, nil
}

func (ws *writeSeeker) Bytes() []byte { return ws.buf }
