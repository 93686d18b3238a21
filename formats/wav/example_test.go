// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"errors"
	"fmt"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/wav"
)

// Example_roundTrip encodes a buffer and decodes it again.
func Example_roundTrip() {
	buf := audio.NewMono(16000, []float32{0, 0.25, 0.5, -0.5, -1})

	data, err := wav.EncodeBytes(buf, 16)
	if err != nil {
		fmt.Println("encode:", err)
		return
	}

	header, decoded, err := wav.Decode(data)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	fmt.Printf("%d Hz, %d channel(s), %d bits\n", header.SampleRate, header.Channels, header.BitsPerSample)
	fmt.Println(decoded.Data)
	// Output:
	// 16000 Hz, 1 channel(s), 16 bits
	// [0 0.25 0.5 -0.5 -1]
}

// Example_errors shows how decode failures are classified.
func Example_errors() {
	_, err := wav.ParseHeader(make([]byte, 43))
	fmt.Println(errors.Is(err, wav.ErrTooShort), err)

	_, err = wav.ParseHeader(make([]byte, 44))
	fmt.Println(errors.Is(err, wav.ErrBadMagic), err)

	data, _ := wav.EncodeBytes(audio.NewMono(8000, []float32{0}), 16)
	data[34] = 8 // rewrite bits per sample
	_, _, err = wav.Decode(data)

	var unsupported *wav.UnsupportedFormatError
	fmt.Println(errors.As(err, &unsupported), err)
	// Output:
	// true wav: invalid file: too short
	// true wav: invalid file: bad magic
	// true wav: unsupported bit depth: 8
}
