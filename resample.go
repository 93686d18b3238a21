// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"fmt"

	"github.com/ik5/audfx/audio"
)

// Mono is a Stage averaging all channels into one.
func Mono(in *audio.Buffer) *audio.Buffer {
	return audio.ToMono(in)
}

// ResampleTo returns a Stage converting buffers to targetRate with the
// cubic resampler. Buffers without a valid sample rate pass through as
// copies.
func ResampleTo(targetRate int) (Stage, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("target rate must be > 0: %d", targetRate)
	}

	return func(in *audio.Buffer) *audio.Buffer {
		out, err := audio.Resample(in, targetRate)
		if err != nil {
			return in.Clone()
		}
		return out
	}, nil
}
