// SPDX-License-Identifier: EPL-2.0

package filters

import (
	"math"

	"github.com/ik5/audfx/audio"
)

const (
	DefaultCorrelationThreshold = 0.3
	DefaultCorrelationWindow    = 1024
)

// VocalRemoval returns left-right over the common length of both channels.
func VocalRemoval(left, right []float32) []float32 {
	n := min(len(left), len(right))
	out := make([]float32, n)
	for i := range out {
		out[i] = left[i] - right[i]
	}
	return out
}

// VocalIsolation returns (left+right)/2 over the common length of both
// channels.
func VocalIsolation(left, right []float32) []float32 {
	n := min(len(left), len(right))
	out := make([]float32, n)
	for i := range out {
		out[i] = (left[i] + right[i]) * 0.5
	}
	return out
}

// DynamicVocalRemoval walks both channels in windows of window samples
// (the last may be shorter). A window whose Pearson correlation exceeds
// threshold in magnitude is treated as vocal and subtracted; any other
// window is averaged. A window of a single sample is copied from left.
//
// window <= 0 uses DefaultCorrelationWindow. Windows where either channel
// is constant have no correlation and are averaged.
func DynamicVocalRemoval(left, right []float32, threshold float64, window int) []float32 {
	if window <= 0 {
		window = DefaultCorrelationWindow
	}

	n := min(len(left), len(right))
	out := make([]float32, n)

	for start := 0; start < n; start += window {
		end := min(start+window, n)
		l, r := left[start:end], right[start:end]
		dst := out[start:end]

		if len(l) <= 1 {
			copy(dst, l)
			continue
		}

		corr, ok := correlation(l, r)
		if ok && math.Abs(corr) > threshold {
			for i := range dst {
				dst[i] = l[i] - r[i]
			}
			continue
		}
		for i := range dst {
			dst[i] = (l[i] + r[i]) * 0.5
		}
	}
	return out
}

// correlation returns the Pearson coefficient of a and b, which must have
// equal length. ok is false when either side has zero variance.
func correlation(a, b []float32) (corr float64, ok bool) {
	n := float64(len(a))

	var meanA, meanB float64
	for i := range a {
		meanA += float64(a[i])
		meanB += float64(b[i])
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da := float64(a[i]) - meanA
		db := float64(b[i]) - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varA*varB), true
}

// RemoveVocals applies VocalRemoval to channels 0 and 1 of buf and returns
// a mono buffer. Mono input is returned as a copy.
func RemoveVocals(buf *audio.Buffer) *audio.Buffer {
	return stereoToMono(buf, VocalRemoval)
}

// IsolateVocals applies VocalIsolation to channels 0 and 1 of buf.
func IsolateVocals(buf *audio.Buffer) *audio.Buffer {
	return stereoToMono(buf, VocalIsolation)
}

// RemoveVocalsDynamic applies DynamicVocalRemoval to channels 0 and 1 of
// buf.
func RemoveVocalsDynamic(buf *audio.Buffer, threshold float64, window int) *audio.Buffer {
	return stereoToMono(buf, func(left, right []float32) []float32 {
		return DynamicVocalRemoval(left, right, threshold, window)
	})
}

func stereoToMono(buf *audio.Buffer, fn func(left, right []float32) []float32) *audio.Buffer {
	if buf.Channels < 2 {
		out := buf.Clone()
		out.Channels = 1
		return out
	}
	return audio.NewMono(buf.SampleRate, fn(buf.Channel(0), buf.Channel(1)))
}
