// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/wav"
)

// Stage is one transform in a processing chain. It must not modify its
// input.
type Stage func(*audio.Buffer) *audio.Buffer

// Chain composes stages left to right. nil stages are skipped. The returned
// Stage always yields a new buffer, even when no stage runs.
func Chain(stages ...Stage) Stage {
	return func(in *audio.Buffer) *audio.Buffer {
		out := in
		for _, stage := range stages {
			if stage == nil {
				continue
			}
			out = stage(out)
		}

		if out == in {
			return in.Clone()
		}
		return out
	}
}

// ProcessBytes decodes a WAV buffer, runs it through stages and encodes the
// result at bitDepth. A bitDepth of 0 keeps the depth of the input.
func ProcessBytes(data []byte, bitDepth int, stages ...Stage) ([]byte, error) {
	header, buf, err := wav.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	if bitDepth == 0 {
		bitDepth = header.BitsPerSample
	}

	out, err := wav.EncodeBytes(Chain(stages...)(buf), bitDepth)
	if err != nil {
		return nil, fmt.Errorf("encoding: %w", err)
	}
	return out, nil
}

// ProcessBatch runs ProcessBytes over every input with at most limit
// buffers in flight (limit <= 0 means no limit). Results keep the order of
// inputs. The first failure cancels the inputs that have not started yet and
// is returned together with the index of the failing input.
func ProcessBatch(ctx context.Context, inputs [][]byte, bitDepth, limit int, stages ...Stage) ([][]byte, error) {
	results := make([][]byte, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, data := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := ProcessBytes(data, bitDepth, stages...)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
