// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
)

// FormatError reports a structurally invalid or truncated RIFF/WAVE buffer.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "wav: invalid file: " + e.Reason
}

// UnsupportedFormatError reports a well formed file whose sample encoding is
// not handled.
type UnsupportedFormatError struct {
	BitsPerSample int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("wav: unsupported bit depth: %d", e.BitsPerSample)
}

var (
	ErrTooShort         = &FormatError{Reason: "too short"}
	ErrBadMagic         = &FormatError{Reason: "bad magic"}
	ErrMissingFmtChunk  = &FormatError{Reason: "missing fmt chunk"}
	ErrMissingDataChunk = &FormatError{Reason: "missing data chunk"}
)
