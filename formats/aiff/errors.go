// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAiffFile indicates the input does not start with a valid FORM header
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedForm indicates a FORM whose type is neither AIFF nor AIFC
	ErrUnsupportedForm = errors.New("unsupported FORM type")

	// ErrUnsupportedAiffLayout indicates a channel count, sample size or
	// sample rate that cannot be written
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrMalformedChunk indicates a chunk whose contents contradict its
	// declared length
	ErrMalformedChunk = errors.New("malformed chunk")

	// ErrNotAttribute indicates a tag that is not one of the text chunks
	ErrNotAttribute = errors.New("not a text attribute")

	// ErrNotReady indicates a write call made out of protocol order. The
	// file is left untouched.
	ErrNotReady = errors.New("operation not valid in the current state")

	// ErrIncomplete is returned by Writer.Close when the sound data was
	// never finished. The FORM header is still written.
	ErrIncomplete = errors.New("file closed before sound data was finished")

	// ErrTooManyMarkers indicates the 65535 marker limit was reached
	ErrTooManyMarkers = errors.New("too many markers")

	// ErrClosed indicates use of a closed session
	ErrClosed = errors.New("session closed")
)

// ChunkError describes a chunk that could not be decoded.
type ChunkError struct {
	Tag    Tag
	Offset int64
	Reason string
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("%s chunk at offset %d: %s", e.Tag, e.Offset, e.Reason)
}

func (e *ChunkError) Unwrap() error { return ErrMalformedChunk }
