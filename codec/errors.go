// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	// ErrUnsupportedEncoding indicates a compression type with no codec
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")

	// ErrUnsupportedSampleSize indicates an LPCM segment size outside 1..4 bytes
	ErrUnsupportedSampleSize = errors.New("unsupported sample size")

	// ErrSeekPastEnd indicates a frame position at or beyond the end of the sound data
	ErrSeekPastEnd = errors.New("seek past end of sound data")

	// ErrTruncated indicates the file ended before the declared sound data did
	ErrTruncated = errors.New("sound data truncated")

	// ErrMisaligned indicates a sample buffer that is not a whole number of samples
	ErrMisaligned = errors.New("buffer length is not a multiple of the sample size")
)
