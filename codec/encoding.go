// SPDX-License-Identifier: EPL-2.0

package codec

// Encoding identifies how samples are stored in the sound data chunk.
type Encoding int

const (
	// Unknown is an AIFF-C compression type this package cannot decode.
	Unknown Encoding = iota
	LPCM
	ULaw
	ALaw
	Float32
)

func (e Encoding) String() string {
	switch e {
	case LPCM:
		return "lpcm"
	case ULaw:
		return "ulaw"
	case ALaw:
		return "alaw"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}
