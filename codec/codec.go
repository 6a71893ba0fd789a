// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Codec decodes and encodes the samples of one encoding.
type Codec interface {
	// Encoding reports which encoding the codec implements.
	Encoding() Encoding

	// SegmentSize is the size in bytes of one decoded native sample.
	SegmentSize() int

	// StoredSize is the size in bytes of one sample in the sound data.
	StoredSize() int

	// Read fills dst with whole native samples and returns the number of
	// bytes written. It returns 0, io.EOF once the stream is exhausted and
	// io.ErrShortBuffer when dst is not empty but holds no whole sample.
	Read(s *Stream, dst []byte) (int, error)

	// ReadFloat fills dst with samples scaled to [-1, 1) and returns the
	// number of samples written.
	ReadFloat(s *Stream, dst []float32) (int, error)

	// Seek positions the stream on the given frame.
	Seek(s *Stream, frame uint64) error

	// Encode appends the on-disk form of the native samples in src to dst.
	Encode(dst, src []byte) ([]byte, error)
}

// New returns the codec for enc. segmentSize and order only matter for
// LPCM; a nil order means big-endian.
func New(enc Encoding, segmentSize int, order binary.ByteOrder) (Codec, error) {
	switch enc {
	case LPCM:
		return newLPCM(segmentSize, order)
	case ULaw:
		return g711Codec{law: ULaw}, nil
	case ALaw:
		return g711Codec{law: ALaw}, nil
	case Float32:
		return float32Codec{}, nil
	default:
		return nil, fmt.Errorf("%s: %w", enc, ErrUnsupportedEncoding)
	}
}

// hostLittleEndian reports the byte order of binary.NativeEndian.
var hostLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

func isLittleEndian(order binary.ByteOrder) bool {
	return order.Uint16([]byte{1, 0}) == 1
}

func checkAligned(n, size int) error {
	if n%size != 0 {
		return fmt.Errorf("%d bytes for %d-byte samples: %w", n, size, ErrMisaligned)
	}
	return nil
}

// checkRoom rejects a non-empty dst too small for one decoded sample.
func checkRoom(n, size int) error {
	if n > 0 && n < size {
		return fmt.Errorf("%d bytes for %d-byte samples: %w", n, size, io.ErrShortBuffer)
	}
	return nil
}
