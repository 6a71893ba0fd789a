// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"math"

	"github.com/musicinmybrain/libaiff2/utils"
)

// float32Codec handles big-endian IEEE-754 single precision samples,
// decoded to the 32-bit integer range.
type float32Codec struct{}

func (float32Codec) Encoding() Encoding { return Float32 }
func (float32Codec) SegmentSize() int   { return 4 }
func (float32Codec) StoredSize() int    { return 4 }

func (float32Codec) Read(s *Stream, dst []byte) (int, error) {
	if err := checkRoom(len(dst), 4); err != nil {
		return 0, err
	}

	n := len(dst) &^ 3
	got, err := s.fill(dst[:n])
	got &^= 3

	for i := 0; i < got; i += 4 {
		v := Float32Decode(binary.BigEndian.Uint32(dst[i:]))
		binary.NativeEndian.PutUint32(dst[i:], uint32(v))
	}

	return got, err
}

func (float32Codec) ReadFloat(s *Stream, dst []float32) (int, error) {
	raw, err := s.fillRaw(len(dst) * 4)
	n := len(raw) / 4
	for i := range n {
		dst[i] = utils.Int32ToFloat32(Float32Decode(binary.BigEndian.Uint32(raw[4*i:])))
	}

	return n, err
}

func (float32Codec) Seek(s *Stream, frame uint64) error {
	return s.seekFrame(frame, 4)
}

func (float32Codec) Encode(dst, src []byte) ([]byte, error) {
	if err := checkAligned(len(src), 4); err != nil {
		return dst, err
	}

	for i := 0; i < len(src); i += 4 {
		v := int32(binary.NativeEndian.Uint32(src[i:]))
		dst = binary.BigEndian.AppendUint32(dst, Float32Encode(v))
	}

	return dst, nil
}

// Float32Decode quantizes the IEEE-754 single precision value with the
// given bits to the signed 31-bit range, using integer arithmetic only.
//
// Magnitudes of 1.0 and above saturate: positive values and +Inf give
// math.MaxInt32, negative values and -Inf give math.MinInt32. NaN gives 0.
func Float32Decode(bits uint32) int32 {
	neg := bits>>31 != 0
	exp := int((bits >> 23) & 0xFF)
	mant := bits & 0x7FFFFF

	switch exp {
	case 0xFF:
		if mant != 0 {
			return 0
		}
		return saturate(neg)
	case 0:
		// denormal, no hidden bit
		exp = -126
	default:
		mant |= 0x800000
		exp -= 127
	}

	// mant * 2^(exp-23) scaled by 2^31
	shift := exp + 8
	if shift >= 8 {
		return saturate(neg)
	}
	if shift < 0 {
		if shift <= -32 {
			return 0
		}
		mant >>= uint(-shift)
	} else {
		mant <<= uint(shift)
	}

	if neg {
		return -int32(mant)
	}
	return int32(mant)
}

func saturate(neg bool) int32 {
	if neg {
		return math.MinInt32
	}
	return math.MaxInt32
}

// Float32Encode converts a 32-bit sample to IEEE-754 single precision bits,
// scaling math.MinInt32 to -1.0. The result is rounded to nearest, so
// math.MaxInt32 encodes as 1.0.
func Float32Encode(v int32) uint32 {
	return math.Float32bits(utils.Int32ToFloat32(v))
}
