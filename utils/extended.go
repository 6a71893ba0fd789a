// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

const (
	extendedBias   = 16383
	extendedMaxExp = 0x7FFF

	// smallest frexp exponent stored without denormalizing the mantissa
	extendedMinExp = 1 - extendedBias
)

// ReadExtended decodes a big-endian 80-bit extended precision number, as
// used by the COMM chunk sample rate field.
//
// The 64-bit mantissa has no hidden bit. A zero exponent and mantissa
// decode to a signed zero, the maximum exponent with a zero mantissa to a
// signed infinity and with any other mantissa to NaN.
func ReadExtended(b [10]byte) float64 {
	neg := b[0]&0x80 != 0
	exp := int(binary.BigEndian.Uint16(b[0:2]) & extendedMaxExp)
	hi := binary.BigEndian.Uint32(b[2:6])
	lo := binary.BigEndian.Uint32(b[6:10])

	if exp == 0 && hi == 0 && lo == 0 {
		if neg {
			return math.Copysign(0, -1)
		}
		return 0
	}

	if exp == extendedMaxExp {
		if hi == 0 && lo == 0 {
			if neg {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
		return math.NaN()
	}

	exp -= extendedBias
	v := math.Ldexp(float64(hi), exp-31) + math.Ldexp(float64(lo), exp-63)
	if neg {
		return -v
	}
	return v
}

// WriteExtended encodes f as a big-endian 80-bit extended precision number.
// It is the inverse of ReadExtended for every finite float64, including
// negative zero.
func WriteExtended(f float64) (out [10]byte) {
	var (
		exp int
		m   uint64
	)

	if math.Signbit(f) {
		out[0] = 0x80
		f = -f
	}

	switch {
	case f == 0:
		return out
	case math.IsNaN(f):
		out[0] = 0
		exp = extendedMaxExp
		m = 1 << 63
	case math.IsInf(f, 0):
		exp = extendedMaxExp
	default:
		var frac float64
		frac, exp = math.Frexp(f)
		if exp > extendedBias+1 {
			exp = extendedMaxExp
			break
		}

		frac = math.Ldexp(frac, 32)
		t := math.Floor(frac)
		hi := uint32(t)
		lo := uint32(math.Floor(math.Ldexp(frac-t, 32)))
		m = uint64(hi)<<32 | uint64(lo)

		// exponents below the representable range are stored denormalized
		if exp < extendedMinExp {
			m >>= uint(extendedMinExp - exp)
			exp = extendedMinExp
		}
		exp += extendedBias - 1
	}

	out[0] |= byte(exp >> 8)
	out[1] = byte(exp)
	binary.BigEndian.PutUint64(out[2:], m)

	return out
}
