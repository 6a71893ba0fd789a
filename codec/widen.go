// SPDX-License-Identifier: EPL-2.0

package codec

import "encoding/binary"

// Widen converts native samples of segmentSize bytes in src to
// left-aligned 32-bit samples in dst and returns the number converted.
// An 8-bit sample lands in the top byte, a 16-bit one in the top half.
func Widen(dst []int32, src []byte, segmentSize int) int {
	n := min(len(dst), len(src)/segmentSize)

	for i := range n {
		b := src[i*segmentSize:]
		switch segmentSize {
		case 1:
			dst[i] = int32(int8(b[0])) << 24
		case 2:
			dst[i] = int32(int16(binary.NativeEndian.Uint16(b))) << 16
		case 3:
			if hostLittleEndian {
				dst[i] = int32(uint32(b[2])<<24 | uint32(b[1])<<16 | uint32(b[0])<<8)
			} else {
				dst[i] = int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8)
			}
		case 4:
			dst[i] = int32(binary.NativeEndian.Uint32(b))
		}
	}

	return n
}

// Narrow appends src to dst as native samples of segmentSize bytes,
// keeping the most significant bits of each value.
func Narrow(dst []byte, src []int32, segmentSize int) []byte {
	for _, v := range src {
		switch segmentSize {
		case 1:
			dst = append(dst, byte(v>>24))
		case 2:
			dst = binary.NativeEndian.AppendUint16(dst, uint16(v>>16))
		case 3:
			if hostLittleEndian {
				dst = append(dst, byte(v>>8), byte(v>>16), byte(v>>24))
			} else {
				dst = append(dst, byte(v>>24), byte(v>>16), byte(v>>8))
			}
		case 4:
			dst = binary.NativeEndian.AppendUint32(dst, uint32(v))
		}
	}

	return dst
}
