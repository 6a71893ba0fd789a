// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"

	"github.com/musicinmybrain/libaiff2/codec"
)

// AIFF-C compression types.
var (
	CompressionNone = Tag{'N', 'O', 'N', 'E'}
	CompressionLPCM = Tag{'l', 'p', 'c', 'm'}
	CompressionTwos = Tag{'t', 'w', 'o', 's'}
	CompressionSowt = Tag{'s', 'o', 'w', 't'}
	CompressionULAW = Tag{'U', 'L', 'A', 'W'}
	CompressionUlaw = Tag{'u', 'l', 'a', 'w'}
	CompressionALAW = Tag{'A', 'L', 'A', 'W'}
	CompressionAlaw = Tag{'a', 'l', 'a', 'w'}
	CompressionFL32 = Tag{'F', 'L', '3', '2'}
	CompressionFl32 = Tag{'f', 'l', '3', '2'}
)

// compression describes how a compression type is decoded. Zero bits or
// segment mean the COMM values apply.
type compression struct {
	encoding codec.Encoding
	order    binary.ByteOrder
	bits     int
	segment  int
	name     string
}

var compressions = map[Tag]compression{
	CompressionNone: {encoding: codec.LPCM, order: binary.BigEndian, name: "Signed big-endian linear PCM"},
	CompressionLPCM: {encoding: codec.LPCM, order: binary.BigEndian},
	CompressionTwos: {encoding: codec.LPCM, order: binary.BigEndian, name: "Signed big-endian linear PCM"},
	CompressionSowt: {encoding: codec.LPCM, order: binary.LittleEndian, name: "Signed little-endian linear PCM"},
	CompressionULAW: {encoding: codec.ULaw, bits: 14, segment: 2, name: "Signed logarithmic 8-bit mu-Law PCM"},
	CompressionUlaw: {encoding: codec.ULaw, bits: 14, segment: 2},
	CompressionALAW: {encoding: codec.ALaw, bits: 13, segment: 2, name: "Signed logarithmic 8-bit A-Law PCM"},
	CompressionAlaw: {encoding: codec.ALaw, bits: 13, segment: 2},
	CompressionFL32: {encoding: codec.Float32, bits: 32, segment: 4, name: "Signed big-endian IEEE-754 single-precision floating point PCM"},
	CompressionFl32: {encoding: codec.Float32, bits: 32, segment: 4},
}

// CompressionName returns the descriptive name written for a compression
// type, or "" when none is defined.
func CompressionName(t Tag) string {
	return compressions[t].name
}

// compressionFor returns the compression type written for an encoding.
func compressionFor(enc codec.Encoding, order binary.ByteOrder) Tag {
	switch enc {
	case codec.ULaw:
		return CompressionULAW
	case codec.ALaw:
		return CompressionALAW
	case codec.Float32:
		return CompressionFL32
	}

	if littleEndian(order) {
		return CompressionSowt
	}
	return CompressionNone
}
