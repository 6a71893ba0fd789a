// SPDX-License-Identifier: EPL-2.0

// Package codec converts AIFF sound data between its on-disk encoding and
// host-native samples.
//
// The set of encodings is closed:
//   - LPCM: signed linear PCM, 8, 16, 24 or 32 bits, big or little endian
//   - ULaw: G.711 µ-law, one byte per sample, decoded to 16-bit
//   - ALaw: G.711 A-law, one byte per sample, decoded to 16-bit
//   - Float32: IEEE-754 single precision, decoded to 32-bit integers
//
// # Native Samples
//
// Codec.Read produces samples in host byte order (binary.NativeEndian):
//
//	segment size 1: int8
//	segment size 2: int16
//	segment size 3: packed 24-bit, host byte order
//	segment size 4: int32
//
// Codec.Encode takes the same layout and produces the on-disk bytes.
//
// # Streams
//
// A Stream is the cursor over the sound data of one file. Codecs never read
// past its end: requests are clamped to the remaining bytes and an exhausted
// stream reports 0, io.EOF.
//
//	c, _ := codec.New(codec.LPCM, 2, binary.BigEndian)
//	s := codec.NewStream(file, dataOffset, dataLen, channels)
//	buf := make([]byte, 4096)
//	n, err := c.Read(s, buf)
package codec
