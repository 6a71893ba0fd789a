// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/bluenviron/mediacommon/v2/pkg/codecs/g711"
)

// g711Codec handles µ-law and A-law: one stored byte per sample, decoded
// to a 16-bit native sample.
type g711Codec struct {
	law Encoding
}

func (c g711Codec) Encoding() Encoding { return c.law }
func (c g711Codec) SegmentSize() int   { return 2 }
func (c g711Codec) StoredSize() int    { return 1 }

// expand decodes raw into 16-bit big-endian LPCM.
func (c g711Codec) expand(raw []byte) []byte {
	if c.law == ALaw {
		var pcm g711.Alaw
		pcm.Unmarshal(raw)
		return pcm
	}

	var pcm g711.Mulaw
	pcm.Unmarshal(raw)
	return pcm
}

func (c g711Codec) Read(s *Stream, dst []byte) (int, error) {
	if err := checkRoom(len(dst), 2); err != nil {
		return 0, err
	}

	raw, err := s.fillRaw(len(dst) / 2)
	pcm := c.expand(raw)
	for i := range len(raw) {
		binary.NativeEndian.PutUint16(dst[2*i:], binary.BigEndian.Uint16(pcm[2*i:]))
	}

	return 2 * len(raw), err
}

func (c g711Codec) ReadFloat(s *Stream, dst []float32) (int, error) {
	raw, err := s.fillRaw(len(dst))
	pcm := c.expand(raw)
	for i := range len(raw) {
		dst[i] = float32(int16(binary.BigEndian.Uint16(pcm[2*i:]))) / 32768
	}

	return len(raw), err
}

func (c g711Codec) Seek(s *Stream, frame uint64) error {
	return s.seekFrame(frame, 1)
}

func (c g711Codec) Encode(dst, src []byte) ([]byte, error) {
	if err := checkAligned(len(src), 2); err != nil {
		return dst, err
	}

	be := make([]byte, len(src))
	for i := 0; i < len(src); i += 2 {
		binary.BigEndian.PutUint16(be[i:], binary.NativeEndian.Uint16(src[i:]))
	}

	var (
		out []byte
		err error
	)
	if c.law == ALaw {
		out, err = g711.Alaw(be).Marshal()
	} else {
		out, err = g711.Mulaw(be).Marshal()
	}
	if err != nil {
		return dst, fmt.Errorf("encoding %s: %w", c.law, err)
	}

	return append(dst, out...), nil
}
