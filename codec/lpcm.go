// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"slices"
)

// lpcm handles signed linear PCM of 1 to 4 bytes per sample.
type lpcm struct {
	size  int
	order binary.ByteOrder
	// swap is set when the file byte order differs from the host's
	swap bool
}

var lpcmScale = [...]float64{1: 128, 2: 32768, 3: 8388608, 4: 2147483648}

func newLPCM(size int, order binary.ByteOrder) (*lpcm, error) {
	if size < 1 || size > 4 {
		return nil, ErrUnsupportedSampleSize
	}
	if order == nil {
		order = binary.BigEndian
	}

	return &lpcm{
		size:  size,
		order: order,
		swap:  size > 1 && isLittleEndian(order) != hostLittleEndian,
	}, nil
}

func (c *lpcm) Encoding() Encoding { return LPCM }
func (c *lpcm) SegmentSize() int   { return c.size }
func (c *lpcm) StoredSize() int    { return c.size }

func (c *lpcm) Read(s *Stream, dst []byte) (int, error) {
	if err := checkRoom(len(dst), c.size); err != nil {
		return 0, err
	}

	n := len(dst) - len(dst)%c.size
	got, err := s.fill(dst[:n])
	got -= got % c.size
	c.reorder(dst[:got])

	return got, err
}

func (c *lpcm) ReadFloat(s *Stream, dst []float32) (int, error) {
	raw, err := s.fillRaw(len(dst) * c.size)
	n := len(raw) / c.size
	scale := lpcmScale[c.size]
	le := isLittleEndian(c.order)

	for i := range n {
		b := raw[i*c.size : (i+1)*c.size]
		var v int32
		switch c.size {
		case 1:
			v = int32(int8(b[0]))
		case 2:
			v = int32(int16(c.order.Uint16(b)))
		case 3:
			if le {
				v = int32(uint32(b[2])<<24|uint32(b[1])<<16|uint32(b[0])<<8) >> 8
			} else {
				v = int32(uint32(b[0])<<24|uint32(b[1])<<16|uint32(b[2])<<8) >> 8
			}
		case 4:
			v = int32(c.order.Uint32(b))
		}
		dst[i] = float32(float64(v) / scale)
	}

	return n, err
}

func (c *lpcm) Seek(s *Stream, frame uint64) error {
	return s.seekFrame(frame, c.size)
}

func (c *lpcm) Encode(dst, src []byte) ([]byte, error) {
	if err := checkAligned(len(src), c.size); err != nil {
		return dst, err
	}

	start := len(dst)
	dst = append(dst, src...)
	c.reorder(dst[start:])

	return dst, nil
}

// reorder converts whole samples between file and host byte order in place.
// The conversion is its own inverse.
func (c *lpcm) reorder(b []byte) {
	if !c.swap {
		return
	}

	for i := 0; i+c.size <= len(b); i += c.size {
		slices.Reverse(b[i : i+c.size])
	}
}
