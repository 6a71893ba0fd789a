// SPDX-License-Identifier: EPL-2.0

package iff

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// HeaderSize is the size of the FORM header.
	HeaderSize = 12
	// ChunkHeaderSize is the size of a tag plus length pair.
	ChunkHeaderSize = 8
)

// Header is the container header at the start of the file. Length counts
// the bytes following the length field itself.
type Header struct {
	Length uint32
	Form   Tag
}

// ReadHeader reads and validates the FORM header. It does not check the
// form type.
func ReadHeader(r io.Reader) (Header, error) {
	var b [HeaderSize]byte
	if _, err := io.ReadFull(r, b[:4]); err != nil {
		return Header{}, fmt.Errorf("reading FORM tag: %w", err)
	}
	if Tag(b[0:4]) != TagFORM {
		return Header{}, ErrNotForm
	}
	if _, err := io.ReadFull(r, b[4:]); err != nil {
		return Header{}, fmt.Errorf("reading FORM header: %w", err)
	}

	h := Header{
		Length: binary.BigEndian.Uint32(b[4:8]),
		Form:   Tag(b[8:12]),
	}
	if h.Length == 0 {
		return Header{}, ErrEmptyForm
	}

	return h, nil
}

// AppendHeader appends the 12-byte FORM header to dst.
func AppendHeader(dst []byte, h Header) []byte {
	dst = append(dst, TagFORM[:]...)
	dst = binary.BigEndian.AppendUint32(dst, h.Length)
	return append(dst, h.Form[:]...)
}

// AppendChunkHeader appends an 8-byte chunk header to dst.
func AppendChunkHeader(dst []byte, tag Tag, length uint32) []byte {
	dst = append(dst, tag[:]...)
	return binary.BigEndian.AppendUint32(dst, length)
}

// Padded returns n rounded up to the next even number.
func Padded(n uint32) uint32 {
	return n + n&1
}

// Find scans the chunks following the FORM header for tag and returns its
// declared payload length, unrounded. On success the read position is the
// first payload byte.
//
// The scan always restarts at offset 12, so callers may look chunks up in
// any order. Reaching the end of the file yields ErrChunkNotFound.
func Find(rs io.ReadSeeker, tag Tag) (uint32, error) {
	if _, err := rs.Seek(HeaderSize, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking to first chunk: %w", err)
	}

	var b [ChunkHeaderSize]byte
	for {
		if _, err := io.ReadFull(rs, b[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, fmt.Errorf("%s: %w", tag, ErrChunkNotFound)
			}
			return 0, fmt.Errorf("reading chunk header: %w", err)
		}

		length := binary.BigEndian.Uint32(b[4:8])
		if Tag(b[0:4]) == tag {
			return length, nil
		}

		if _, err := rs.Seek(int64(Padded(length)), io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("skipping %s chunk: %w", Tag(b[0:4]), err)
		}
	}
}
