// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
	"io"
)

// Stream is a cursor over the sample bytes of a sound data chunk.
type Stream struct {
	rs       io.ReadSeeker
	start    int64
	pos      uint32
	length   uint32
	channels int

	// raw holds encoded bytes for codecs whose decoded width differs
	raw Buffer
}

// NewStream returns a stream over length bytes starting at absolute offset
// start. The read position of rs must already be at start.
func NewStream(rs io.ReadSeeker, start int64, length uint32, channels int) *Stream {
	return &Stream{
		rs:       rs,
		start:    start,
		length:   length,
		channels: max(channels, 1),
	}
}

// Pos returns the byte offset of the cursor within the sound data.
func (s *Stream) Pos() uint32 { return s.pos }

// Remaining returns the number of bytes left to read.
func (s *Stream) Remaining() uint32 { return s.length - s.pos }

// Channels returns the number of interleaved channels.
func (s *Stream) Channels() int { return s.channels }

// Release drops the scratch memory held by the stream.
func (s *Stream) Release() { s.raw.Release() }

// Shrink drops the stream's scratch memory when it exceeds n bytes.
func (s *Stream) Shrink(n int) { s.raw.Shrink(n) }

// fill reads up to len(p) bytes, clamped to the remaining sound data.
func (s *Stream) fill(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := min(uint32(len(p)), s.Remaining())
	if n == 0 {
		return 0, io.EOF
	}

	got, err := io.ReadFull(s.rs, p[:n])
	s.pos += uint32(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return got, ErrTruncated
		}
		return got, fmt.Errorf("reading sound data: %w", err)
	}

	return got, nil
}

// fillRaw reads n encoded bytes into the stream's scratch buffer.
func (s *Stream) fillRaw(n int) ([]byte, error) {
	raw := s.raw.Grow(n)
	got, err := s.fill(raw)
	return raw[:got], err
}

// seek moves the cursor to byte offset off within the sound data.
func (s *Stream) seek(off uint64) error {
	if off >= uint64(s.length) {
		return ErrSeekPastEnd
	}

	if _, err := s.rs.Seek(s.start+int64(off), io.SeekStart); err != nil {
		return fmt.Errorf("seeking sound data: %w", err)
	}
	s.pos = uint32(off)

	return nil
}

// seekFrame positions the cursor on frame using the stored sample size.
func (s *Stream) seekFrame(frame uint64, storedSize int) error {
	frameSize := uint64(s.channels) * uint64(storedSize)
	if frame >= uint64(s.length)/frameSize {
		return ErrSeekPastEnd
	}
	return s.seek(frame * frameSize)
}

// Resume moves the underlying reader back to the cursor after the caller
// repositioned it to read other chunks.
func (s *Stream) Resume() error {
	if _, err := s.rs.Seek(s.start+int64(s.pos), io.SeekStart); err != nil {
		return fmt.Errorf("resuming sound data: %w", err)
	}
	return nil
}
