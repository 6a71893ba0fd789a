// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"

	"github.com/musicinmybrain/libaiff2/audio"
	"github.com/musicinmybrain/libaiff2/codec"
	"github.com/musicinmybrain/libaiff2/internal/iff"
)

type readState int

const (
	// unprepared: the file position is unknown
	unprepared readState = iota
	// prepared: the file position is the sound data cursor
	prepared
	// scanningMarkers: the file position is the next MARK record
	scanningMarkers
)

// Reader decodes an AIFF or AIFF-C file.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	rs     io.ReadSeeker
	closer io.Closer

	format Format
	codec  codec.Codec
	stream *codec.Stream
	state  readState
	closed bool

	markers   int
	markerPos int

	// native holds decoded samples on their way to a wider type
	native codec.Buffer
	wide   []int32
}

// Open opens the named file for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening aiff file: %w", err)
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f

	return r, nil
}

// NewReader validates the container header and reads the format of the
// file held by rs. Sound data is located on the first sample read.
func NewReader(rs io.ReadSeeker) (*Reader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to header: %w", err)
	}

	h, err := iff.ReadHeader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	if h.Form != FormAIFF && h.Form != FormAIFC {
		return nil, fmt.Errorf("%q: %w", h.Form.String(), ErrUnsupportedForm)
	}

	f, err := readFormat(rs, h.Form)
	if err != nil {
		return nil, err
	}

	return &Reader{rs: rs, format: f}, nil
}

// Format returns the audio format read from the COMM chunk.
func (r *Reader) Format() Format { return r.format }

// prepare positions the file on the sound data cursor, locating the SSND
// chunk the first time.
func (r *Reader) prepare() error {
	if r.closed {
		return ErrClosed
	}
	if r.state == prepared {
		return nil
	}

	if r.codec == nil {
		c, err := codec.New(r.format.Encoding, r.format.SegmentSize, r.format.ByteOrder)
		if err != nil {
			return fmt.Errorf("compression %q: %w", r.format.Compression.String(), err)
		}
		r.codec = c
	}

	if r.stream == nil {
		s, err := r.locateSound()
		if err != nil {
			return err
		}
		r.stream = s
	} else if err := r.stream.Resume(); err != nil {
		return err
	}

	r.state = prepared
	return nil
}

func (r *Reader) locateSound() (*codec.Stream, error) {
	n, err := iff.Find(r.rs, iff.TagSSND)
	if errors.Is(err, iff.ErrChunkNotFound) {
		// a file without frames may omit the sound data chunk
		return codec.NewStream(r.rs, 0, 0, r.format.Channels), nil
	}
	if err != nil {
		return nil, fmt.Errorf("locating SSND chunk: %w", err)
	}

	start, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locating SSND chunk: %w", err)
	}
	if n < 8 {
		return nil, &ChunkError{Tag: iff.TagSSND, Offset: start, Reason: fmt.Sprintf("%d bytes, want at least 8", n)}
	}

	var b [8]byte
	if _, err := io.ReadFull(r.rs, b[:]); err != nil {
		return nil, fmt.Errorf("reading SSND chunk: %w", err)
	}
	offset := binary.BigEndian.Uint32(b[0:4])
	if offset > n-8 {
		return nil, &ChunkError{Tag: iff.TagSSND, Offset: start, Reason: fmt.Sprintf("data offset %d beyond chunk end", offset)}
	}

	start += 8 + int64(offset)
	if _, err := r.rs.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to sound data: %w", err)
	}

	return codec.NewStream(r.rs, start, n-8-offset, r.format.Channels), nil
}

// ReadSamples decodes whole samples into p in host byte order, each
// Format().SegmentSize bytes wide, and returns the number of bytes
// written. It returns 0, io.EOF at the end of the sound data.
func (r *Reader) ReadSamples(p []byte) (int, error) {
	if err := r.prepare(); err != nil {
		return 0, err
	}
	return r.codec.Read(r.stream, p)
}

// ReadSamplesFloat decodes samples scaled to [-1, 1) into dst and returns
// the number of samples written. len(dst) must be a multiple of the
// channel count.
func (r *Reader) ReadSamplesFloat(dst []float32) (int, error) {
	if len(dst)%r.format.Channels != 0 {
		return 0, fmt.Errorf("%d samples for %d channels: %w", len(dst), r.format.Channels, audio.ErrInvalidDstSize)
	}
	if err := r.prepare(); err != nil {
		return 0, err
	}
	return r.codec.ReadFloat(r.stream, dst)
}

// ReadSamples32Bit decodes samples left-aligned in 32 bits into dst and
// returns the number of samples written. len(dst) must be a multiple of
// the channel count.
func (r *Reader) ReadSamples32Bit(dst []int32) (int, error) {
	if len(dst)%r.format.Channels != 0 {
		return 0, fmt.Errorf("%d samples for %d channels: %w", len(dst), r.format.Channels, audio.ErrInvalidDstSize)
	}
	if err := r.prepare(); err != nil {
		return 0, err
	}

	size := r.codec.SegmentSize()
	raw := r.native.Grow(len(dst) * size)
	n, err := r.codec.Read(r.stream, raw)

	return codec.Widen(dst, raw[:n], size), err
}

// PCMBuffer fills buf.Data with samples at the file's sample size and
// returns the number written, mirroring the go-audio decoders.
func (r *Reader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	want := len(buf.Data) - len(buf.Data)%r.format.Channels
	if cap(r.wide) < want {
		r.wide = make([]int32, want)
	}
	wide := r.wide[:want]

	n, err := r.ReadSamples32Bit(wide)
	if r.codec == nil {
		return n, err
	}

	shift := 32 - 8*r.codec.SegmentSize()
	for i, v := range wide[:n] {
		buf.Data[i] = int(v >> shift)
	}
	buf.Format = r.format.AudioFormat()
	buf.SourceBitDepth = 8 * r.codec.SegmentSize()

	return n, err
}

// Seek moves the sound data cursor to frame. Seeking to or past the last
// frame fails with codec.ErrSeekPastEnd and leaves the cursor in place.
func (r *Reader) Seek(frame uint64) error {
	if err := r.prepare(); err != nil {
		return err
	}
	return r.codec.Seek(r.stream, frame)
}

// Attribute returns the text of a NAME, AUTH, (c) or ANNO chunk. ok is
// false when the chunk is absent or empty.
func (r *Reader) Attribute(tag Tag) (text string, ok bool, err error) {
	if r.closed {
		return "", false, ErrClosed
	}
	if !iff.IsAttribute(tag) {
		return "", false, fmt.Errorf("%q: %w", tag.String(), ErrNotAttribute)
	}

	r.state = unprepared
	n, err := iff.Find(r.rs, tag)
	if errors.Is(err, iff.ErrChunkNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("locating %s chunk: %w", tag, err)
	}
	if n == 0 {
		return "", false, nil
	}

	// the declared length is not trusted for the allocation
	b, err := io.ReadAll(io.LimitReader(r.rs, int64(n)))
	if err != nil {
		return "", false, fmt.Errorf("reading %s chunk: %w", tag, err)
	}
	if len(b) < int(n) {
		return "", false, fmt.Errorf("reading %s chunk: %w", tag, io.ErrUnexpectedEOF)
	}

	// some writers store C strings
	b = bytes.TrimRight(b, "\x00")

	return string(b), true, nil
}

// ShrinkBuffers gives back scratch memory beyond n bytes per buffer.
// Buffers otherwise keep the size of the largest read made so far.
func (r *Reader) ShrinkBuffers(n int) {
	r.native.Shrink(n)
	if r.stream != nil {
		r.stream.Shrink(n)
	}
	if cap(r.wide) > n/4 {
		r.wide = nil
	}
}

// Close releases the scratch buffers and closes the file opened by Open.
// A Reader built with NewReader leaves its io.ReadSeeker open.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.state = unprepared

	r.native.Release()
	r.wide = nil
	if r.stream != nil {
		r.stream.Release()
	}

	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			return fmt.Errorf("closing aiff file: %w", err)
		}
	}

	return nil
}
