// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/musicinmybrain/libaiff2/codec"
	"github.com/musicinmybrain/libaiff2/internal/iff"
	"github.com/musicinmybrain/libaiff2/utils"
)

// fverTimestamp is the AIFF-C version of 26 August 1991.
const fverTimestamp = 0xA2805140

type writeState int

const (
	unconfigured writeState = iota
	formatSet
	writingSamples
	samplesDone
	writingMarkers
	writerClosed
)

// Writer encodes an AIFF or AIFF-C file. Calls must follow the order
//
//	SetFormat, StartSamples, WriteSamples..., EndSamples,
//	[StartMarkers, WriteMarker..., EndMarkers], Close
//
// with SetAttribute allowed whenever no chunk is open. A call out of order
// returns ErrNotReady and writes nothing.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	ws     io.WriteSeeker
	closer io.Closer

	form     Tag
	encoding codec.Encoding
	order    binary.ByteOrder
	codec    codec.Codec
	state    writeState

	// length counts the bytes after the FORM length field
	length uint32

	// absolute offsets of chunk headers to patch
	commOffset  int64
	soundOffset int64
	markOffset  int64

	sampleBytes uint32
	markers     int
	channels    int

	scratch codec.Buffer
	wide    codec.Buffer
	ints    []int32
}

// Create creates or truncates the named file and starts writing to it.
func Create(path string, opts ...Option) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating aiff file: %w", err)
	}

	w, err := NewWriter(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.closer = f

	return w, nil
}

// NewWriter writes the FORM header, and the FVER chunk for AIFF-C, at the
// start of ws.
func NewWriter(ws io.WriteSeeker, opts ...Option) (*Writer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	w := &Writer{
		ws:       ws,
		form:     o.form(),
		encoding: o.encoding,
		order:    o.order,
	}

	if _, err := ws.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to header: %w", err)
	}

	b := iff.AppendHeader(nil, iff.Header{Length: 4, Form: w.form})
	if w.form == FormAIFC {
		b = iff.AppendChunkHeader(b, iff.TagFVER, 4)
		b = binary.BigEndian.AppendUint32(b, fverTimestamp)
	}
	if _, err := ws.Write(b); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	w.length = uint32(len(b) - 8)

	return w, nil
}

// pos returns the absolute write position.
func (w *Writer) pos() int64 { return 8 + int64(w.length) }

func (w *Writer) write(p []byte) error {
	if _, err := w.ws.Write(p); err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}
	w.length += uint32(len(p))
	return nil
}

// patch overwrites the bytes at offset with p, then returns to end.
func (w *Writer) patch(offset int64, p []byte, end int64) error {
	if _, err := w.ws.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to patch: %w", err)
	}
	if _, err := w.ws.Write(p); err != nil {
		return fmt.Errorf("patching header: %w", err)
	}
	if _, err := w.ws.Seek(end, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to end: %w", err)
	}
	return nil
}

// SetFormat writes the COMM chunk. bitsPerSample must be 16 for µ-law
// and A-law and 32 for float32.
func (w *Writer) SetFormat(channels int, sampleRate float64, bitsPerSample int) error {
	if w.state != unconfigured {
		return fmt.Errorf("set format: %w", ErrNotReady)
	}

	if channels < 1 || channels > math.MaxUint16 {
		return fmt.Errorf("%d channels: %w", channels, ErrUnsupportedAiffLayout)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("sample rate %v: %w", sampleRate, ErrUnsupportedAiffLayout)
	}

	c, err := codec.New(w.encoding, (bitsPerSample+7)/8, w.order)
	if err != nil {
		return fmt.Errorf("%d-bit %s: %w: %w", bitsPerSample, w.encoding, ErrUnsupportedAiffLayout, err)
	}
	if bitsPerSample < 1 || (w.encoding != codec.LPCM && bitsPerSample != 8*c.SegmentSize()) {
		return fmt.Errorf("%d-bit %s: %w", bitsPerSample, w.encoding, ErrUnsupportedAiffLayout)
	}

	offset := w.pos()
	b := appendComm(nil, w.form, channels, bitsPerSample, sampleRate, compressionFor(w.encoding, w.order))
	if err := w.write(b); err != nil {
		return err
	}

	w.commOffset = offset
	w.codec = c
	w.channels = channels
	w.state = formatSet

	return nil
}

// StartSamples opens the SSND chunk.
func (w *Writer) StartSamples() error {
	if w.state != formatSet {
		return fmt.Errorf("start samples: %w", ErrNotReady)
	}

	offset := w.pos()
	b := iff.AppendChunkHeader(nil, iff.TagSSND, 8)
	b = append(b, make([]byte, 8)...)
	if err := w.write(b); err != nil {
		return err
	}

	w.soundOffset = offset
	w.sampleBytes = 0
	w.state = writingSamples

	return nil
}

// WriteSamples encodes native samples, each SegmentSize bytes wide in host
// byte order. len(p) must be a whole number of samples.
func (w *Writer) WriteSamples(p []byte) error {
	if w.state != writingSamples {
		return fmt.Errorf("write samples: %w", ErrNotReady)
	}

	out, err := w.codec.Encode(w.scratch.Grow(len(p))[:0], p)
	if err != nil {
		return err
	}
	if err := w.write(out); err != nil {
		return err
	}
	w.sampleBytes += uint32(len(out))

	return nil
}

// WriteSamples32Bit encodes left-aligned 32-bit samples, keeping the most
// significant bits that fit the sample size.
func (w *Writer) WriteSamples32Bit(src []int32) error {
	if w.state != writingSamples {
		return fmt.Errorf("write samples: %w", ErrNotReady)
	}

	size := w.codec.SegmentSize()
	native := codec.Narrow(w.wide.Grow(len(src)*size)[:0], src, size)

	return w.WriteSamples(native)
}

// WriteSamplesFloat encodes samples in [-1, 1]. Values outside the range
// are clipped.
func (w *Writer) WriteSamplesFloat(src []float32) error {
	if w.state != writingSamples {
		return fmt.Errorf("write samples: %w", ErrNotReady)
	}

	if cap(w.ints) < len(src) {
		w.ints = make([]int32, len(src))
	}
	ints := w.ints[:len(src)]
	for i, v := range src {
		ints[i] = utils.Float32ToInt32(v)
	}

	return w.WriteSamples32Bit(ints)
}

// EndSamples closes the SSND chunk and patches the frame count into COMM.
func (w *Writer) EndSamples() error {
	if w.state != writingSamples {
		return fmt.Errorf("end samples: %w", ErrNotReady)
	}

	if w.sampleBytes&1 != 0 {
		if err := w.write([]byte{0}); err != nil {
			return err
		}
	}
	end := w.pos()

	b := binary.BigEndian.AppendUint32(nil, w.sampleBytes+8)
	if err := w.patch(w.soundOffset+4, b, end); err != nil {
		return err
	}

	frames := w.sampleBytes / uint32(w.channels*w.codec.StoredSize())
	b = binary.BigEndian.AppendUint32(nil, frames)
	if err := w.patch(w.commOffset+iff.ChunkHeaderSize+2, b, end); err != nil {
		return err
	}

	w.scratch.Release()
	w.wide.Release()
	w.ints = nil
	w.state = samplesDone

	return nil
}

// SetAttribute writes a NAME, AUTH, (c) or ANNO chunk holding text.
func (w *Writer) SetAttribute(tag Tag, text string) error {
	if !iff.IsAttribute(tag) {
		return fmt.Errorf("%q: %w", tag.String(), ErrNotAttribute)
	}
	switch w.state {
	case writingSamples, writingMarkers, writerClosed:
		return fmt.Errorf("set attribute: %w", ErrNotReady)
	}

	b := iff.AppendChunkHeader(nil, tag, uint32(len(text)))
	b = append(b, text...)
	if len(text)&1 != 0 {
		b = append(b, 0)
	}

	return w.write(b)
}

// Close writes the final FORM length and closes the file opened by
// Create. An open marker chunk is completed first. The header is written
// whatever the state; ErrIncomplete reports that the sound data was never
// finished.
func (w *Writer) Close() error {
	if w.state == writerClosed {
		return nil
	}

	var errs []error
	if w.state == writingMarkers {
		if err := w.EndMarkers(); err != nil {
			errs = append(errs, err)
		}
	}

	complete := w.state == samplesDone
	w.state = writerClosed
	w.scratch.Release()
	w.wide.Release()

	b := iff.AppendHeader(nil, iff.Header{Length: w.length, Form: w.form})
	if _, err := w.ws.Seek(0, io.SeekStart); err != nil {
		errs = append(errs, fmt.Errorf("seeking to header: %w", err))
	} else if _, err := w.ws.Write(b); err != nil {
		errs = append(errs, fmt.Errorf("writing header: %w", err))
	}

	if w.closer != nil {
		if err := w.closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing aiff file: %w", err))
		}
	}

	if !complete {
		errs = append(errs, ErrIncomplete)
	}

	return errors.Join(errs...)
}
