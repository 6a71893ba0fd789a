// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/musicinmybrain/libaiff2/codec"
	"github.com/musicinmybrain/libaiff2/internal/iff"
	"github.com/musicinmybrain/libaiff2/utils"
)

const (
	// commSize is the COMM payload of a plain AIFF file.
	commSize = 18
	// commCompressedSize is the shortest COMM payload carrying a
	// compression type.
	commCompressedSize = commSize + 4
)

// Format describes the audio held by a file.
type Format struct {
	Channels int
	Frames   uint32
	// BitsPerSample is the declared sample size. µ-law and A-law report
	// their effective precision of 14 and 13 bits.
	BitsPerSample int
	// SegmentSize is the size in bytes of one decoded sample.
	SegmentSize int
	SampleRate  float64
	Encoding    codec.Encoding
	// ByteOrder applies to linear PCM sound data.
	ByteOrder binary.ByteOrder

	Form Tag
	// Compression and CompressionName are only set for AIFF-C.
	Compression     Tag
	CompressionName string
}

// FrameSize returns the size in bytes of one decoded frame.
func (f Format) FrameSize() int { return f.Channels * f.SegmentSize }

// Duration returns the play time of the declared frames.
func (f Format) Duration() time.Duration {
	if f.SampleRate <= 0 || math.IsInf(f.SampleRate, 0) || math.IsNaN(f.SampleRate) {
		return 0
	}
	return time.Duration(float64(f.Frames) / f.SampleRate * float64(time.Second))
}

// AudioFormat returns the format in go-audio form. The sample rate is
// rounded to the nearest integer.
func (f Format) AudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: f.Channels,
		SampleRate:  int(math.Round(f.SampleRate)),
	}
}

// readFormat locates and decodes the COMM chunk.
func readFormat(rs io.ReadSeeker, form Tag) (Format, error) {
	n, err := iff.Find(rs, iff.TagCOMM)
	if err != nil {
		return Format{}, fmt.Errorf("locating COMM chunk: %w", err)
	}
	offset, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return Format{}, fmt.Errorf("locating COMM chunk: %w", err)
	}

	if n < commSize {
		return Format{}, &ChunkError{Tag: iff.TagCOMM, Offset: offset, Reason: fmt.Sprintf("%d bytes, want at least %d", n, commSize)}
	}

	var b [commSize]byte
	if _, err := io.ReadFull(rs, b[:]); err != nil {
		return Format{}, fmt.Errorf("reading COMM chunk: %w", err)
	}

	f := Format{
		Channels:      int(binary.BigEndian.Uint16(b[0:2])),
		Frames:        binary.BigEndian.Uint32(b[2:6]),
		BitsPerSample: int(binary.BigEndian.Uint16(b[6:8])),
		SampleRate:    utils.ReadExtended([10]byte(b[8:18])),
		Encoding:      codec.LPCM,
		ByteOrder:     binary.BigEndian,
		Form:          form,
	}
	f.SegmentSize = (f.BitsPerSample + 7) / 8

	if f.Channels == 0 {
		return Format{}, &ChunkError{Tag: iff.TagCOMM, Offset: offset, Reason: "zero channels"}
	}

	if form != FormAIFC || n < commCompressedSize {
		return f, nil
	}

	var tag Tag
	if _, err := io.ReadFull(rs, tag[:]); err != nil {
		return Format{}, fmt.Errorf("reading compression type: %w", err)
	}
	f.Compression = tag

	// the name is informational; a missing or cut one is not an error
	if n > commCompressedSize {
		name, err := iff.ReadPString(io.LimitReader(rs, int64(n-commCompressedSize)))
		if err == nil {
			f.CompressionName = name
		} else if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return Format{}, fmt.Errorf("reading compression name: %w", err)
		}
	}

	c, ok := compressions[tag]
	if !ok {
		f.Encoding = codec.Unknown
		return f, nil
	}

	f.Encoding = c.encoding
	f.ByteOrder = c.order
	if f.ByteOrder == nil {
		f.ByteOrder = binary.BigEndian
	}
	if c.bits != 0 {
		f.BitsPerSample = c.bits
		f.SegmentSize = c.segment
	}

	return f, nil
}

// appendComm appends a COMM chunk with a zero frame count.
func appendComm(dst []byte, form Tag, channels, bits int, rate float64, compression Tag) []byte {
	size := commSize
	if form == FormAIFC {
		size = commCompressedSize + iff.PStringLen(CompressionName(compression))
	}

	dst = iff.AppendChunkHeader(dst, iff.TagCOMM, uint32(size))
	dst = binary.BigEndian.AppendUint16(dst, uint16(channels))
	dst = binary.BigEndian.AppendUint32(dst, 0)
	dst = binary.BigEndian.AppendUint16(dst, uint16(bits))
	ext := utils.WriteExtended(rate)
	dst = append(dst, ext[:]...)

	if form == FormAIFC {
		dst = append(dst, compression[:]...)
		dst = iff.AppendPString(dst, CompressionName(compression))
	}

	return dst
}
