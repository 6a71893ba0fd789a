// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"

	"github.com/musicinmybrain/libaiff2/internal/iff"
	"github.com/musicinmybrain/libaiff2/utils"
)

// Marker is one record of a MARK chunk built by Builder.Markers.
type Marker struct {
	ID       uint16
	Position uint32
	Name     string
}

// Builder assembles AIFF and AIFF-C byte images chunk by chunk. The FORM
// length is computed when the image is taken.
type Builder struct {
	form   iff.Tag
	chunks []byte
}

// NewAIFF starts a plain AIFF image.
func NewAIFF() *Builder {
	return &Builder{form: iff.TagAIFF}
}

// NewAIFC starts an AIFF-C image with its FVER chunk.
func NewAIFC() *Builder {
	b := &Builder{form: iff.TagAIFC}
	return b.Chunk(iff.TagFVER, binary.BigEndian.AppendUint32(nil, 0xA2805140))
}

// Chunk appends a chunk with the given payload, adding the pad byte when
// the payload length is odd.
func (b *Builder) Chunk(tag iff.Tag, payload []byte) *Builder {
	b.chunks = iff.AppendChunkHeader(b.chunks, tag, uint32(len(payload)))
	b.chunks = append(b.chunks, payload...)
	if len(payload)&1 != 0 {
		b.chunks = append(b.chunks, 0)
	}
	return b
}

// Comm appends an 18-byte COMM chunk.
func (b *Builder) Comm(channels int, frames uint32, bits int, rate float64) *Builder {
	return b.Chunk(iff.TagCOMM, comm(channels, frames, bits, rate))
}

// CommAIFC appends a COMM chunk carrying a compression type and name.
func (b *Builder) CommAIFC(channels int, frames uint32, bits int, rate float64, compression iff.Tag, name string) *Builder {
	p := comm(channels, frames, bits, rate)
	p = append(p, compression[:]...)
	p = iff.AppendPString(p, name)
	return b.Chunk(iff.TagCOMM, p)
}

func comm(channels int, frames uint32, bits int, rate float64) []byte {
	p := binary.BigEndian.AppendUint16(nil, uint16(channels))
	p = binary.BigEndian.AppendUint32(p, frames)
	p = binary.BigEndian.AppendUint16(p, uint16(bits))
	ext := utils.WriteExtended(rate)
	return append(p, ext[:]...)
}

// SoundData appends an SSND chunk. offset bytes of filler are placed
// between the chunk's leading fields and the samples.
func (b *Builder) SoundData(offset uint32, samples []byte) *Builder {
	p := binary.BigEndian.AppendUint32(nil, offset)
	p = binary.BigEndian.AppendUint32(p, 0)
	p = append(p, make([]byte, offset)...)
	p = append(p, samples...)
	return b.Chunk(iff.TagSSND, p)
}

// Markers appends a MARK chunk holding m.
func (b *Builder) Markers(m ...Marker) *Builder {
	p := binary.BigEndian.AppendUint16(nil, uint16(len(m)))
	for _, mk := range m {
		p = binary.BigEndian.AppendUint16(p, mk.ID)
		p = binary.BigEndian.AppendUint32(p, mk.Position)
		p = iff.AppendPString(p, mk.Name)
	}
	return b.Chunk(iff.TagMARK, p)
}

// Instrument appends a 20-byte INST chunk. Loop ids refer to markers.
func (b *Builder) Instrument(baseNote, detune int8, gain int16, sustain, release [3]uint16) *Builder {
	p := []byte{byte(baseNote), byte(detune), 0, 127, 1, 127}
	p = binary.BigEndian.AppendUint16(p, uint16(gain))
	for _, loop := range [][3]uint16{sustain, release} {
		for _, v := range loop {
			p = binary.BigEndian.AppendUint16(p, v)
		}
	}
	return b.Chunk(iff.TagINST, p)
}

// Bytes returns the complete image.
func (b *Builder) Bytes() []byte {
	out := iff.AppendHeader(nil, iff.Header{Length: uint32(4 + len(b.chunks)), Form: b.form})
	return append(out, b.chunks...)
}

// Reader returns the image behind a bytes.Reader.
func (b *Builder) Reader() *bytes.Reader {
	return bytes.NewReader(b.Bytes())
}
