// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"

	"github.com/musicinmybrain/libaiff2/codec"
)

// Option configures a Writer.
//
// Example:
//
//	w, err := aiff.Create("out.aifc",
//	    aiff.WithEncoding(codec.ULaw),
//	)
type Option func(*writeOptions)

type writeOptions struct {
	aifc     bool
	encoding codec.Encoding
	order    binary.ByteOrder
}

func defaultOptions() *writeOptions {
	return &writeOptions{
		encoding: codec.LPCM,
		order:    binary.BigEndian,
	}
}

// form resolves the container type. Anything other than big-endian
// linear PCM needs a compression type, which only AIFF-C carries.
func (o *writeOptions) form() Tag {
	if o.aifc || o.encoding != codec.LPCM || littleEndian(o.order) {
		return FormAIFC
	}
	return FormAIFF
}

// WithAIFC writes an AIFF-C file even for big-endian linear PCM.
func WithAIFC() Option {
	return func(o *writeOptions) {
		o.aifc = true
	}
}

// WithEncoding selects the sample encoding. Encodings other than
// codec.LPCM produce an AIFF-C file.
func WithEncoding(enc codec.Encoding) Option {
	return func(o *writeOptions) {
		o.encoding = enc
	}
}

// WithByteOrder selects the byte order of linear PCM samples.
// binary.LittleEndian produces an AIFF-C file of type 'sowt'.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *writeOptions) {
		if order == nil {
			order = binary.BigEndian
		}
		o.order = order
	}
}

func littleEndian(order binary.ByteOrder) bool {
	return order.Uint16([]byte{1, 0}) == 1
}
