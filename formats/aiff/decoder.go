// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/musicinmybrain/libaiff2/audio"
)

// source adapts a Reader to audio.Source
type source struct {
	r          *Reader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.r.Close() }
func (s *source) BufSize() int    { return 4096 - 4096%s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// only whole frames are decoded
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	return s.r.ReadSamplesFloat(dst)
}

// Decoder builds an audio.Source from AIFF or AIFF-C data.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// Readers need random access, so buffer the whole stream
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	rd, err := NewReader(rs)
	if err != nil {
		return nil, err
	}

	f := rd.Format()
	return &source{
		r:          rd,
		sampleRate: int(math.Round(f.SampleRate)),
		channels:   f.Channels,
	}, nil
}
