// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Source generates frames from a waveform and satisfies audio.Source.
// It does not import the audio package so that package can use it in
// tests.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	bufSize  int
	wave     func(frame, channel int) float32

	// Err, when set, is returned instead of io.EOF once every frame has
	// been read.
	Err error

	closed bool
}

// NewSource returns a Source of frames frames computed by wave.
func NewSource(rate, channels, frames int, wave func(frame, channel int) float32) *Source {
	return &Source{
		rate:     rate,
		channels: channels,
		frames:   frames,
		bufSize:  1024 * channels,
		wave:     wave,
	}
}

// NewSineSource returns a full-scale sine at freq Hz on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *Source {
	return NewSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

// NewConstantSource returns a Source where every sample is v.
func NewConstantSource(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return s.bufSize }

// Close marks the source closed; see Closed.
func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Sample returns the value ReadSamples produces for frame and channel.
func (s *Source) Sample(frame, channel int) float32 { return s.wave(frame, channel) }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst)/s.channels, s.frames-s.pos)
	for i := range n {
		for ch := range s.channels {
			dst[i*s.channels+ch] = s.wave(s.pos+i, ch)
		}
	}
	s.pos += n

	if s.pos < s.frames {
		return n * s.channels, nil
	}
	if s.Err != nil {
		return n * s.channels, s.Err
	}
	return n * s.channels, io.EOF
}
