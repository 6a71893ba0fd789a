// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/musicinmybrain/libaiff2/audio"
)

// Encode writes every sample of src to ws as an AIFF file with the given
// sample size. src is read until io.EOF but not closed.
func Encode(ws io.WriteSeeker, src audio.Source, bitsPerSample int, opts ...Option) error {
	w, err := NewWriter(ws, opts...)
	if err != nil {
		return err
	}

	if err := encode(w, src, bitsPerSample); err != nil {
		return errors.Join(err, w.Close())
	}

	return w.Close()
}

func encode(w *Writer, src audio.Source, bitsPerSample int) error {
	if err := w.SetFormat(src.Channels(), float64(src.SampleRate()), bitsPerSample); err != nil {
		return err
	}
	if err := w.StartSamples(); err != nil {
		return err
	}

	size := src.BufSize()
	size -= size % src.Channels()
	if size <= 0 {
		size = 4096 * src.Channels()
	}
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := w.WriteSamplesFloat(buf[:n]); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
	}

	return w.EndSamples()
}
