// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/musicinmybrain/libaiff2/formats/aiff"
)

// exportFrames is the number of frames converted per write.
const exportFrames = 4096

// ExportBitDepth is the WAV sample size Export writes for an AIFF format.
// 8-bit and G.711 sound data is widened to 16 bits.
func ExportBitDepth(f aiff.Format) int {
	return max(16, 8*f.SegmentSize)
}

// Export copies the remaining sound data of r to ws as a PCM WAV file.
func Export(ws io.WriteSeeker, r *aiff.Reader) error {
	f := r.Format()
	bits := ExportBitDepth(f)
	if f.SampleRate < 1 || bits > 32 {
		return fmt.Errorf("%d-bit at %v Hz: %w", bits, f.SampleRate, ErrUnsupportedWavLayout)
	}

	enc := wav.NewEncoder(ws, int(f.AudioFormat().SampleRate), bits, f.Channels, 1)
	if err := export(enc, r, bits); err != nil {
		return errors.Join(err, enc.Close())
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}
	return nil
}

func export(enc *wav.Encoder, r *aiff.Reader, bits int) error {
	f := r.Format()
	wide := make([]int32, exportFrames*f.Channels)
	buf := &goaudio.IntBuffer{
		Format:         f.AudioFormat(),
		Data:           make([]int, len(wide)),
		SourceBitDepth: bits,
	}
	shift := 32 - bits

	for {
		n, err := r.ReadSamples32Bit(wide)
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, v := range wide[:n] {
				buf.Data[i] = int(v >> shift)
			}
			if werr := enc.Write(buf); werr != nil {
				return fmt.Errorf("writing wav samples: %w", werr)
			}
			buf.Data = buf.Data[:cap(buf.Data)]
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
