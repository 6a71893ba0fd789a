// SPDX-License-Identifier: EPL-2.0

package libaiff

import (
	"errors"
	"fmt"
	"os"

	"github.com/musicinmybrain/libaiff2/audio"
	"github.com/musicinmybrain/libaiff2/formats/aiff"
	"github.com/musicinmybrain/libaiff2/formats/wav"
)

// Decoders holds the decoders OpenSource and Convert choose from.
var Decoders = newDecoders()

func newDecoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(aiff.Decoder{}, "aif", "aiff", "aifc")
	reg.Register(wav.Decoder{}, "wav", "wave")
	return reg
}

// fileSource closes the file under a Source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// OpenSource opens path with the decoder registered for its extension.
// Closing the source closes the file.
func OpenSource(path string) (audio.Source, error) {
	dec, err := Decoders.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// Convert decodes src and writes it to dst as AIFF with bitsPerSample
// bits per sample. opts select the AIFF-C encoding as in aiff.Create.
func Convert(dst, src string, bitsPerSample int, opts ...aiff.Option) (err error) {
	in, err := OpenSource(src)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, in.Close())
	}()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if err := aiff.Encode(out, in, bitsPerSample, opts...); err != nil {
		return errors.Join(err, out.Close())
	}

	return out.Close()
}
