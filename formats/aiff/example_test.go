// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/musicinmybrain/libaiff2/codec"
	"github.com/musicinmybrain/libaiff2/formats/aiff"
)

// writeExample writes a short 16-bit stereo file with two markers and
// returns its path.
func writeExample(dir string, opts ...aiff.Option) string {
	path := filepath.Join(dir, "example.aif")

	w, err := aiff.Create(path, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if err := w.SetAttribute(aiff.Name, "Example"); err != nil {
		log.Fatal(err)
	}
	if err := w.SetFormat(2, 44100, 16); err != nil {
		log.Fatal(err)
	}
	if err := w.StartSamples(); err != nil {
		log.Fatal(err)
	}
	if err := w.WriteSamplesFloat([]float32{0, 0, 0.5, -0.5, 0.25, -0.25}); err != nil {
		log.Fatal(err)
	}
	if err := w.EndSamples(); err != nil {
		log.Fatal(err)
	}

	if err := w.StartMarkers(); err != nil {
		log.Fatal(err)
	}
	for i, name := range []string{"start", "end"} {
		if _, err := w.WriteMarker(uint32(i*2), name); err != nil {
			log.Fatal(err)
		}
	}
	if err := w.EndMarkers(); err != nil {
		log.Fatal(err)
	}

	if err := w.Close(); err != nil {
		log.Fatal(err)
	}

	return path
}

// Example writes an AIFF file and reads it back.
func Example() {
	dir, err := os.MkdirTemp("", "aiff-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	r, err := aiff.Open(writeExample(dir))
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	f := r.Format()
	fmt.Printf("%s: %d channels, %d frames, %d-bit, %.0f Hz\n",
		f.Form, f.Channels, f.Frames, f.BitsPerSample, f.SampleRate)

	name, _, err := r.Attribute(aiff.Name)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("name:", name)

	samples := make([]float32, 6)
	n, err := r.ReadSamplesFloat(samples)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(samples[:n])

	// Output:
	// AIFF: 2 channels, 3 frames, 16-bit, 44100 Hz
	// name: Example
	// [0 0 0.5 -0.5 0.25 -0.25]
}

// ExampleReader_ReadMarker walks the marker list.
func ExampleReader_ReadMarker() {
	dir, err := os.MkdirTemp("", "aiff-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	r, err := aiff.Open(writeExample(dir))
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	for {
		m, err := r.ReadMarker()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d %q at frame %d\n", m.ID, m.Name, m.Position)
	}

	// Output:
	// 1 "start" at frame 0
	// 2 "end" at frame 2
}

// ExampleWithByteOrder writes little-endian samples, which makes the file
// AIFF-C.
func ExampleWithByteOrder() {
	dir, err := os.MkdirTemp("", "aiff-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	r, err := aiff.Open(writeExample(dir, aiff.WithByteOrder(binary.LittleEndian)))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r.Format().Form, r.Format().Compression)
	r.Close()

	// µ-law also needs AIFF-C
	r, err = aiff.Open(writeExample(dir, aiff.WithEncoding(codec.ULaw)))
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	f := r.Format()
	fmt.Println(f.Form, f.Compression, f.Encoding)
	fmt.Println(f.CompressionName)

	// Output:
	// AIFC sowt
	// AIFC ULAW ulaw
	// Signed logarithmic 8-bit mu-Law PCM
}

// ExampleDecoder_Decode streams an AIFF file as an audio.Source.
func ExampleDecoder_Decode() {
	dir, err := os.MkdirTemp("", "aiff-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	f, err := os.Open(writeExample(dir))
	if err != nil {
		log.Fatal(err)
	}

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("%d Hz, %d channels\n", src.SampleRate(), src.Channels())

	buf := make([]float32, src.BufSize())
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println(total, "samples")

	// Output:
	// 44100 Hz, 2 channels
	// 6 samples
}
