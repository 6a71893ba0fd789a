// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) and
// AIFF-C files.
//
// AIFF is Apple's chunked audio container. All fields are big-endian and
// the sample rate is stored as an 80-bit extended float. AIFF-C adds a
// compression type to the COMM chunk and a mandatory FVER chunk.
//
// # Supported Encodings
//
//   - Linear PCM, 8, 16, 24 and 32 bits, big-endian ('NONE', 'twos',
//     'lpcm' and plain AIFF) or little-endian ('sowt')
//   - G.711 µ-law ('ulaw', 'ULAW') and A-law ('alaw', 'ALAW')
//   - IEEE-754 single precision float ('fl32', 'FL32')
//
// Files with any other compression type open normally so that their
// format and metadata can be inspected; the first sample read fails with
// codec.ErrUnsupportedEncoding.
//
// # Reading
//
//	r, err := aiff.Open("input.aif")
//	if err != nil {
//	    // Handle error
//	}
//	defer r.Close()
//
//	f := r.Format()
//	buf := make([]byte, 4096*f.FrameSize())
//	for {
//	    n, err := r.ReadSamples(buf)
//	    // buf[:n] holds samples in host byte order
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// Samples can also be read as float32 in [-1, 1) with ReadSamplesFloat,
// or left-aligned in 32 bits with ReadSamples32Bit. Seek positions the
// cursor on a frame.
//
// Markers, the instrument and the text attributes (NAME, AUTH, (c) and
// ANNO) are located by scanning the file from its first chunk, so they can
// be read in any order and interleaved with sample reads.
//
// # Writing
//
// A Writer emits chunks as it goes and patches lengths and the frame
// count afterwards, so it needs an io.WriteSeeker:
//
//	w, err := aiff.Create("output.aif")
//	if err != nil {
//	    // Handle error
//	}
//	w.SetFormat(2, 44100, 16)
//	w.StartSamples()
//	w.WriteSamples(pcm)
//	w.EndSamples()
//	w.StartMarkers()
//	w.WriteMarker(0, "start")
//	w.EndMarkers()
//	w.SetAttribute(aiff.Name, "Take 1")
//	err = w.Close()
//
// Calls made out of order return ErrNotReady without touching the file.
// Close always writes the FORM header; it returns ErrIncomplete when the
// sound data was not finished.
//
// # Streaming
//
// Decoder adapts a file to audio.Source for code that consumes float
// samples, and Encode writes any audio.Source to a new file.
package aiff
