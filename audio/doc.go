// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming interfaces shared by the format
// packages.
//
// # Source Interface
//
// A Source yields interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns the number of float32 values written, not frames,
// and 0, io.EOF once the stream is finished.
//
// # Registry
//
// A Registry picks a Decoder by file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register(aiff.Decoder{}, "aif", "aiff", "aifc")
//	reg.Register(wav.Decoder{}, "wav")
//
//	dec, err := reg.ForPath("take1.aifc")
//
// The registry is safe for concurrent use.
package audio
