// SPDX-License-Identifier: EPL-2.0

// Package libaiff reads and writes AIFF and AIFF-C audio files.
//
// The codec itself lives in the subpackages:
//   - formats/aiff: Reader and Writer sessions, markers, instrument data
//     and text attributes
//   - codec: LPCM, µ-law, A-law and float32 sample codecs
//   - formats/wav: AIFF to WAV export and WAV decoding
//   - audio: the Source and Decoder interfaces and a decoder Registry
//
// This package adds file-level helpers on top of them.
//
// # Probing
//
// Probe reads the format of one file; ProbeMany probes many files
// concurrently:
//
//	formats, err := libaiff.ProbeMany(ctx, "a.aif", "b.aifc")
//	if err != nil {
//	    return err
//	}
//	for _, f := range formats {
//	    fmt.Println(f.Channels, f.SampleRate, f.Duration())
//	}
//
// # Converting
//
// Convert re-encodes any file with a registered decoder as AIFF:
//
//	err := libaiff.Convert("take.aif", "take.wav", 24)
//
// Decoders maps file extensions to decoders and can be extended with
// Register.
package libaiff
