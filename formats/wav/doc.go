// SPDX-License-Identifier: EPL-2.0

// Package wav moves audio between AIFF and PCM WAV files.
//
// Export writes the sound data of an aiff.Reader as a WAV file through
// github.com/go-audio/wav. LPCM keeps its sample size (at least 16 bits),
// µ-law and A-law become 16-bit PCM and float32 becomes 32-bit PCM:
//
//	r, err := aiff.Open("take.aifc")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	out, err := os.Create("take.wav")
//	if err != nil {
//	    return err
//	}
//	defer out.Close()
//
//	err = wav.Export(out, r)
//
// Decoder reads 16, 24 and 32-bit PCM WAV data as an audio.Source, so a
// WAV file can be converted to AIFF with aiff.Encode:
//
//	src, err := wav.Decoder{}.Decode(in)
//	if err != nil {
//	    return err
//	}
//	err = aiff.Encode(out, src, 16)
//
// # Errors
//
// ErrNotWavFile reports input that is not RIFF/WAVE. ErrUnsupportedWavLayout
// reports non-PCM data or a sample size outside 16, 24 and 32 bits.
package wav
