// SPDX-License-Identifier: EPL-2.0

package libaiff

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	"github.com/musicinmybrain/libaiff2/audio"
	"github.com/musicinmybrain/libaiff2/codec"
	"github.com/musicinmybrain/libaiff2/formats/aiff"
	"github.com/musicinmybrain/libaiff2/formats/wav"
)

func TestConvert_FromWav(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.WAV")

	f, err := os.Create(src)
	require.NoError(t, err)
	enc := gowav.NewEncoder(f, 16000, 16, 2, 1)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 16000},
		Data:           []int{0, 16384, -16384, -32768},
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	dst := filepath.Join(dir, "out.aif")
	require.NoError(t, Convert(dst, src, 24))

	r, err := aiff.Open(dst)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 24, r.Format().BitsPerSample)
	require.Equal(t, 16000.0, r.Format().SampleRate)

	got := make([]float32, 4)
	n, err := r.ReadSamplesFloat(got)
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0.5, -0.5, -1}, got[:n])
}

func TestConvert_AiffToULaw(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeTone(t, dir, "in.aiff", 1, 8000, 100)
	dst := filepath.Join(dir, "out.aifc")

	require.NoError(t, Convert(dst, src, 16, aiff.WithEncoding(codec.ULaw)))

	f, err := Probe(dst)
	require.NoError(t, err)
	require.Equal(t, codec.ULaw, f.Encoding)
	require.Equal(t, uint32(100), f.Frames)
}

func TestConvert_UnknownExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := Convert(filepath.Join(dir, "out.aif"), filepath.Join(dir, "in.flac"), 16)
	require.ErrorIs(t, err, audio.ErrUnknownFormat)

	_, err = os.Stat(filepath.Join(dir, "out.aif"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenSource(t *testing.T) {
	t.Parallel()

	path := writeTone(t, t.TempDir(), "in.aif", 2, 22050, 8)

	src, err := OpenSource(path)
	require.NoError(t, err)
	require.Equal(t, 22050, src.SampleRate())
	require.Equal(t, 2, src.Channels())
	require.NoError(t, src.Close())

	bad := filepath.Join(t.TempDir(), "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("FORM"), 0o600))
	_, err = OpenSource(bad)
	require.ErrorIs(t, err, wav.ErrNotWavFile)
}
