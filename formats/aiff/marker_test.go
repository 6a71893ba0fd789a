// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/musicinmybrain/libaiff2/internal/audiotest"
	"github.com/musicinmybrain/libaiff2/internal/iff"
)

func TestReader_ReadMarker(t *testing.T) {
	t.Parallel()

	marks := []audiotest.Marker{
		{ID: 1, Position: 0, Name: "start"},
		{ID: 2, Position: 100, Name: ""},
		{ID: 7, Position: 250, Name: "loop end"},
	}
	data := audiotest.NewAIFF().Comm(1, 300, 16, 8000).Markers(marks...).Bytes()

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	// the sequence starts over after it is exhausted
	for range 2 {
		for _, want := range marks {
			m, err := r.ReadMarker()
			require.NoError(t, err)
			require.Equal(t, Marker{ID: want.ID, Position: want.Position, Name: want.Name}, m)
		}

		_, err := r.ReadMarker()
		require.ErrorIs(t, err, io.EOF)
	}
}

func TestReader_ReadMarker_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "zero markers", data: audiotest.NewAIFF().Comm(1, 0, 16, 8000).Markers().Bytes()},
		{name: "no MARK chunk", data: audiotest.NewAIFF().Comm(1, 0, 16, 8000).Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewReader(bytes.NewReader(tt.data))
			require.NoError(t, err)

			_, err = r.ReadMarker()
			require.ErrorIs(t, err, io.EOF)

			markers, err := r.Markers()
			require.NoError(t, err)
			require.Empty(t, markers)
		})
	}
}

func TestReader_ReadMarker_Malformed(t *testing.T) {
	t.Parallel()

	// declares two markers but holds one
	payload := []byte{0, 2, 0, 1, 0, 0, 0, 5, 0, 0}
	data := audiotest.NewAIFF().Comm(1, 0, 16, 8000).Chunk(iff.TagMARK, payload).Bytes()

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	m, err := r.ReadMarker()
	require.NoError(t, err)
	require.Equal(t, uint32(5), m.Position)

	_, err = r.ReadMarker()
	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)

	data = audiotest.NewAIFF().Comm(1, 0, 16, 8000).Chunk(iff.TagMARK, []byte{0}).Bytes()
	r, err = NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	_, err = r.ReadMarker()
	require.ErrorIs(t, err, ErrMalformedChunk)
}

func TestReader_Markers_RestartsMidSequence(t *testing.T) {
	t.Parallel()

	data := audiotest.NewAIFF().Comm(1, 0, 16, 8000).Markers(
		audiotest.Marker{ID: 1, Position: 1, Name: "a"},
		audiotest.Marker{ID: 2, Position: 2, Name: "b"},
	).Bytes()

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = r.ReadMarker()
	require.NoError(t, err)

	markers, err := r.Markers()
	require.NoError(t, err)
	require.Equal(t, []Marker{{1, 1, "a"}, {2, 2, "b"}}, markers)
}

func TestReader_Instrument(t *testing.T) {
	t.Parallel()

	data := audiotest.NewAIFF().
		Comm(1, 100, 16, 8000).
		Markers(
			audiotest.Marker{ID: 1, Position: 10, Name: "sustain begin"},
			audiotest.Marker{ID: 2, Position: 20, Name: "sustain end"},
			audiotest.Marker{ID: 3, Position: 30, Name: "release begin"},
		).
		Instrument(60, -3, -6,
			[3]uint16{uint16(ForwardLooping), 1, 2},
			[3]uint16{uint16(ForwardBackwardLooping), 3, 99},
		).
		Bytes()

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	inst, ok, err := r.Instrument()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Instrument{
		BaseNote:     60,
		Detune:       -3,
		LowNote:      0,
		HighNote:     127,
		LowVelocity:  1,
		HighVelocity: 127,
		Gain:         -6,
		SustainLoop:  Loop{PlayMode: ForwardLooping, Begin: 10, End: 20},
		ReleaseLoop:  Loop{PlayMode: ForwardBackwardLooping, Begin: 30, End: 0},
	}, inst)

	// markers remain readable afterwards
	m, err := r.ReadMarker()
	require.NoError(t, err)
	require.Equal(t, uint16(1), m.ID)
}

func TestReader_Instrument_Absent(t *testing.T) {
	t.Parallel()

	r, err := NewReader(audiotest.NewAIFF().Comm(1, 0, 16, 8000).Reader())
	require.NoError(t, err)

	_, ok, err := r.Instrument()
	require.NoError(t, err)
	require.False(t, ok)

	data := audiotest.NewAIFF().Comm(1, 0, 16, 8000).Chunk(iff.TagINST, make([]byte, 18)).Bytes()
	r, err = NewReader(bytes.NewReader(data))
	require.NoError(t, err)

	_, ok, err = r.Instrument()
	require.ErrorIs(t, err, ErrMalformedChunk)
	require.False(t, ok)
}

func TestPlayMode_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "no looping", NoLooping.String())
	require.Equal(t, "forward", ForwardLooping.String())
	require.Equal(t, "forward/backward", ForwardBackwardLooping.String())
	require.Equal(t, "PlayMode(9)", PlayMode(9).String())
}
