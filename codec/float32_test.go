// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat32Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{name: "zero", in: 0, want: 0},
		{name: "negative zero", in: float32(math.Copysign(0, -1)), want: 0},
		{name: "half", in: 0.5, want: 1 << 30},
		{name: "minus half", in: -0.5, want: -(1 << 30)},
		{name: "largest below one", in: math.Nextafter32(1, 0), want: 0x7FFFFF80},
		{name: "one saturates", in: 1, want: math.MaxInt32},
		{name: "minus one saturates", in: -1, want: math.MinInt32},
		{name: "2^31 saturates", in: 1 << 31, want: math.MaxInt32},
		{name: "-2^31 saturates", in: -(1 << 31), want: math.MinInt32},
		{name: "+Inf", in: float32(math.Inf(1)), want: math.MaxInt32},
		{name: "-Inf", in: float32(math.Inf(-1)), want: math.MinInt32},
		{name: "NaN", in: float32(math.NaN()), want: 0},
		{name: "2^-31", in: 1.0 / (1 << 31), want: 1},
		{name: "below resolution", in: 1.0 / (1 << 33), want: 0},
		{name: "denormal", in: math.SmallestNonzeroFloat32, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Float32Decode(math.Float32bits(tt.in)))
		})
	}
}

func TestFloat32Encode(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(0x3F800000), Float32Encode(math.MaxInt32))
	require.Equal(t, uint32(0xBF800000), Float32Encode(math.MinInt32))
	require.Equal(t, uint32(0x3F000000), Float32Encode(1<<30))
	require.Equal(t, uint32(0), Float32Encode(0))

	// sample values with 24 significant bits survive a round trip
	for _, v := range []int32{1 << 8, -(1 << 8), 0x7FFFFF00, -0x7FFFFF00, 12345 << 16} {
		require.Equal(t, v, Float32Decode(Float32Encode(v)), "%d", v)
	}
}

func TestFloat32_ReadBoundaries(t *testing.T) {
	t.Parallel()

	var data []byte
	for _, bits := range []uint32{0x3F800000, 0xBF800000, 0x4F000000, 0xCF000000, 0x3F000000} {
		data = binary.BigEndian.AppendUint32(data, bits)
	}

	c, err := New(Float32, 0, nil)
	require.NoError(t, err)

	dst := make([]byte, len(data))
	n, err := c.Read(newTestStream(data, 1), dst)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, nativeSamples(4, []int32{
		math.MaxInt32, math.MinInt32, math.MaxInt32, math.MinInt32, 1 << 30,
	}), dst)

	f := make([]float32, 5)
	n, err = c.ReadFloat(newTestStream(data, 1), f)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []float32{1, -1, 1, -1, 0.5}, f)
}

func TestFloat32_Encode(t *testing.T) {
	t.Parallel()

	c, err := New(Float32, 0, nil)
	require.NoError(t, err)

	out, err := c.Encode(nil, nativeSamples(4, []int32{math.MinInt32, 1 << 30}))
	require.NoError(t, err)
	require.Equal(t, []byte{0xBF, 0x80, 0x00, 0x00, 0x3F, 0x00, 0x00, 0x00}, out)
}
