// SPDX-License-Identifier: MIT

package dtype_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/compute/dtype"
)

func TestParse_RoundTripsEveryName(t *testing.T) {
	for _, name := range dtype.Names() {
		dt, err := dtype.Parse(name)
		require.NoError(t, err, name)
		require.True(t, dt.Valid())
		require.Equal(t, name, dt.String())
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, name := range []string{"", "float", "int128", "Float64", "invalid"} {
		dt, err := dtype.Parse(name)
		require.ErrorIs(t, err, dtype.ErrUnknownDType, name)
		require.Equal(t, dtype.Invalid, dt)
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	want := []string{
		"float32", "float64", "int16", "int32", "int64", "int8",
		"uint16", "uint32", "uint64", "uint8", "uint8_clamped",
	}
	require.Equal(t, want, dtype.Names())
}

func TestBits(t *testing.T) {
	assert.Equal(t, 8, dtype.Int8.Bits())
	assert.Equal(t, 8, dtype.Uint8Clamped.Bits())
	assert.Equal(t, 16, dtype.Uint16.Bits())
	assert.Equal(t, 32, dtype.Float32.Bits())
	assert.Equal(t, 64, dtype.Uint64.Bits())
	assert.Equal(t, 0, dtype.Invalid.Bits())
	assert.True(t, dtype.Float32.IsFloat())
	assert.False(t, dtype.Int64.IsFloat())
	assert.Equal(t, "dtype(200)", dtype.DType(200).String())
}

func TestLookup(t *testing.T) {
	ctor, err := dtype.Lookup("int16")
	require.NoError(t, err)
	b := ctor(4)
	require.Equal(t, dtype.Int16, b.DType())
	require.Equal(t, 4, b.Len())
	require.IsType(t, []int16{}, b.Data())

	_, err = dtype.Lookup("bogus")
	require.ErrorIs(t, err, dtype.ErrUnknownDType)
	require.Contains(t, err.Error(), "bogus")
}

func TestMustLookup(t *testing.T) {
	require.Equal(t, dtype.Float32, dtype.MustLookup("float32")(1).DType())
	require.Panics(t, func() { dtype.MustLookup("float16") })
}

func TestIsNil(t *testing.T) {
	require.True(t, dtype.IsNil(nil))
	require.True(t, dtype.IsNil((*dtype.Slice[int8])(nil)))
	require.False(t, dtype.IsNil(dtype.MustWrap([]int8{})))
}

func TestNew_Errors(t *testing.T) {
	_, err := dtype.New(dtype.Invalid, 1)
	require.ErrorIs(t, err, dtype.ErrUnknownDType)

	_, err = dtype.New(dtype.DType(200), 1)
	require.ErrorIs(t, err, dtype.ErrUnknownDType)
	require.Contains(t, err.Error(), "dtype(200)")

	_, err = dtype.New(dtype.Float64, -1)
	require.ErrorIs(t, err, dtype.ErrNegativeLength)

	b, err := dtype.New(dtype.Float64, 0)
	require.NoError(t, err)
	require.Equal(t, 0, b.Len())
}

func TestStore_Integers(t *testing.T) {
	tests := []struct {
		dt   dtype.DType
		in   float64
		want float64
	}{
		{dtype.Int8, 2.32675, 2},
		{dtype.Int8, -2.32675, -2},
		{dtype.Int8, 127.9, 127},
		{dtype.Int8, 128, -128},
		{dtype.Int8, -129, 127},
		{dtype.Int8, 300, 44},
		{dtype.Uint8, -1, 255},
		{dtype.Uint8, 256.7, 0},
		{dtype.Int16, 40000, -25536},
		{dtype.Uint16, -2, 65534},
		{dtype.Int32, 2147483648, -2147483648},
		{dtype.Uint32, -0.9, 0},
		{dtype.Int64, -5.5, -5},
		{dtype.Uint64, 3.99, 3},
		{dtype.Int8, math.NaN(), 0},
		{dtype.Int16, math.Inf(1), 0},
		{dtype.Uint32, math.Inf(-1), 0},
	}
	for _, tc := range tests {
		b, err := dtype.New(tc.dt, 1)
		require.NoError(t, err)
		b.Set(0, tc.in)
		assert.Equal(t, tc.want, b.At(0), "%s(%v)", tc.dt, tc.in)
	}
}

func TestStore_Int64Wrap(t *testing.T) {
	b, err := dtype.New(dtype.Int64, 2)
	require.NoError(t, err)
	b.Set(0, 9223372036854775808.0) // 2^63 wraps to min int64
	b.Set(1, -9223372036854775808.0*3)
	v := b.Data().([]int64)
	assert.Equal(t, int64(math.MinInt64), v[0])
	assert.Equal(t, int64(math.MinInt64), v[1]) // -3*2^63 mod 2^64 = 2^63
}

func TestStore_Uint8Clamped(t *testing.T) {
	b, err := dtype.New(dtype.Uint8Clamped, 7)
	require.NoError(t, err)
	for i, v := range []float64{-3, 0.5, 1.5, 2.5, 254.6, 900, math.NaN()} {
		b.Set(i, v)
	}
	assert.Equal(t, []uint8{0, 0, 2, 2, 255, 255, 0}, b.Data())
}

func TestStore_Floats(t *testing.T) {
	f32, _ := dtype.New(dtype.Float32, 2)
	f32.Set(0, 0.1)
	f32.Set(1, math.Inf(-1))
	assert.Equal(t, float64(float32(0.1)), f32.At(0))
	assert.True(t, math.IsInf(f32.At(1), -1))

	f64, _ := dtype.New(dtype.Float64, 1)
	f64.Set(0, math.NaN())
	assert.True(t, math.IsNaN(f64.At(0)))
}

func TestWrap_AliasesInput(t *testing.T) {
	raw := []int16{1, 2, 3}
	b, err := dtype.Wrap(raw)
	require.NoError(t, err)
	require.Equal(t, dtype.Int16, b.DType())
	b.Set(1, -7.8)
	assert.Equal(t, []int16{1, -7, 3}, raw)

	same, err := dtype.Wrap(b)
	require.NoError(t, err)
	assert.Same(t, b, same)

	c := dtype.WrapClamped([]uint8{0})
	c.Set(0, 300)
	assert.Equal(t, 255.0, c.At(0))
	assert.Equal(t, dtype.Uint8Clamped, c.DType())
}

func TestWrap_Unsupported(t *testing.T) {
	for _, v := range []any{nil, "x", []string{"a"}, []any{1.0}, 3.0} {
		_, err := dtype.Wrap(v)
		require.ErrorIs(t, err, dtype.ErrUnsupportedSlice, "%T", v)
	}
	require.Panics(t, func() { dtype.MustWrap([]bool{true}) })
}

func TestToFloat64s(t *testing.T) {
	b := dtype.MustWrap([]uint8{1, 2, 255})
	assert.Equal(t, []float64{1, 2, 255}, dtype.ToFloat64s(b))
}
