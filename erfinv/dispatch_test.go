// SPDX-License-Identifier: MIT

package erfinv_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/compute/dtype"
	"github.com/katalvlaran/compute/erfinv"
	"github.com/katalvlaran/compute/keypath"
)

type celsius float64

type sample struct {
	Value float64
	Label string
}

func TestNumeric(t *testing.T) {
	yes := []any{0.5, float32(0.5), 1, int8(-1), int16(2), int32(3), int64(4),
		uint(5), uint8(6), uint16(7), uint32(8), uint64(9), celsius(0.25)}
	for _, v := range yes {
		_, ok := erfinv.Numeric(v)
		assert.True(t, ok, "%T", v)
	}
	f, _ := erfinv.Numeric(celsius(0.25))
	assert.Equal(t, 0.25, f)

	x := 0.5
	no := []any{nil, true, "0.5", &x, []any{0.5}, map[string]any{}, json.Number("0.5"), struct{}{}}
	for _, v := range no {
		_, ok := erfinv.Numeric(v)
		assert.False(t, ok, "%T", v)
	}
}

func TestApply_NaNFillsNonNumeric(t *testing.T) {
	in := erfinv.Sequence{0.5, "a", nil, true, int8(0)}
	out := make(erfinv.Sequence, len(in))

	res, err := erfinv.Apply(out, in)
	require.NoError(t, err)
	require.Same(t, &out[0], &res.(erfinv.Sequence)[0])

	assert.InDelta(t, 0.4769, out[0], 1e-4)
	for i := 1; i <= 3; i++ {
		assert.True(t, math.IsNaN(out[i].(float64)), "index %d", i)
	}
	assert.Equal(t, 0.0, out[4])
	assert.Equal(t, "a", in[1], "input untouched")
}

func TestApply_InPlaceAndTyped(t *testing.T) {
	seq := erfinv.Sequence{0.5, -0.5}
	_, err := erfinv.Apply(seq, seq)
	require.NoError(t, err)
	assert.InDelta(t, -0.4769, seq[1], 1e-4)

	out := erfinv.TypedBuffer{Buffer: dtype.MustWrap(make([]int8, 2))}
	_, err = erfinv.Apply(out, erfinv.Sequence{0.999, -0.999})
	require.NoError(t, err)
	assert.Equal(t, []int8{2, -2}, out.Data())
}

func TestApply_Errors(t *testing.T) {
	res, err := erfinv.Apply(nil, erfinv.Sequence{})
	require.NoError(t, err)
	assert.Nil(t, res, "empty input short-circuits")

	_, err = erfinv.Apply(make(erfinv.Sequence, 1), erfinv.Sequence{0.1, 0.2})
	require.ErrorIs(t, err, erfinv.ErrShape)

	_, err = erfinv.Apply(nil, erfinv.Sequence{0.1})
	require.ErrorIs(t, err, erfinv.ErrType)

	_, err = erfinv.Apply(erfinv.TypedBuffer{}, erfinv.Sequence{0.1})
	require.ErrorIs(t, err, erfinv.ErrType)

	_, err = erfinv.Apply(make(erfinv.Sequence, 1), nil)
	require.ErrorIs(t, err, erfinv.ErrType)

	_, err = erfinv.Apply(make(erfinv.Sequence, 1), erfinv.TypedBuffer{})
	require.ErrorIs(t, err, erfinv.ErrType)

	_, err = erfinv.ApplyAccessor(make(erfinv.Sequence, 1), nil, func(any, int) any { return 0.0 })
	require.ErrorIs(t, err, erfinv.ErrType)

	_, err = erfinv.Apply(make(erfinv.Sequence, 2), erfinv.Sequence{0.1, 5})
	require.ErrorIs(t, err, erfinv.ErrDomain)
	assert.Contains(t, err.Error(), "index 1")
}

func TestApplyAccessor(t *testing.T) {
	in := erfinv.Records{
		map[string]any{"x": 0.5},
		map[string]any{"x": "n/a"},
		&sample{Value: -0.5},
	}
	get := func(r any, i int) any {
		switch v := r.(type) {
		case map[string]any:
			return v["x"]
		case *sample:
			return v.Value
		}
		return nil
	}
	out := make(erfinv.Sequence, len(in))

	_, err := erfinv.ApplyAccessor(out, in, get)
	require.NoError(t, err, spew.Sdump(in))
	assert.InDelta(t, 0.4769, out[0], 1e-4)
	assert.True(t, math.IsNaN(out[1].(float64)))
	assert.InDelta(t, -0.4769, out[2], 1e-4)

	_, err = erfinv.ApplyAccessor(out, in, nil)
	require.ErrorIs(t, err, erfinv.ErrType)

	var seen []int
	_, err = erfinv.ApplyAccessor(out, in, func(_ any, i int) any {
		seen = append(seen, i)
		return 0.0
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestApplyPath_NaNFill(t *testing.T) {
	in := erfinv.Records{
		map[string]any{"x": 0.5},
		map[string]any{"x": true},
		map[string]any{"x": nil},
		map[string]any{"x": []any{}},
		map[string]any{"x": map[string]any{}},
		map[string]any{"y": 0.5},
	}
	res, err := erfinv.ApplyPath(in, "x", "")
	require.NoError(t, err)
	require.Same(t, &in[0], &res.(erfinv.Records)[0], "path variant returns its input")

	assert.InDelta(t, 0.4769, in[0].(map[string]any)["x"], 1e-4, spew.Sdump(in))
	for i := 1; i < len(in); i++ {
		v := in[i].(map[string]any)["x"]
		assert.True(t, math.IsNaN(v.(float64)), "record %d: %s", i, spew.Sdump(in[i]))
	}
}

func TestApplyPath_NestedAndCustomSep(t *testing.T) {
	rec := map[string]any{"x": []any{9, 0.5}}
	_, err := erfinv.ApplyPath(erfinv.Records{rec}, "x/1", "/")
	require.NoError(t, err)
	assert.Equal(t, 9, rec["x"].([]any)[0])
	assert.InDelta(t, 0.4769, rec["x"].([]any)[1], 1e-4)

	s := &sample{Value: 0.999}
	_, err = erfinv.ApplyPath(erfinv.Records{s}, "Value", ".")
	require.NoError(t, err)
	assert.InDelta(t, 2.32675, s.Value, 1e-4)
}

func TestApplyPath_EdgeCases(t *testing.T) {
	empty := erfinv.Records{}
	res, err := erfinv.ApplyPath(empty, "x", "")
	require.NoError(t, err)
	assert.Equal(t, empty, res)

	_, err = erfinv.ApplyPath(nil, "x", "")
	require.ErrorIs(t, err, erfinv.ErrType)

	_, err = erfinv.ApplyPath(empty, "", "")
	require.ErrorIs(t, err, erfinv.ErrType)
	require.ErrorIs(t, err, keypath.ErrEmptyPath)

	_, err = erfinv.ApplyPath(erfinv.Records{map[string]any{"x": 3}}, "x", "")
	require.ErrorIs(t, err, erfinv.ErrDomain)
}
