// SPDX-License-Identifier: MIT

package dtype

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Constructor allocates a zeroed Buffer of n elements.
// Callers guarantee n >= 0.
type Constructor func(n int) Buffer

// registry is the read-only name → constructor table, built once.
var registry = map[string]Constructor{
	Int8.String():         func(n int) Buffer { return newSlice(Int8, make([]int8, n), storeInt8) },
	Uint8.String():        func(n int) Buffer { return newSlice(Uint8, make([]uint8, n), storeUint8) },
	Uint8Clamped.String(): func(n int) Buffer { return newSlice(Uint8Clamped, make([]uint8, n), storeUint8Clamped) },
	Int16.String():        func(n int) Buffer { return newSlice(Int16, make([]int16, n), storeInt16) },
	Uint16.String():       func(n int) Buffer { return newSlice(Uint16, make([]uint16, n), storeUint16) },
	Int32.String():        func(n int) Buffer { return newSlice(Int32, make([]int32, n), storeInt32) },
	Uint32.String():       func(n int) Buffer { return newSlice(Uint32, make([]uint32, n), storeUint32) },
	Int64.String():        func(n int) Buffer { return newSlice(Int64, make([]int64, n), storeInt64) },
	Uint64.String():       func(n int) Buffer { return newSlice(Uint64, make([]uint64, n), storeUint64) },
	Float32.String():      func(n int) Buffer { return newSlice(Float32, make([]float32, n), storeFloat32) },
	Float64.String():      func(n int) Buffer { return newSlice(Float64, make([]float64, n), storeFloat64) },
}

// Lookup returns the constructor registered under name.
// Unknown names fail with ErrUnknownDType naming the dtype.
func Lookup(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownDType)
	}

	return ctor, nil
}

// MustLookup is Lookup that panics on unknown names.
func MustLookup(name string) Constructor {
	ctor, err := Lookup(name)
	if err != nil {
		panic(err)
	}

	return ctor
}

// New allocates a zeroed buffer of n elements of type dt.
func New(dt DType, n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%s, %d): %w", dt, n, ErrNegativeLength)
	}
	ctor, err := Lookup(dt.String())
	if err != nil {
		return nil, fmt.Errorf("New(%s, %d): %w", dt, n, err)
	}

	return ctor(n), nil
}

// Names lists every registered dtype name in lexical order.
func Names() []string {
	keys := lo.Keys(registry)
	slices.Sort(keys)

	return keys
}

// Wrap adopts an existing numeric slice as a Buffer without copying.
// A Buffer passes through unchanged. []uint8 wraps as Uint8; use
// WrapClamped for Uint8Clamped semantics.
func Wrap(data any) (Buffer, error) {
	switch s := data.(type) {
	case Buffer:
		return s, nil
	case []int8:
		return newSlice(Int8, s, storeInt8), nil
	case []uint8:
		return newSlice(Uint8, s, storeUint8), nil
	case []int16:
		return newSlice(Int16, s, storeInt16), nil
	case []uint16:
		return newSlice(Uint16, s, storeUint16), nil
	case []int32:
		return newSlice(Int32, s, storeInt32), nil
	case []uint32:
		return newSlice(Uint32, s, storeUint32), nil
	case []int64:
		return newSlice(Int64, s, storeInt64), nil
	case []uint64:
		return newSlice(Uint64, s, storeUint64), nil
	case []float32:
		return newSlice(Float32, s, storeFloat32), nil
	case []float64:
		return newSlice(Float64, s, storeFloat64), nil
	default:
		return nil, fmt.Errorf("Wrap(%T): %w", data, ErrUnsupportedSlice)
	}
}

// WrapClamped adopts a []uint8 with saturating uint8_clamped stores.
func WrapClamped(data []uint8) Buffer {
	return newSlice(Uint8Clamped, data, storeUint8Clamped)
}

// MustWrap is Wrap that panics on unsupported slices. Intended for tests
// and package-level tables.
func MustWrap(data any) Buffer {
	b, err := Wrap(data)
	if err != nil {
		panic(err)
	}

	return b
}
