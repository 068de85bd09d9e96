// SPDX-License-Identifier: MIT

package dtype

import "reflect"

// Number is the set of element types a Slice can hold.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64
}

// Buffer is a flat, fixed-length numeric buffer addressed by linear index.
// At widens to float64; Set narrows with the dtype's store rule.
// Indices outside [0, Len()) panic like slice indexing.
type Buffer interface {
	// DType returns the declared element type.
	DType() DType

	// Len returns the number of elements.
	Len() int

	// At returns element i widened to float64.
	At(i int) float64

	// Set stores v into element i, coerced per DType.
	Set(i int, v float64)

	// Data returns the backing slice ([]int8, []float64, ...). It aliases
	// the buffer.
	Data() any
}

// IsNil reports whether b is nil or a nil pointer behind the interface.
func IsNil(b Buffer) bool {
	if b == nil {
		return true
	}
	rv := reflect.ValueOf(b)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Slice is the generic Buffer over a Go slice.
type Slice[T Number] struct {
	dt    DType
	data  []T
	store func(float64) T
}

var _ Buffer = (*Slice[float64])(nil)

// newSlice binds data to a dtype tag and its store rule.
func newSlice[T Number](dt DType, data []T, store func(float64) T) *Slice[T] {
	return &Slice[T]{dt: dt, data: data, store: store}
}

// DType returns the declared element type.
func (s *Slice[T]) DType() DType { return s.dt }

// Len returns the number of elements.
func (s *Slice[T]) Len() int { return len(s.data) }

// At returns element i as float64.
func (s *Slice[T]) At(i int) float64 { return float64(s.data[i]) }

// Set stores v into element i using the dtype's store rule.
func (s *Slice[T]) Set(i int, v float64) { s.data[i] = s.store(v) }

// Data returns the backing slice as any.
func (s *Slice[T]) Data() any { return s.data }

// Values returns the typed backing slice. It aliases the buffer.
func (s *Slice[T]) Values() []T { return s.data }

// ToFloat64s copies any Buffer into a new []float64.
// Complexity: O(n).
func ToFloat64s(b Buffer) []float64 {
	out := make([]float64, b.Len())
	for i := range out {
		out[i] = b.At(i)
	}

	return out
}
