// SPDX-License-Identifier: MIT

package erfinv

import (
	"github.com/katalvlaran/compute/dtype"
	"github.com/katalvlaran/compute/matrix"
)

// Kind names the shape of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindScalar
	KindSequence
	KindRecords
	KindTypedBuffer
	KindMatrix
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindScalar:      "scalar",
	KindSequence:    "sequence",
	KindRecords:     "records",
	KindTypedBuffer: "typed",
	KindMatrix:      "matrix",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindInvalid]
}

// Value is an input or output of Evaluate. A nil Value is the null result
// returned for empty inputs.
type Value interface {
	Kind() Kind
}

// Collection is an indexable, writable array-like Value.
type Collection interface {
	Value
	Len() int
	Index(i int) any
	Store(i int, v float64)
}

// Accessor extracts the i-th element's numeric value from a record.
type Accessor func(record any, i int) any

// Scalar is a single number.
type Scalar float64

func (Scalar) Kind() Kind { return KindScalar }

// Sequence is a generic list of mixed values.
type Sequence []any

func (Sequence) Kind() Kind { return KindSequence }
func (s Sequence) Len() int { return len(s) }
func (s Sequence) Index(i int) any { return s[i] }
func (s Sequence) Store(i int, v float64) { s[i] = v }

// Records is a list of arbitrary elements, typically maps or struct
// pointers, reached through an Accessor or a key path.
type Records []any

func (Records) Kind() Kind { return KindRecords }
func (r Records) Len() int { return len(r) }
func (r Records) Index(i int) any { return r[i] }
func (r Records) Store(i int, v float64) { r[i] = v }

// TypedBuffer is a packed numeric buffer of one dtype. Stores narrow per
// the dtype's conversion rules.
type TypedBuffer struct {
	dtype.Buffer
}

func (TypedBuffer) Kind() Kind { return KindTypedBuffer }
func (b TypedBuffer) Index(i int) any { return b.At(i) }
func (b TypedBuffer) Store(i int, v float64) { b.Set(i, v) }

// Matrix is a dense 2-D input. It is not a Collection: matrices are only
// evaluated elementwise over their flat buffer.
type Matrix struct {
	*matrix.Matrix
}

func (Matrix) Kind() Kind { return KindMatrix }
