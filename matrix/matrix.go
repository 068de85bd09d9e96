// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/compute/dtype"
)

// matrixErrorf wraps an underlying error with a method tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a row-major matrix over a typed flat buffer.
// r is rows, c is columns, and buf holds r*c elements in row-major order.
type Matrix struct {
	r, c int          // number of rows and columns
	buf  dtype.Buffer // flat backing storage, Len() == r*c
}

// New binds buf to an rows×cols shape without copying.
// Stage 1 (Validate): non-negative dims, non-nil buffer, Len()==rows*cols.
// Stage 2 (Finalize): return the view; writes alias buf.
// Complexity: O(1).
func New(buf dtype.Buffer, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(fmt.Sprintf("New(%d,%d)", rows, cols), ErrBadShape)
	}
	if dtype.IsNil(buf) {
		return nil, matrixErrorf("New", ErrNilBuffer)
	}
	if buf.Len() != rows*cols {
		return nil, matrixErrorf(fmt.Sprintf("New(%d,%d): len %d", rows, cols, buf.Len()), ErrDimensionMismatch)
	}

	return &Matrix{r: rows, c: cols, buf: buf}, nil
}

// Zeros allocates a zeroed rows×cols matrix of element type dt.
// Complexity: O(rows*cols) time and memory.
func Zeros(rows, cols int, dt dtype.DType) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(fmt.Sprintf("Zeros(%d,%d)", rows, cols), ErrBadShape)
	}
	buf, err := dtype.New(dt, rows*cols)
	if err != nil {
		return nil, matrixErrorf("Zeros", err)
	}

	return &Matrix{r: rows, c: cols, buf: buf}, nil
}

// FromFloat64s wraps a row-major []float64 as a float64 matrix.
// The slice is adopted, not copied.
func FromFloat64s(rows, cols int, data []float64) (*Matrix, error) {
	return New(dtype.MustWrap(data), rows, cols)
}

// Rows returns the number of rows in the matrix.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.r, m.c }

// Len returns the element count rows*cols.
func (m *Matrix) Len() int { return m.buf.Len() }

// DType returns the element type of the backing buffer.
func (m *Matrix) DType() dtype.DType { return m.buf.DType() }

// Buffer returns the flat backing buffer. It aliases the matrix.
func (m *Matrix) Buffer() dtype.Buffer { return m.buf }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col) widened to float64.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.buf.At(idx), nil
}

// Set stores v at (row, col) using the dtype store rule.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.buf.Set(idx, v)

	return nil
}

// Clone returns a deep copy with the same shape and dtype. A custom buffer
// whose dtype is not registered is copied as float64.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{r: m.r, c: m.c, buf: cloneBuffer(m.buf)}
}

// cloneBuffer copies the backing slice bit-for-bit, so 64-bit integers
// beyond 2^53 survive. Unknown Buffer implementations fall back to At/Set,
// and to a float64 copy when their dtype is not registered.
func cloneBuffer(b dtype.Buffer) dtype.Buffer {
	var data any
	switch s := b.Data().(type) {
	case []int8:
		data = slices.Clone(s)
	case []uint8:
		if b.DType() == dtype.Uint8Clamped {
			return dtype.WrapClamped(slices.Clone(s))
		}
		data = slices.Clone(s)
	case []int16:
		data = slices.Clone(s)
	case []uint16:
		data = slices.Clone(s)
	case []int32:
		data = slices.Clone(s)
	case []uint32:
		data = slices.Clone(s)
	case []int64:
		data = slices.Clone(s)
	case []uint64:
		data = slices.Clone(s)
	case []float32:
		data = slices.Clone(s)
	case []float64:
		data = slices.Clone(s)
	default:
		out, err := dtype.New(b.DType(), b.Len())
		if err != nil {
			return dtype.MustWrap(dtype.ToFloat64s(b))
		}
		for i := 0; i < b.Len(); i++ {
			out.Set(i, b.At(i))
		}
		return out
	}

	return dtype.MustWrap(data)
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.buf.At(i*m.c+j))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
