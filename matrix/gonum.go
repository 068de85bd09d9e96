// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/compute/dtype"
)

// FromGonum copies any gonum matrix into a new float64 Matrix.
// An empty gonum matrix (zero-value *mat.Dense) yields a 0×0 Matrix.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	if e, ok := src.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return Zeros(0, 0, dtype.Float64)
	}
	r, c := src.Dims()
	out, err := Zeros(r, c, dtype.Float64)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	// Dense fast-path: copy the raw row-major storage honoring its stride.
	if d, ok := src.(mat.RawMatrixer); ok {
		raw := d.RawMatrix()
		data := out.buf.Data().([]float64)
		for i := 0; i < r; i++ {
			copy(data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return out, nil
	}

	// Generic fallback via At.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.buf.Set(i*c+j, src.At(i, j))
		}
	}

	return out, nil
}

// ToGonum copies m into a new *mat.Dense. gonum cannot represent
// zero-sized dense matrices, so empty input fails with ErrBadShape.
// Complexity: O(r*c).
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf("ToGonum", ErrBadShape)
	}

	return mat.NewDense(m.r, m.c, dtype.ToFloat64s(m.buf)), nil
}
