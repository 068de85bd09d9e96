// SPDX-License-Identifier: MIT

package erfinv

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/compute/matrix"
)

// ApplyMatrix writes erf⁻¹ of every element of in into the same linear
// position of out. Shapes may differ as long as lengths match; out may be
// in itself. out's dtype narrows the stored results.
// An empty input returns (nil, nil).
// Errors: ErrShape (wrapping matrix.ErrDimensionMismatch), matrix.ErrNilMatrix,
// ErrDomain.
// Complexity: O(rows·cols).
func ApplyMatrix(out, in *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.ValidateSameLen(out, in); err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return nil, fmt.Errorf("ApplyMatrix: %w: %w", ErrShape, err)
		}
		return nil, fmt.Errorf("ApplyMatrix: %w", err)
	}
	if in.Len() == 0 {
		return nil, nil
	}
	if err := matrix.Map(out, in, Eval); err != nil {
		return nil, fmt.Errorf("ApplyMatrix: %w", err)
	}

	return out, nil
}
