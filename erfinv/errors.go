// SPDX-License-Identifier: MIT

package erfinv

import "errors"

// Every message is prefixed with "erfinv: ..." for consistency. Functions
// return these sentinels wrapped with call-site context; callers match them
// via errors.Is. Errors from dtype, matrix and keypath are wrapped so that
// both this package's sentinel and the original one match.
var (
	// ErrDomain is returned when a scalar argument lies outside [-1, 1].
	ErrDomain = errors.New("erfinv: value must lie in [-1, 1]")

	// ErrType is returned for an unsupported input shape, an invalid option,
	// an unresolvable dtype, or a non-numeric element on the strict flat path.
	ErrType = errors.New("erfinv: invalid type")

	// ErrShape is returned when an output is shorter than its input, or
	// when input and output matrices differ in length.
	ErrShape = errors.New("erfinv: length mismatch")
)
