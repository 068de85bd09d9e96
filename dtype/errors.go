// SPDX-License-Identifier: MIT

package dtype

import "errors"

var (
	// ErrUnknownDType is returned when a dtype name has no buffer constructor.
	ErrUnknownDType = errors.New("dtype: unknown data type")

	// ErrUnsupportedSlice is returned by Wrap for slices of non-numeric elements.
	ErrUnsupportedSlice = errors.New("dtype: unsupported slice type")

	// ErrNegativeLength is returned when a buffer of negative length is requested.
	ErrNegativeLength = errors.New("dtype: negative length")
)
