// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Functions return these sentinels wrapped with call-site context
// (fmt.Errorf("Func: %w", ErrX)); callers match them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g. a buffer whose length is not rows*cols, or two matrices of
	// different length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilBuffer indicates that New was given a nil backing buffer.
	ErrNilBuffer = errors.New("matrix: nil buffer")

	// ErrNaNInf indicates a NaN or ±Inf where a finite number is required
	// (tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf not allowed")

	// ErrNilFunc indicates that Map was given a nil element function.
	ErrNilFunc = errors.New("matrix: nil element function")
)
