// SPDX-License-Identifier: MIT

// Package matrix binds a two-dimensional shape to a flat row-major buffer
// of a declared element type.
//
// What & Why:
//
//	A Matrix is the tuple (rows, cols, dtype, buffer) with
//	Len() == rows*cols. Element (i, j) lives at buffer index i*cols + j.
//	Storage is a dtype.Buffer, so writes through Set (or directly through
//	Buffer().Set) follow the element type's store rule: an int16 matrix
//	truncates, a uint8_clamped matrix saturates, a float64 matrix is exact.
//
// Shapes:
//
//	Zero rows or zero columns are legal and describe an empty matrix
//	(Len() == 0). Negative dimensions fail with ErrBadShape.
//
// Interop:
//
//	FromGonum and ToGonum convert to and from gonum.org/v1/gonum/mat
//	float64 matrices.
//
// Complexity:
//
//	Rows, Cols, Len, At and Set are O(1). Clone and the gonum
//	converters are O(rows*cols).
package matrix
