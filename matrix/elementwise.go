// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise kernels over the flat row-major buffer so callers
//     do not duplicate tight loops (Map, AllClose).
//   - Keep all loops deterministic: flat order 0..n-1.
//
// Determinism & Performance:
//   - float64 fast-path operates on the backing slices directly.
//   - Other dtypes go through Buffer.At/Set, which applies the store rule.
//   - No allocations; O(r*c) time.

package matrix

import (
	"fmt"
	"math"
)

// ElementFunc maps one element. A non-nil error aborts the kernel.
type ElementFunc func(v float64) (float64, error)

// Map writes fn(src[k]) into dst[k] for every linear index k. dst and src
// must hold the same number of elements; shapes may differ and dst may be
// src (in place). dst's dtype narrows every result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNilFunc, or fn's error
// wrapped with the failing index. Elements before the failing index are
// already written.
// Complexity: O(r*c).
func Map(dst, src *Matrix, fn ElementFunc) error {
	if err := ValidateSameLen(dst, src); err != nil {
		return matrixErrorf("Map", err)
	}
	if fn == nil {
		return matrixErrorf("Map", ErrNilFunc)
	}
	n := src.Len()

	// float64 fast-path: flat slices, no interface dispatch per element.
	if ds, ok := dst.buf.Data().([]float64); ok {
		if ss, ok := src.buf.Data().([]float64); ok {
			for k := 0; k < n; k++ {
				v, err := fn(ss[k])
				if err != nil {
					return matrixErrorf(fmt.Sprintf("Map: index %d", k), err)
				}
				ds[k] = v
			}
			return nil
		}
	}

	// Generic path via the buffers' store rules.
	for k := 0; k < n; k++ {
		v, err := fn(src.buf.At(k))
		if err != nil {
			return matrixErrorf(fmt.Sprintf("Map: index %d", k), err)
		}
		dst.buf.Set(k, v)
	}

	return nil
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// NaN matches only NaN at the same position; infinities match only an equal
// infinity. Returns (true, nil) if every element satisfies the relation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail
//     with ErrNaNInf.
//
// Complexity: O(r*c) time, O(1) space.
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	for k := 0; k < a.Len(); k++ {
		if !isClose(a.buf.At(k), b.buf.At(k), rtol, atol) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

func isClose(av, bv, rtol, atol float64) bool {
	switch {
	case math.IsNaN(av) || math.IsNaN(bv):
		return math.IsNaN(av) && math.IsNaN(bv)
	case math.IsInf(av, 0) || math.IsInf(bv, 0):
		return av == bv
	default:
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}
}
