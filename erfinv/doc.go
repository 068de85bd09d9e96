// SPDX-License-Identifier: MIT

// Package erfinv evaluates the inverse error function erf⁻¹ over scalars,
// generic and typed arrays, record collections and matrices.
//
// What & Why:
//
//	erf⁻¹ maps [-1, 1] onto the extended reals and is the building block of
//	Gaussian quantiles: Φ⁻¹(p) = √2·erf⁻¹(2p-1). Eval computes it for one
//	float64. Evaluate lifts Eval over every supported container shape with
//	one set of options, so callers do not write the loop, the output
//	allocation, or the dtype narrowing themselves.
//
// Shapes:
//
//	Scalar       a single number
//	Sequence     []any, possibly mixed
//	TypedBuffer  a dtype.Buffer ([]int8, []float32, ...)
//	Records      a slice of maps or struct pointers
//	Matrix       a *matrix.Matrix over any dtype
//
// Of classifies raw Go values into these shapes; EvaluateAny combines Of
// and Evaluate.
//
// Options:
//
//	WithCopy(false)      write results into the input
//	WithDType(name)      element type of the allocated output
//	WithAccessor(fn)     read element i as fn(x[i], i)
//	WithPath(p), WithSep read and write element values at a nested key path
//	WithLogger(l)        debug record per call
//
// ParseOptions builds the same options from a map[string]any.
//
// Errors:
//
//	ErrDomain  a value outside [-1, 1]
//	ErrType    an unsupported shape, an invalid option, or a non-numeric
//	           element without an accessor
//	ErrShape   output shorter than input, or matrix length mismatch
//
// Concurrency:
//
//	All functions are synchronous and keep no state. Concurrent calls are
//	safe as long as they do not share an output.
package erfinv
