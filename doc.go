// Package compute is a small numeric toolkit built around the inverse error
// function and the typed containers it is evaluated over.
//
// What is inside?
//
//	erfinv/    erf⁻¹ kernel plus a resolver that lifts it over scalars,
//	           generic and typed arrays, records and matrices
//	dtype/     fixed-width element types and flat typed buffers with
//	           truncating, wrapping and clamping store rules
//	matrix/    row-major matrices over dtype buffers, element-wise kernels,
//	           gonum interop
//	keypath/   deep get / deep set over nested maps, slices and structs
//
// Quick example:
//
//	v, err := erfinv.EvaluateAny([]float64{0.999, -0.999}, erfinv.WithDType("int8"))
//	// v.(erfinv.TypedBuffer).Data() == []int8{2, -2}
//
// Runnable scenarios live under examples/.
//
//	go get github.com/katalvlaran/compute
package compute
