// SPDX-License-Identifier: MIT

// Package dtype names fixed-width numeric element types and provides
// flat buffers of those types.
//
// What & Why:
//
//	Results of a float64 computation are often stored into narrower
//	buffers (int8 pixels, uint16 samples, float32 tensors). A Buffer hides
//	the concrete Go slice behind At/Set in float64 and applies the element
//	type's store rule on every Set:
//	  • integer types truncate toward zero and wrap modulo 2^bits,
//	    NaN and ±Inf store as 0;
//	  • uint8_clamped clamps into [0,255] and rounds half to even;
//	  • float32 rounds to the nearest single; float64 stores verbatim.
//
// Registry:
//
//	Lookup(name) resolves a dtype name ("int8", "float64", ...) into a
//	Constructor. Unknown names fail with ErrUnknownDType, never with a nil
//	constructor deep in the call chain.
//
// Usage:
//
//	buf, err := dtype.New(dtype.Int8, 3)
//	buf.Set(0, 2.9)   // stores 2
//	buf.Set(1, -130)  // stores 126
//
// Complexity:
//
//	At/Set are O(1); New and Wrap are O(n) and O(1) respectively.
package dtype
