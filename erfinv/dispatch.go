// SPDX-License-Identifier: MIT

package erfinv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/compute/dtype"
	"github.com/katalvlaran/compute/keypath"
)

// validateIn rejects nil collections and typed buffers without storage.
func validateIn(tag string, in Collection) error {
	if in == nil {
		return fmt.Errorf("%s: nil input: %w", tag, ErrType)
	}
	if tb, ok := in.(TypedBuffer); ok && dtype.IsNil(tb.Buffer) {
		return fmt.Errorf("%s: nil buffer: %w", tag, ErrType)
	}

	return nil
}

// validateOut ensures out can hold n results.
func validateOut(tag string, out Collection, n int) error {
	if out == nil {
		return fmt.Errorf("%s: nil output: %w", tag, ErrType)
	}
	if tb, ok := out.(TypedBuffer); ok && dtype.IsNil(tb.Buffer) {
		return fmt.Errorf("%s: nil output buffer: %w", tag, ErrType)
	}
	if out.Len() < n {
		return fmt.Errorf("%s: output len %d < input len %d: %w", tag, out.Len(), n, ErrShape)
	}

	return nil
}

// Apply writes erf⁻¹(in[i]) into out[i]. Non-numeric elements become NaN.
// An empty input returns (nil, nil) without touching out. out may alias in.
// Errors: ErrType for a nil in or out, ErrShape when out is shorter than
// in, ErrDomain for |in[i]| > 1.
// Complexity: O(n).
func Apply(out, in Collection) (Collection, error) {
	if err := validateIn("Apply", in); err != nil {
		return nil, err
	}
	n := in.Len()
	if n == 0 {
		return nil, nil
	}
	if err := validateOut("Apply", out, n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, ok := Numeric(in.Index(i))
		if !ok {
			out.Store(i, math.NaN())
			continue
		}
		y, err := Eval(v)
		if err != nil {
			return nil, fmt.Errorf("Apply: index %d: %w", i, err)
		}
		out.Store(i, y)
	}

	return out, nil
}

// ApplyAccessor writes erf⁻¹(fn(in[i], i)) into out[i]. Accessor results
// that are not numeric become NaN.
// Errors: ErrType for a nil accessor, ErrShape, ErrDomain.
// Complexity: O(n) accessor calls.
func ApplyAccessor(out, in Collection, fn Accessor) (Collection, error) {
	if fn == nil {
		return nil, fmt.Errorf("ApplyAccessor: nil accessor: %w", ErrType)
	}
	if err := validateIn("ApplyAccessor", in); err != nil {
		return nil, err
	}
	n := in.Len()
	if n == 0 {
		return nil, nil
	}
	if err := validateOut("ApplyAccessor", out, n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, ok := Numeric(fn(in.Index(i), i))
		if !ok {
			out.Store(i, math.NaN())
			continue
		}
		y, err := Eval(v)
		if err != nil {
			return nil, fmt.Errorf("ApplyAccessor: index %d: %w", i, err)
		}
		out.Store(i, y)
	}

	return out, nil
}

// ApplyPath evaluates the value at path inside every element of in and
// writes the result back to the same path. Missing or non-numeric values
// are replaced by NaN. Elements whose slot cannot be written (records held
// by value, missing intermediate levels) are left as they are.
// in is returned, including when it is empty.
// Errors: ErrType wrapping keypath.ErrEmptyPath, ErrDomain.
// Complexity: O(n·depth).
func ApplyPath(in Collection, path, sep string) (Collection, error) {
	p, err := keypath.Parse(path, sep)
	if err != nil {
		return nil, fmt.Errorf("ApplyPath: %w: %w", ErrType, err)
	}
	if err := validateIn("ApplyPath", in); err != nil {
		return nil, err
	}
	for i := 0; i < in.Len(); i++ {
		rec := in.Index(i)
		y := math.NaN()
		if raw, ok := p.Get(rec); ok {
			if v, ok := Numeric(raw); ok {
				if y, err = Eval(v); err != nil {
					return nil, fmt.Errorf("ApplyPath: index %d: %s: %w", i, p, err)
				}
			}
		}
		p.Set(rec, y)
	}

	return in, nil
}
