// SPDX-License-Identifier: MIT

package erfinv

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/compute/dtype"
	"github.com/katalvlaran/compute/matrix"
)

// Evaluate computes erf⁻¹ over x and routes by shape:
//
//  1. Scalar: evaluated directly; options are ignored, even invalid ones.
//  2. Options are validated. Invalid values fail with ErrType naming the key.
//  3. Matrix: a new matrix of the requested dtype (default float64) receives
//     the results, or x itself under WithCopy(false).
//  4. Collection with WithPath: values are read and written at the path
//     inside every element; x is returned.
//  5. Other collections: the output is x under WithCopy(false), a new
//     TypedBuffer of the requested dtype (default float64) when WithDType
//     is set or x is a TypedBuffer, and a new Sequence otherwise. With WithAccessor the accessor supplies values
//     (non-numeric results become NaN); without it every element must be
//     numeric, checked before any write.
//  6. Anything else, including a TypedBuffer without a buffer, fails with
//     ErrType.
//
// Empty matrices and collections return a nil Value, except under
// WithPath, which returns x unchanged.
func Evaluate(x Value, opts ...Option) (Value, error) {
	if s, ok := x.(Scalar); ok {
		o, _ := gatherOptions(opts...)
		y, err := Eval(float64(s))
		o.logger.LogEvaluate(StrategyScalar, KindScalar, 1, o.copy, o.dt, err)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: %w", err)
		}
		return Scalar(y), nil
	}

	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	switch v := x.(type) {
	case Matrix:
		return o.evalMatrix(v)
	case Collection:
		return o.evalCollection(v)
	case nil:
		return nil, fmt.Errorf("Evaluate: nil input: %w", ErrType)
	default:
		return nil, fmt.Errorf("Evaluate: unsupported input shape %T: %w", x, ErrType)
	}
}

// EvaluateAny classifies x with Of and evaluates the result.
func EvaluateAny(x any, opts ...Option) (Value, error) {
	v, err := Of(x)
	if err != nil {
		return nil, err
	}

	return Evaluate(v, opts...)
}

// Of classifies a raw Go value:
//   - Value implementations pass through,
//   - numbers become Scalar,
//   - []any becomes Sequence,
//   - typed numeric slices and dtype.Buffer become TypedBuffer (aliased),
//   - *matrix.Matrix becomes Matrix; a gonum mat.Matrix is copied into one,
//   - any other slice or array becomes Records (elements are copied out).
//
// Only []any, typed slices and buffers are aliased. Records built from other
// slices such as []int or []map[string]any are copies, so WithCopy(false)
// writes into the returned Records and leaves the caller's slice unchanged;
// a key path still reaches maps and pointers shared with it.
//
// Strings, bools, nil, maps, structs and pointers fail with ErrType.
func Of(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return nil, fmt.Errorf("Of: nil: unsupported input shape: %w", ErrType)
	case Value:
		return v, nil
	case bool, string:
		return nil, fmt.Errorf("Of(%T): unsupported input shape: %w", x, ErrType)
	case []any:
		return Sequence(v), nil
	case dtype.Buffer:
		if dtype.IsNil(v) {
			return nil, fmt.Errorf("Of(%T): nil buffer: %w", x, ErrType)
		}
		return TypedBuffer{v}, nil
	case *matrix.Matrix:
		if v == nil {
			return nil, fmt.Errorf("Of: %w", matrix.ErrNilMatrix)
		}
		return Matrix{v}, nil
	case mat.Matrix:
		m, err := matrix.FromGonum(v)
		if err != nil {
			return nil, fmt.Errorf("Of: %w", err)
		}
		return Matrix{m}, nil
	}

	if f, ok := Numeric(x); ok {
		return Scalar(f), nil
	}
	if b, err := dtype.Wrap(x); err == nil {
		return TypedBuffer{b}, nil
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return Records(lo.Times(rv.Len(), func(i int) any {
			return rv.Index(i).Interface()
		})), nil
	}

	return nil, fmt.Errorf("Of(%T): unsupported input shape: %w", x, ErrType)
}

func (o Options) evalMatrix(x Matrix) (Value, error) {
	if err := matrix.ValidateNotNil(x.Matrix); err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}

	out := x.Matrix
	if o.copy {
		m, err := matrix.Zeros(x.Rows(), x.Cols(), o.dt)
		if err != nil {
			return nil, fmt.Errorf("Evaluate: %w", err)
		}
		out = m
	}
	res, err := ApplyMatrix(out, x.Matrix)
	o.logger.LogEvaluate(StrategyMatrix, KindMatrix, x.Len(), o.copy, out.DType(), err)
	if err != nil || res == nil {
		return nil, wrapEvaluate(err)
	}

	return Matrix{res}, nil
}

func (o Options) evalCollection(x Collection) (Value, error) {
	if err := validateIn("Evaluate", x); err != nil {
		return nil, err
	}
	n := x.Len()
	if o.path != "" {
		res, err := ApplyPath(x, o.path, o.sep)
		o.logger.LogEvaluate(StrategyPath, x.Kind(), n, false, o.dt, err)
		if err != nil {
			return nil, wrapEvaluate(err)
		}
		return res, nil
	}
	if n == 0 {
		return nil, nil
	}

	out := o.output(x)
	var (
		res Collection
		err error
	)
	strategy := StrategyFlat
	if o.accessor != nil {
		strategy = StrategyAccessor
		res, err = ApplyAccessor(out, x, o.accessor)
	} else if err = requireNumeric(x); err == nil {
		res, err = Apply(out, x)
	}
	o.logger.LogEvaluate(strategy, x.Kind(), n, o.copy, outDType(out), err)
	if err != nil || res == nil {
		return nil, wrapEvaluate(err)
	}

	return res, nil
}

// output selects where results for x are stored: x itself in place, a new
// buffer of the resolved dtype for typed inputs or an explicit dtype, and a
// new Sequence otherwise.
func (o Options) output(x Collection) Collection {
	if !o.copy {
		return x
	}
	if _, typed := x.(TypedBuffer); !typed && !o.dtypeSet {
		return make(Sequence, x.Len())
	}

	return TypedBuffer{o.alloc(x.Len())}
}

// requireNumeric fails with ErrType at the first non-numeric element.
func requireNumeric(x Collection) error {
	for i := 0; i < x.Len(); i++ {
		if _, ok := Numeric(x.Index(i)); !ok {
			return fmt.Errorf("index %d: %T is not numeric: %w", i, x.Index(i), ErrType)
		}
	}

	return nil
}

// outDType reports the element type stored by out; generic sequences hold
// float64 results.
func outDType(out Collection) dtype.DType {
	if tb, ok := out.(TypedBuffer); ok {
		return tb.DType()
	}

	return dtype.Float64
}

func wrapEvaluate(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("Evaluate: %w", err)
}
