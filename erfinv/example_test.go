// SPDX-License-Identifier: MIT

package erfinv_test

import (
	"fmt"

	"github.com/katalvlaran/compute/erfinv"
)

func ExampleEval() {
	y, err := erfinv.Eval(0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", y)

	_, err = erfinv.Eval(5)
	fmt.Println(err)
	// Output:
	// 0.476936
	// Eval(5): erfinv: value must lie in [-1, 1]
}

func ExampleEvaluateAny_dtype() {
	v, err := erfinv.EvaluateAny([]float64{0.999, -0.999}, erfinv.WithDType("int8"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.(erfinv.TypedBuffer).Data())
	// Output: [2 -2]
}

func ExampleEvaluateAny_path() {
	recs := []map[string]any{
		{"x": 0.5},
		{"x": "n/a"},
	}
	if _, err := erfinv.EvaluateAny(recs, erfinv.WithPath("x")); err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range recs {
		fmt.Printf("%.4f\n", r["x"])
	}
	// Output:
	// 0.4769
	// NaN
}

func ExampleParseOptions() {
	opts, err := erfinv.ParseOptions(map[string]any{"copy": false})
	if err != nil {
		fmt.Println(err)
		return
	}
	in := erfinv.Sequence{0.25}
	if _, err = erfinv.Evaluate(in, opts...); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", in[0])

	_, err = erfinv.ParseOptions(map[string]any{"colour": "red"})
	fmt.Println(err)
	// Output:
	// 0.225312
	// ParseOptions: unknown option "colour": erfinv: invalid type
}
