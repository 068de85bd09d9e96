// SPDX-License-Identifier: MIT

package erfinv

import (
	"fmt"
	"math"
)

// centralLimit bounds the central rational approximation: |x| <= 0.7.
const centralLimit = 0.7

// Tail regime boundaries on w = -ln((1-|x|)(1+|x|)).
const (
	tailNear = 5.0  // w < 5: polynomial in w-2.5
	tailFar  = 16.0 // 5 <= w < 16: polynomial in sqrt(w)-3; beyond: sqrt(w)-5
)

// twoOverSqrtPi is d/dy erf(y) at y=0.
const twoOverSqrtPi = 2 / math.SqrtPi

// Central region coefficients, highest degree first, in t = x².
var (
	centralNum = [...]float64{-0.140543331, 0.914624893, -1.645349621, 0.886226899}
	centralDen = [...]float64{0.012229801, -0.329097515, 1.442710462, -2.118377725, 1}
)

// Tail coefficients from M. Giles, "Approximating the erfinv function"
// (GPU Computing Gems, 2010), highest degree first.
var (
	tailNearCoeffs = [...]float64{
		2.81022636e-08, 3.43273939e-07, -3.5233877e-06,
		-4.39150654e-06, 0.00021858087, -0.00125372503,
		-0.00417768164, 0.246640727, 1.50140941,
	}
	tailMidCoeffs = [...]float64{
		-0.000200214257, 0.000100950558, 0.00134934322,
		-0.00367342844, 0.00573950773, -0.0076224613,
		0.00943887047, 1.00167406, 2.83297682,
	}
	tailFarCoeffs = [...]float64{
		-2.7109920616438573243e-11, -2.5556418169965252055e-10,
		1.5076572693500548083e-09, -3.7894654401267369937e-09,
		7.6157012080783393804e-09, -1.4960026627149240478e-08,
		2.9147953450901080826e-08, -6.7711997758452339498e-08,
		2.2900482228026654717e-07, -9.9298272942317002539e-07,
		4.5260625972231537039e-06, -1.9681778105531670567e-05,
		7.5995277030017761139e-05, -0.00021503011930044477347,
		-0.00013871931833623122026, 1.0103004648645343977,
		4.8499064014085844221,
	}
)

// horner evaluates c (highest degree first) at x.
func horner(c []float64, x float64) float64 {
	p := 0.0
	for _, ci := range c {
		p = p*x + ci
	}

	return p
}

// Eval returns erf⁻¹(x).
//
// Special cases:
//   - Eval(NaN) = NaN
//   - Eval(±1) = ±Inf
//   - Eval(±0) = ±0
//   - |x| > 1 (including ±Inf) fails with ErrDomain
//
// The estimate comes from a rational approximation for |x| <= 0.7 and from
// Giles' tail polynomials otherwise, followed by exactly one Halley step.
// Evaluation runs on |x| and restores the sign, so Eval(-x) == -Eval(x).
func Eval(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return x, nil
	case x < -1 || x > 1:
		return math.NaN(), fmt.Errorf("Eval(%g): %w", x, ErrDomain)
	case x == 1:
		return math.Inf(1), nil
	case x == -1:
		return math.Inf(-1), nil
	case x == 0:
		return x, nil
	}

	a := math.Abs(x)
	var y float64
	if a <= centralLimit {
		t := a * a
		y = a * horner(centralNum[:], t) / horner(centralDen[:], t)
		y = halley(y, math.Erf(y)-a)
	} else {
		y = tail(a)
		// erf(y)-a == (1-a)-erfc(y); 1-a is exact here and erfc keeps
		// its relative precision, so the step still refines next to 1.
		y = halley(y, (1-a)-math.Erfc(y))
	}

	return math.Copysign(y, x), nil
}

// MustEval is Eval that panics on domain errors. Intended for tests and
// package-level tables.
func MustEval(x float64) float64 {
	y, err := Eval(x)
	if err != nil {
		panic(err)
	}

	return y
}

// tail returns the initial estimate for 0.7 < a < 1.
func tail(a float64) float64 {
	w := -math.Log((1 - a) * (1 + a))
	switch {
	case w < tailNear:
		return a * horner(tailNearCoeffs[:], w-2.5)
	case w < tailFar:
		return a * horner(tailMidCoeffs[:], math.Sqrt(w)-3)
	default:
		return a * horner(tailFarCoeffs[:], math.Sqrt(w)-5)
	}
}

// halley applies one Halley step to f(y) = erf(y) - a given the residual
// r = f(y). With f' = (2/√π)e^(-y²) and f'' = -2y·f', the update is
// y - u/(1 + y·u) where u = r/f'.
func halley(y, r float64) float64 {
	u := r / (twoOverSqrtPi * math.Exp(-y*y))

	return y - u/(1+y*u)
}
