// Copyright 2023 The go-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complexval

import "math"

// Reciprocal returns 1 / z. A NaN operand yields NaN, exact zero yields
// Inf, and an infinite operand yields Zero. The finite case branches on
// the component with the larger magnitude, as in Div, so it stays stable
// for very large or very small operands.
func (z Complex) Reciprocal() Complex {
	if z.IsNaN() {
		return NaN
	}
	if z.re == 0 && z.im == 0 {
		return Inf
	}
	if z.IsInf() {
		return Zero
	}
	if math.Abs(z.re) < math.Abs(z.im) {
		q := z.re / z.im
		scale := 1 / (z.re*q + z.im)
		return Complex{scale * q, -scale}
	}
	q := z.im / z.re
	scale := 1 / (z.im*q + z.re)
	return Complex{scale, -scale * q}
}

// Exp returns e**z, computed as the polar value with modulus exp(re)
// and argument im. A NaN operand yields NaN.
func (z Complex) Exp() Complex {
	if z.IsNaN() {
		return NaN
	}
	return Polar(math.Exp(z.re), z.im)
}

// Log returns the principal natural logarithm of z,
// (ln |z|, Arg z). A NaN operand yields NaN.
func (z Complex) Log() Complex {
	if z.IsNaN() {
		return NaN
	}
	return Complex{math.Log(z.Abs()), z.Arg()}
}

// Pow returns z**w, defined as exp(log(z)·w). NaN and infinity
// behavior follows from Log, Mul, and Exp.
func (z Complex) Pow(w Complex) Complex {
	return z.Log().Mul(w).Exp()
}

// Sqrt returns the principal square root of z. A NaN operand yields NaN
// and exact zero yields Zero.
//
// The half-angle form t = sqrt((|re| + |z|) / 2) takes the |re| from
// whichever side of the imaginary axis z lies on, avoiding the
// catastrophic cancellation a naive formula suffers near the negative
// real axis. A zero imaginary component counts as nonnegative, matching
// the copysign convention.
func (z Complex) Sqrt() Complex {
	if z.IsNaN() {
		return NaN
	}
	if z.re == 0 && z.im == 0 {
		return Zero
	}
	t := math.Sqrt((math.Abs(z.re) + z.Abs()) / 2)
	if z.re >= 0 {
		return Complex{t, z.im / (2 * t)}
	}
	sign := 1.0
	if z.im < 0 {
		sign = -1
	}
	return Complex{math.Abs(z.im) / (2 * t), sign * t}
}

// Sqrt1z returns sqrt(1 - z²).
func (z Complex) Sqrt1z() Complex {
	return One.Sub(z.Mul(z)).Sqrt()
}
