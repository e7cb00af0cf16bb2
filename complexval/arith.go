// Copyright 2023 The go-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complexval

import "math"

// Neg returns -z, or NaN if z is NaN.
func (z Complex) Neg() Complex {
	if z.IsNaN() {
		return NaN
	}
	return Complex{-z.re, -z.im}
}

// Conj returns the complex conjugate of z, or NaN if z is NaN.
func (z Complex) Conj() Complex {
	if z.IsNaN() {
		return NaN
	}
	return Complex{z.re, -z.im}
}

// Add returns z + w, or NaN if either operand is NaN.
// Infinite components combine per ordinary float addition,
// so Inf + -Inf in a component yields NaN there.
func (z Complex) Add(w Complex) Complex {
	if z.IsNaN() || w.IsNaN() {
		return NaN
	}
	return Complex{z.re + w.re, z.im + w.im}
}

// Sub returns z - w, or NaN if either operand is NaN.
func (z Complex) Sub(w Complex) Complex {
	if z.IsNaN() || w.IsNaN() {
		return NaN
	}
	return Complex{z.re - w.re, z.im - w.im}
}

// Mul returns the product z·w, or NaN if either operand is NaN.
//
// If either operand has an infinite component the result is the
// canonical Inf constant: the componentwise product would manufacture
// NaN out of Inf·0 terms even though the true product is infinite.
func (z Complex) Mul(w Complex) Complex {
	if z.IsNaN() || w.IsNaN() {
		return NaN
	}
	if math.IsInf(z.re, 0) || math.IsInf(z.im, 0) ||
		math.IsInf(w.re, 0) || math.IsInf(w.im, 0) {
		return Inf
	}
	return Complex{
		z.re*w.re - z.im*w.im,
		z.re*w.im + z.im*w.re,
	}
}

// Div returns the quotient z / w, or NaN if either operand is NaN.
// Division by complex zero yields NaN, and a finite dividend over an
// infinite divisor yields Zero.
//
// The general case uses Smith's algorithm: branch on the divisor
// component with the larger magnitude and rescale by the ratio q of the
// smaller to the larger, so |w|² is never formed and cannot overflow.
func (z Complex) Div(w Complex) Complex {
	if z.IsNaN() || w.IsNaN() {
		return NaN
	}
	c, d := w.re, w.im
	if c == 0 && d == 0 {
		return NaN
	}
	if w.IsInf() && z.IsFinite() {
		return Zero
	}
	if math.Abs(c) < math.Abs(d) {
		q := c / d
		denom := c*q + d
		return Complex{
			(z.re*q + z.im) / denom,
			(z.im*q - z.re) / denom,
		}
	}
	q := d / c
	denom := d*q + c
	return Complex{
		(z.re + z.im*q) / denom,
		(z.im - z.re*q) / denom,
	}
}
