// Copyright 2023 The go-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complexval

import (
	"math"
	"strconv"
)

// Equal reports whether z and w have equal components under ordinary
// float comparison. NaN is not equal to itself, so NaN.Equal(NaN) is
// false; there is no canonical-NaN special case.
func (z Complex) Equal(w Complex) bool {
	return z.re == w.re && z.im == w.im
}

// EqualFloat64 reports whether z equals the real number f: the
// imaginary component must be exactly zero and the real component
// must equal f.
func (z Complex) EqualFloat64(f float64) bool {
	return z.im == 0 && z.re == f
}

// EqualInt64 reports whether z equals the integer i after widening
// i to float64.
func (z Complex) EqualInt64(i int64) bool {
	return z.EqualFloat64(float64(i))
}

// Compare returns -1, 0, or +1 ordering z and w lexicographically:
// by real component, then by imaginary component. It is a total order
// suitable for sorting: within a component, NaN ranks after every
// ordered value, including +Inf, so slices containing NaN sort
// deterministically. Compare treats two NaN components as ranked
// together even though Equal reports them unequal.
//
// An earlier revision of this comparison dropped the real-part result
// and reported values with differing real components as equal; that
// was a defect and the real-part comparison is now propagated.
func (z Complex) Compare(w Complex) int {
	if c := compareFloat(z.re, w.re); c != 0 {
		return c
	}
	return compareFloat(z.im, w.im)
}

// compareFloat is a three-way float comparison in which NaN ranks
// after all ordered values (NaN > +Inf), so the induced order is total.
func compareFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	case x == y:
		return 0
	}
	// At least one operand is NaN.
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN == yNaN:
		return 0
	case xNaN:
		return +1
	}
	return -1
}

// Hash returns a hash such that Equal(z, w) implies Hash(z) == Hash(w).
// A zero imaginary component contributes nothing, so a complex value on
// the real axis hashes identically to the widened real number it equals
// under EqualFloat64.
func (z Complex) Hash() uint32 {
	return foldHash(z.re) ^ 37*foldHash(z.im)
}

// foldHash folds the IEEE bits of f into 32 bits. Positive and negative
// zero compare equal and must hash equally, hence the zero check.
func foldHash(f float64) uint32 {
	if f == 0 {
		return 0
	}
	bits := math.Float64bits(f)
	return uint32(bits) ^ uint32(bits>>32)
}

// String returns the canonical text form "(R + Ii)", where both
// components use the shortest decimal form that round-trips. The
// imaginary part is always joined with "+"; a negative imaginary
// component keeps its own sign, as in "(1 + -2i)".
func (z Complex) String() string {
	return "(" + formatComponent(z.re) + " + " + formatComponent(z.im) + "i)"
}

func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
