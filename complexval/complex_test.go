// Copyright 2023 The go-maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complexval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xclud/go-maths/complexval"
)

const eps = 1e-12

// TestMake verifies that construction stores components as given,
// including non-finite ones.
func TestMake(t *testing.T) {
	z := complexval.Make(3, 4)
	assert.Equal(t, 3.0, z.Real())
	assert.Equal(t, 4.0, z.Imag())

	z = complexval.Make(math.Inf(1), math.NaN())
	assert.True(t, math.IsInf(z.Real(), 1))
	assert.True(t, math.IsNaN(z.Imag()))
}

// TestPolar verifies the polar factory against rectangular expectations.
func TestPolar(t *testing.T) {
	z := complexval.Polar(2, 0)
	assert.Equal(t, 2.0, z.Real())
	assert.Equal(t, 0.0, z.Imag())

	z = complexval.Polar(2, math.Pi/2)
	assert.InDelta(t, 0, z.Real(), eps)
	assert.InDelta(t, 2, z.Imag(), eps)

	// NaN inputs flow through.
	assert.True(t, complexval.Polar(math.NaN(), 1).IsNaN())
}

// TestConstants verifies the named constants are exact.
func TestConstants(t *testing.T) {
	assert.Equal(t, 0.0, complexval.I.Real())
	assert.Equal(t, 1.0, complexval.I.Imag())
	assert.True(t, complexval.Zero.Equal(complexval.Make(0, 0)))
	assert.True(t, complexval.One.Equal(complexval.Make(1, 0)))
	assert.True(t, complexval.Two.Equal(complexval.Make(2, 0)))
	assert.Equal(t, math.Pi, complexval.Pi.Real())
	assert.Equal(t, 0.0, complexval.Pi.Imag())
	assert.Equal(t, math.E, complexval.E.Real())
	assert.True(t, complexval.NaN.IsNaN())
	assert.True(t, math.IsNaN(complexval.NaN.Real()))
	assert.True(t, math.IsNaN(complexval.NaN.Imag()))
	assert.True(t, complexval.Inf.IsInf())
	assert.True(t, math.IsInf(complexval.Inf.Real(), 1))
	assert.True(t, math.IsInf(complexval.Inf.Imag(), 1))
}

// TestClassification checks the NaN / infinite / finite partition,
// with NaN taking precedence over infinity.
func TestClassification(t *testing.T) {
	tests := []struct {
		name                 string
		z                    complexval.Complex
		isNaN, isInf, finite bool
	}{
		{"finite", complexval.Make(3, 4), false, false, true},
		{"zero", complexval.Zero, false, false, true},
		{"nan real", complexval.Make(math.NaN(), 0), true, false, false},
		{"nan imag", complexval.Make(0, math.NaN()), true, false, false},
		{"inf real", complexval.Make(math.Inf(1), 0), false, true, false},
		{"inf imag", complexval.Make(0, math.Inf(-1)), false, true, false},
		{"nan beats inf", complexval.Make(math.NaN(), math.Inf(1)), true, false, false},
		{"inf beats nothing", complexval.Inf, false, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isNaN, tc.z.IsNaN(), "IsNaN")
			assert.Equal(t, tc.isInf, tc.z.IsInf(), "IsInf")
			assert.Equal(t, tc.finite, tc.z.IsFinite(), "IsFinite")
		})
	}
}

// TestAbs covers the concrete 3-4-5 case, the NaN and infinity rules,
// and overflow safety for large components.
func TestAbs(t *testing.T) {
	assert.Equal(t, 5.0, complexval.Make(3, 4).Abs())
	assert.Equal(t, 0.0, complexval.Zero.Abs())

	// Both components must be examined for NaN independently; the
	// legacy source checked the real component twice.
	assert.True(t, math.IsNaN(complexval.Make(math.NaN(), 0).Abs()))
	assert.True(t, math.IsNaN(complexval.Make(0, math.NaN()).Abs()))

	assert.True(t, math.IsInf(complexval.Make(math.Inf(1), 0).Abs(), 1))
	assert.True(t, math.IsInf(complexval.Make(0, math.Inf(-1)).Abs(), 1))

	// NaN wins over infinity.
	assert.True(t, math.IsNaN(complexval.Make(math.Inf(1), math.NaN()).Abs()))

	// Naive re²+im² overflows here; the scaled form must not.
	big := complexval.Make(3e307, 4e307)
	assert.InDelta(t, 5e307, big.Abs(), 5e307*eps)
}

// TestAbsMatchesNaive checks abs against the naive formula where the
// naive formula is safe.
func TestAbsMatchesNaive(t *testing.T) {
	for _, z := range []complexval.Complex{
		complexval.Make(1, 1),
		complexval.Make(-2.5, 7),
		complexval.Make(0.001, -12345.6789),
		complexval.Make(-3, -4),
	} {
		want := math.Sqrt(z.Real()*z.Real() + z.Imag()*z.Imag())
		assert.InDelta(t, want, z.Abs(), eps)
	}
}

// TestArg verifies the argument range (-π, π].
func TestArg(t *testing.T) {
	assert.Equal(t, 0.0, complexval.One.Arg())
	assert.Equal(t, math.Pi, complexval.Make(-1, 0).Arg())
	assert.InDelta(t, math.Pi/2, complexval.I.Arg(), eps)
	assert.InDelta(t, -math.Pi/2, complexval.I.Neg().Arg(), eps)
	assert.InDelta(t, math.Pi/4, complexval.Make(1, 1).Arg(), eps)
}
