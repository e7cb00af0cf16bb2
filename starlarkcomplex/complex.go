// Package starlarkcomplex exposes the complexval type to Starlark.
//
// It defines a Starlark value "complex" supporting the arithmetic
// operators, ordering, hashing, and attribute access, together with a
// module providing constructors and the named constants. Starlark is
// where the operators get their symbolic spelling; Go callers use the
// named methods on complexval.Complex directly.
package starlarkcomplex

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/xclud/go-maths/complexval"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "complex"

// Module complex is a Starlark module of complex-number constructors
// and constants.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"complex": starlark.NewBuiltin("complex", newComplex),
		"polar":   starlark.NewBuiltin("polar", newPolar),

		"i":        Complex(complexval.I),
		"zero":     Complex(complexval.Zero),
		"one":      Complex(complexval.One),
		"two":      Complex(complexval.Two),
		"pi":       Complex(complexval.Pi),
		"e":        Complex(complexval.E),
		"nan":      Complex(complexval.NaN),
		"infinity": Complex(complexval.Inf),
	},
}

// LoadModule loads the complex module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

// Complex is a Starlark representation of a complex number.
type Complex complexval.Complex

var (
	_ starlark.Value      = Complex{}
	_ starlark.HasAttrs   = Complex{}
	_ starlark.HasUnary   = Complex{}
	_ starlark.HasBinary  = Complex{}
	_ starlark.Comparable = Complex{}
)

func newComplex(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var re, im float64
	if err := starlark.UnpackArgs("complex", args, kwargs, "real", &re, "imag?", &im); err != nil {
		return nil, err
	}
	return Complex(complexval.Make(re, im)), nil
}

func newPolar(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var radius, theta float64
	if err := starlark.UnpackArgs("polar", args, kwargs, "radius", &radius, "theta", &theta); err != nil {
		return nil, err
	}
	return Complex(complexval.Polar(radius, theta)), nil
}

// String returns the canonical "(R + Ii)" form.
func (c Complex) String() string { return complexval.Complex(c).String() }

// Type returns "complex".
func (c Complex) Type() string { return "complex" }

// Freeze is a no-op; complex values are already immutable.
func (c Complex) Freeze() {}

// Hash returns a function of c such that Equals(x, y) => Hash(x) == Hash(y).
// required by starlark.Value interface.
func (c Complex) Hash() (uint32, error) {
	return complexval.Complex(c).Hash(), nil
}

// Truth reports whether c is non-zero. NaN is truthy: it is not equal
// to zero.
func (c Complex) Truth() starlark.Bool {
	return starlark.Bool(!complexval.Complex(c).Equal(complexval.Zero))
}

// Attr gets a value for a string attribute, implementing dot expression
// support. required by starlark.HasAttrs interface.
func (c Complex) Attr(name string) (starlark.Value, error) {
	z := complexval.Complex(c)
	switch name {
	case "real":
		return starlark.Float(z.Real()), nil
	case "imag":
		return starlark.Float(z.Imag()), nil
	case "abs":
		return starlark.Float(z.Abs()), nil
	case "arg":
		return starlark.Float(z.Arg()), nil
	case "is_nan":
		return starlark.Bool(z.IsNaN()), nil
	case "is_inf":
		return starlark.Bool(z.IsInf()), nil
	case "is_finite":
		return starlark.Bool(z.IsFinite()), nil
	}
	return builtinAttr(c, name, complexMethods)
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (c Complex) AttrNames() []string {
	return append(builtinAttrNames(complexMethods),
		"real",
		"imag",
		"abs",
		"arg",
		"is_nan",
		"is_inf",
		"is_finite",
	)
}

// Unary implements -complex and +complex.
func (c Complex) Unary(op syntax.Token) (starlark.Value, error) {
	switch op {
	case syntax.MINUS:
		return Complex(complexval.Complex(c).Neg()), nil
	case syntax.PLUS:
		return c, nil
	}
	return nil, nil
}

// Binary implements the arithmetic operators, satisfying the
// starlark.HasBinary interface. The other operand may be a complex,
// an int, or a float; plain numbers widen onto the real axis.
//
//	complex + complex = complex
//	complex - complex = complex
//	complex * complex = complex
//	complex / complex = complex
func (c Complex) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	y, ok := asComplex(yV)
	if !ok {
		return nil, nil
	}
	x := complexval.Complex(c)
	if side == starlark.Right {
		x, y = y, x
	}
	switch op {
	case syntax.PLUS:
		return Complex(x.Add(y)), nil
	case syntax.MINUS:
		return Complex(x.Sub(y)), nil
	case syntax.STAR:
		return Complex(x.Mul(y)), nil
	case syntax.SLASH:
		return Complex(x.Div(y)), nil
	}
	return nil, nil
}

// CompareSameType implements comparison of two Complex values, required
// by the starlark.Comparable interface. Equality is componentwise, so
// nan != nan; the order operators use the lexicographic total order
// (real component first, imaginary as tiebreaker).
func (c Complex) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x := complexval.Complex(c)
	y := complexval.Complex(yV.(Complex))
	switch op {
	case syntax.EQL:
		return x.Equal(y), nil
	case syntax.NEQ:
		return !x.Equal(y), nil
	}
	return threeway(op, x.Compare(y)), nil
}

// asComplex converts a Starlark numeric operand to a complexval.Complex.
func asComplex(v starlark.Value) (complexval.Complex, bool) {
	switch y := v.(type) {
	case Complex:
		return complexval.Complex(y), true
	case starlark.Float:
		return complexval.Make(float64(y), 0), true
	case starlark.Int:
		return complexval.Make(float64(y.Float()), 0), true
	}
	return complexval.Complex{}, false
}

var complexMethods = map[string]builtinMethod{
	"conjugate":  complexConjugate,
	"reciprocal": complexReciprocal,
	"exp":        complexExp,
	"log":        complexLog,
	"sqrt":       complexSqrt,
	"sqrt1z":     complexSqrt1z,
	"pow":        complexPow,
	"equals":     complexEquals,
}

func complexConjugate(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return unaryMethod(fnname, recV, args, kwargs, complexval.Complex.Conj)
}

func complexReciprocal(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return unaryMethod(fnname, recV, args, kwargs, complexval.Complex.Reciprocal)
}

func complexExp(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return unaryMethod(fnname, recV, args, kwargs, complexval.Complex.Exp)
}

func complexLog(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return unaryMethod(fnname, recV, args, kwargs, complexval.Complex.Log)
}

func complexSqrt(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return unaryMethod(fnname, recV, args, kwargs, complexval.Complex.Sqrt)
}

func complexSqrt1z(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	return unaryMethod(fnname, recV, args, kwargs, complexval.Complex.Sqrt1z)
}

// unaryMethod adapts a no-argument complexval method to a Starlark
// bound method.
func unaryMethod(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple, fn func(complexval.Complex) complexval.Complex) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fnname, args, kwargs); err != nil {
		return nil, err
	}
	return Complex(fn(complexval.Complex(recV.(Complex)))), nil
}

// pow(x) returns the receiver raised to the power x.
func complexPow(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var xV starlark.Value
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &xV); err != nil {
		return nil, err
	}
	x, ok := asComplex(xV)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want complex, int, or float", fnname, xV.Type())
	}
	return Complex(complexval.Complex(recV.(Complex)).Pow(x)), nil
}

// equals(x) reports equality against a complex, an int, or a float.
// A plain number matches only when the imaginary component is exactly
// zero and the real component equals it.
func complexEquals(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var xV starlark.Value
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &xV); err != nil {
		return nil, err
	}
	z := complexval.Complex(recV.(Complex))
	switch x := xV.(type) {
	case Complex:
		return starlark.Bool(z.Equal(complexval.Complex(x))), nil
	case starlark.Float:
		return starlark.Bool(z.EqualFloat64(float64(x))), nil
	case starlark.Int:
		return starlark.Bool(z.EqualFloat64(float64(x.Float()))), nil
	}
	return starlark.False, nil
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
