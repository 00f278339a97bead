package wrap

import (
	"math"
	"math/cmplx"

	"github.com/code19m/errx"
	"golang.org/x/exp/constraints"
)

// Ops is the operation table backing a wrapped value. It is the explicit
// stand-in for operator overloading: each entry implements one
// mathematical operation on the held type. A nil entry means the held
// type does not support that operation; invoking it panics with
// ErrUnsupported.
//
// Tables for the built-in numeric kinds are provided by IntOps, FloatOps
// and ComplexOps. Custom types supply their own table through WrapOps.
type Ops[T any] struct {
	// Comparison capabilities. Le, Gt and Ge derive from Less assuming a
	// total order; Ne derives from Eq.
	Eq   func(a, b T) bool
	Less func(a, b T) bool

	// Unary operations.
	Pos    func(a T) T
	Neg    func(a T) T
	Abs    func(a T) T
	Invert func(a T) T

	// Binary arithmetic.
	Add      func(a, b T) T
	Sub      func(a, b T) T
	Mul      func(a, b T) T
	TrueDiv  func(a, b T) T
	FloorDiv func(a, b T) T
	Mod      func(a, b T) T
	Pow      func(a, b T) T
	PowMod   func(a, b, m T) T
	DivMod   func(a, b T) (q, r T)

	// Binary bitwise.
	And    func(a, b T) T
	Or     func(a, b T) T
	Xor    func(a, b T) T
	Lshift func(a, b T) T
	Rshift func(a, b T) T

	// Conversion to a complex number.
	Complex func(a T) complex128
}

// IntOps returns the full operation table for a built-in integer type.
// FloorDiv, Mod and DivMod use floored semantics, so the quotient is
// rounded toward negative infinity and the remainder takes the divisor's
// sign; TrueDiv is the type's own division operator. Pow and PowMod
// reject negative exponents.
func IntOps[T constraints.Integer]() Ops[T] {
	return Ops[T]{
		Eq:   func(a, b T) bool { return a == b },
		Less: func(a, b T) bool { return a < b },

		Pos: func(a T) T { return +a },
		Neg: func(a T) T { return -a },
		Abs: func(a T) T {
			if a < 0 {
				return -a
			}
			return a
		},
		Invert: func(a T) T { return ^a },

		Add:      func(a, b T) T { return a + b },
		Sub:      func(a, b T) T { return a - b },
		Mul:      func(a, b T) T { return a * b },
		TrueDiv:  func(a, b T) T { return a / b },
		FloorDiv: floorDiv[T],
		Mod:      floorMod[T],
		Pow:      intPow[T],
		PowMod:   intPowMod[T],
		DivMod: func(a, b T) (T, T) {
			return floorDiv(a, b), floorMod(a, b)
		},

		And:    func(a, b T) T { return a & b },
		Or:     func(a, b T) T { return a | b },
		Xor:    func(a, b T) T { return a ^ b },
		Lshift: func(a, b T) T { return a << b },
		Rshift: func(a, b T) T { return a >> b },

		Complex: func(a T) complex128 { return complex(float64(a), 0) },
	}
}

// FloatOps returns the operation table for a built-in float type.
// Bitwise operations, Invert and PowMod are unsupported.
func FloatOps[T constraints.Float]() Ops[T] {
	return Ops[T]{
		Eq:   func(a, b T) bool { return a == b },
		Less: func(a, b T) bool { return a < b },

		Pos: func(a T) T { return +a },
		Neg: func(a T) T { return -a },
		Abs: func(a T) T { return T(math.Abs(float64(a))) },

		Add:     func(a, b T) T { return a + b },
		Sub:     func(a, b T) T { return a - b },
		Mul:     func(a, b T) T { return a * b },
		TrueDiv: func(a, b T) T { return a / b },
		FloorDiv: func(a, b T) T {
			return T(math.Floor(float64(a) / float64(b)))
		},
		Mod: func(a, b T) T {
			r := T(math.Mod(float64(a), float64(b)))
			if r != 0 && (r < 0) != (b < 0) {
				r += b
			}
			return r
		},
		Pow: func(a, b T) T { return T(math.Pow(float64(a), float64(b))) },
		DivMod: func(a, b T) (T, T) {
			q := T(math.Floor(float64(a) / float64(b)))
			return q, a - q*b
		},

		Complex: func(a T) complex128 { return complex(float64(a), 0) },
	}
}

// ComplexOps returns the operation table for a built-in complex type.
// Complex numbers are unordered, so only Eq is defined among the
// comparisons; FloorDiv, Mod, DivMod, Pow's modular form and all bitwise
// operations are unsupported. Abs yields the magnitude on the real axis.
func ComplexOps[T constraints.Complex]() Ops[T] {
	return Ops[T]{
		Eq: func(a, b T) bool { return a == b },

		Pos: func(a T) T { return +a },
		Neg: func(a T) T { return -a },
		Abs: func(a T) T { return T(complex(cmplx.Abs(complex128(a)), 0)) },

		Add:     func(a, b T) T { return a + b },
		Sub:     func(a, b T) T { return a - b },
		Mul:     func(a, b T) T { return a * b },
		TrueDiv: func(a, b T) T { return a / b },
		Pow: func(a, b T) T {
			return T(cmplx.Pow(complex128(a), complex128(b)))
		},

		Complex: func(a T) complex128 { return complex128(a) },
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder matching floorDiv, taking the
// divisor's sign.
func floorMod[T constraints.Integer](a, b T) T {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// intPow raises a to the b-th power by squaring.
func intPow[T constraints.Integer](a, b T) T {
	if b < 0 {
		panic(errx.Wrap(ErrUnsupported, errx.WithDetails(errx.D{
			"op":     "pow",
			"reason": "negative exponent",
		})))
	}
	r := T(1)
	for b > 0 {
		if b&1 == 1 {
			r *= a
		}
		a *= a
		b >>= 1
	}
	return r
}

// intPowMod raises a to the b-th power modulo m.
func intPowMod[T constraints.Integer](a, b, m T) T {
	if b < 0 {
		panic(errx.Wrap(ErrUnsupported, errx.WithDetails(errx.D{
			"op":     "pow",
			"reason": "negative exponent",
		})))
	}
	r := floorMod(T(1), m)
	a = floorMod(a, m)
	for b > 0 {
		if b&1 == 1 {
			r = floorMod(r*a, m)
		}
		a = floorMod(a*a, m)
		b >>= 1
	}
	return r
}
