package wrap

import "github.com/rise-and-shine/opcount/counter"

// Shared interception paths. Each counts the operation first, then
// checks the table entry, then resolves the operand, so a failed
// operation is still reflected in the tally.

func (v *Value[T]) binary(op string, f func(a, b T) T, other any) T {
	v.ctr.Inc(op)
	if f == nil {
		panic(unsupported(op))
	}
	return f(v.held, v.operand(other))
}

func (v *Value[T]) rbinary(op string, f func(a, b T) T, other any) T {
	v.ctr.Inc(op)
	if f == nil {
		panic(unsupported(op))
	}
	return f(v.operand(other), v.held)
}

func (v *Value[T]) unary(op string, f func(T) T) T {
	v.ctr.Inc(op)
	if f == nil {
		panic(unsupported(op))
	}
	return f(v.held)
}

func (v *Value[T]) less(op string, a, b T) bool {
	if v.ops.Less == nil {
		panic(unsupported(op))
	}
	return v.ops.Less(a, b)
}

func (v *Value[T]) equal(op string, a, b T) bool {
	if v.ops.Eq == nil {
		panic(unsupported(op))
	}
	return v.ops.Eq(a, b)
}

// Comparisons. Each counts its own key and returns a plain bool from
// comparing the unwrapped held values. Le, Gt and Ge derive from Less
// assuming a total order.

// Lt reports whether v < other, counting one "lt".
func (v *Value[T]) Lt(other any) bool {
	v.ctr.Inc(counter.OpLt)
	return v.less(counter.OpLt, v.held, v.operand(other))
}

// Le reports whether v <= other, counting one "le".
func (v *Value[T]) Le(other any) bool {
	v.ctr.Inc(counter.OpLe)
	return !v.less(counter.OpLe, v.operand(other), v.held)
}

// Eq reports whether v == other, counting one "eq".
func (v *Value[T]) Eq(other any) bool {
	v.ctr.Inc(counter.OpEq)
	return v.equal(counter.OpEq, v.held, v.operand(other))
}

// Ne reports whether v != other, counting one "ne".
func (v *Value[T]) Ne(other any) bool {
	v.ctr.Inc(counter.OpNe)
	return !v.equal(counter.OpNe, v.held, v.operand(other))
}

// Gt reports whether v > other, counting one "gt".
func (v *Value[T]) Gt(other any) bool {
	v.ctr.Inc(counter.OpGt)
	return v.less(counter.OpGt, v.operand(other), v.held)
}

// Ge reports whether v >= other, counting one "ge".
func (v *Value[T]) Ge(other any) bool {
	v.ctr.Inc(counter.OpGe)
	return !v.less(counter.OpGe, v.held, v.operand(other))
}

// Unary operations. Each returns a new wrapper.

// Pos returns a new wrapper holding +v, counting one "pos".
func (v *Value[T]) Pos() *Value[T] { return v.derive(v.unary(counter.OpPos, v.ops.Pos)) }

// Neg returns a new wrapper holding -v, counting one "neg".
func (v *Value[T]) Neg() *Value[T] { return v.derive(v.unary(counter.OpNeg, v.ops.Neg)) }

// Abs returns a new wrapper holding the absolute value, counting one
// "abs".
func (v *Value[T]) Abs() *Value[T] { return v.derive(v.unary(counter.OpAbs, v.ops.Abs)) }

// Invert returns a new wrapper holding the bitwise complement, counting
// one "invert".
func (v *Value[T]) Invert() *Value[T] { return v.derive(v.unary(counter.OpInvert, v.ops.Invert)) }

// Binary arithmetic. Forward methods compute v OP other, reflected
// methods compute other OP v, in-place methods replace the held value
// and return the receiver.

// Add returns a new wrapper holding v + other, counting one "add".
func (v *Value[T]) Add(other any) *Value[T] {
	return v.derive(v.binary(counter.OpAdd, v.ops.Add, other))
}

func (v *Value[T]) RAdd(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRAdd, v.ops.Add, other))
}

func (v *Value[T]) IAdd(other any) *Value[T] {
	v.held = v.binary(counter.OpIAdd, v.ops.Add, other)
	return v
}

// Sub returns a new wrapper holding v - other, counting one "sub".
func (v *Value[T]) Sub(other any) *Value[T] {
	return v.derive(v.binary(counter.OpSub, v.ops.Sub, other))
}

func (v *Value[T]) RSub(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRSub, v.ops.Sub, other))
}

func (v *Value[T]) ISub(other any) *Value[T] {
	v.held = v.binary(counter.OpISub, v.ops.Sub, other)
	return v
}

// Mul returns a new wrapper holding v * other, counting one "mul".
func (v *Value[T]) Mul(other any) *Value[T] {
	return v.derive(v.binary(counter.OpMul, v.ops.Mul, other))
}

func (v *Value[T]) RMul(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRMul, v.ops.Mul, other))
}

func (v *Value[T]) IMul(other any) *Value[T] {
	v.held = v.binary(counter.OpIMul, v.ops.Mul, other)
	return v
}

// TrueDiv returns a new wrapper holding v / other, counting one
// "truediv".
func (v *Value[T]) TrueDiv(other any) *Value[T] {
	return v.derive(v.binary(counter.OpTrueDiv, v.ops.TrueDiv, other))
}

func (v *Value[T]) RTrueDiv(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRTrueDiv, v.ops.TrueDiv, other))
}

func (v *Value[T]) ITrueDiv(other any) *Value[T] {
	v.held = v.binary(counter.OpITrueDiv, v.ops.TrueDiv, other)
	return v
}

// FloorDiv returns a new wrapper holding the floored quotient of v and
// other, counting one "floordiv".
func (v *Value[T]) FloorDiv(other any) *Value[T] {
	return v.derive(v.binary(counter.OpFloorDiv, v.ops.FloorDiv, other))
}

func (v *Value[T]) RFloorDiv(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRFloorDiv, v.ops.FloorDiv, other))
}

func (v *Value[T]) IFloorDiv(other any) *Value[T] {
	v.held = v.binary(counter.OpIFloorDiv, v.ops.FloorDiv, other)
	return v
}

// Mod returns a new wrapper holding the remainder of v and other,
// counting one "mod".
func (v *Value[T]) Mod(other any) *Value[T] {
	return v.derive(v.binary(counter.OpMod, v.ops.Mod, other))
}

func (v *Value[T]) RMod(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRMod, v.ops.Mod, other))
}

func (v *Value[T]) IMod(other any) *Value[T] {
	v.held = v.binary(counter.OpIMod, v.ops.Mod, other)
	return v
}

// Pow raises v to the other-th power, counting one "pow". An optional
// modulus operand selects three-argument modular exponentiation, still
// counted once.
func (v *Value[T]) Pow(other any, mod ...any) *Value[T] {
	v.ctr.Inc(counter.OpPow)
	if len(mod) > 0 {
		if v.ops.PowMod == nil {
			panic(unsupported(counter.OpPow))
		}
		return v.derive(v.ops.PowMod(v.held, v.operand(other), v.operand(mod[0])))
	}
	if v.ops.Pow == nil {
		panic(unsupported(counter.OpPow))
	}
	return v.derive(v.ops.Pow(v.held, v.operand(other)))
}

func (v *Value[T]) RPow(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRPow, v.ops.Pow, other))
}

func (v *Value[T]) IPow(other any) *Value[T] {
	v.held = v.binary(counter.OpIPow, v.ops.Pow, other)
	return v
}

// DivMod returns quotient and remainder as two new wrappers, counting
// one "divmod". There is no in-place variant.
func (v *Value[T]) DivMod(other any) (*Value[T], *Value[T]) {
	v.ctr.Inc(counter.OpDivMod)
	if v.ops.DivMod == nil {
		panic(unsupported(counter.OpDivMod))
	}
	q, r := v.ops.DivMod(v.held, v.operand(other))
	return v.derive(q), v.derive(r)
}

// RDivMod returns quotient and remainder of other divided by v, counting
// one "rdivmod".
func (v *Value[T]) RDivMod(other any) (*Value[T], *Value[T]) {
	v.ctr.Inc(counter.OpRDivMod)
	if v.ops.DivMod == nil {
		panic(unsupported(counter.OpRDivMod))
	}
	q, r := v.ops.DivMod(v.operand(other), v.held)
	return v.derive(q), v.derive(r)
}

// Binary bitwise. Same forward/reflected/in-place triple as arithmetic.

// And returns a new wrapper holding v & other, counting one "and".
func (v *Value[T]) And(other any) *Value[T] {
	return v.derive(v.binary(counter.OpAnd, v.ops.And, other))
}

func (v *Value[T]) RAnd(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRAnd, v.ops.And, other))
}

func (v *Value[T]) IAnd(other any) *Value[T] {
	v.held = v.binary(counter.OpIAnd, v.ops.And, other)
	return v
}

// Or returns a new wrapper holding v | other, counting one "or".
func (v *Value[T]) Or(other any) *Value[T] {
	return v.derive(v.binary(counter.OpOr, v.ops.Or, other))
}

func (v *Value[T]) ROr(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpROr, v.ops.Or, other))
}

func (v *Value[T]) IOr(other any) *Value[T] {
	v.held = v.binary(counter.OpIOr, v.ops.Or, other)
	return v
}

// Xor returns a new wrapper holding v ^ other, counting one "xor".
func (v *Value[T]) Xor(other any) *Value[T] {
	return v.derive(v.binary(counter.OpXor, v.ops.Xor, other))
}

func (v *Value[T]) RXor(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRXor, v.ops.Xor, other))
}

func (v *Value[T]) IXor(other any) *Value[T] {
	v.held = v.binary(counter.OpIXor, v.ops.Xor, other)
	return v
}

// Lshift returns a new wrapper holding v << other, counting one
// "lshift".
func (v *Value[T]) Lshift(other any) *Value[T] {
	return v.derive(v.binary(counter.OpLshift, v.ops.Lshift, other))
}

func (v *Value[T]) RLshift(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRLshift, v.ops.Lshift, other))
}

func (v *Value[T]) ILshift(other any) *Value[T] {
	v.held = v.binary(counter.OpILshift, v.ops.Lshift, other)
	return v
}

// Rshift returns a new wrapper holding v >> other, counting one
// "rshift".
func (v *Value[T]) Rshift(other any) *Value[T] {
	return v.derive(v.binary(counter.OpRshift, v.ops.Rshift, other))
}

func (v *Value[T]) RRshift(other any) *Value[T] {
	return v.derive(v.rbinary(counter.OpRRshift, v.ops.Rshift, other))
}

func (v *Value[T]) IRshift(other any) *Value[T] {
	v.held = v.binary(counter.OpIRshift, v.ops.Rshift, other)
	return v
}
