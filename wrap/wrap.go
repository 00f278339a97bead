// Package wrap implements the counting wrapper: a value container that
// intercepts arithmetic, bitwise, unary and comparison operations
// performed through it and records each occurrence in an operation
// ledger before delegating to the held value's own operation.
//
// Go has no operator overloading, so named methods are the contract:
// Add, RAdd and IAdd stand for the forward, reflected and in-place
// variants of "+", and likewise for every other binary family. Forward
// and reflected operations return a new wrapper holding the result;
// in-place operations replace the held value and return the receiver.
//
// Counting happens before delegation, so the tally reflects an attempted
// operation even when the operation itself fails.
package wrap

import (
	"fmt"

	"github.com/code19m/errx"
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"

	"github.com/rise-and-shine/opcount/counter"
)

// Error codes carried by the panics raised on misuse. Wrapped panic
// values inherit the sentinel's code, so callers identify the failure
// with errx.AsErrorX(err).Code().
const (
	CodeUnsupported = "WRAP_UNSUPPORTED_OPERATION"
	CodeOperand     = "WRAP_INVALID_OPERAND"
)

var (
	// ErrUnsupported reports an operation the held type's table does
	// not define.
	ErrUnsupported = errx.New(
		"wrap: operation not supported by held type",
		errx.WithCode(CodeUnsupported),
	)

	// ErrOperand reports an operand that is neither a counting wrapper
	// nor a value of the held type.
	ErrOperand = errx.New(
		"wrap: operand type does not match held type",
		errx.WithCode(CodeOperand),
	)
)

// Holder is the capability interface of counting wrappers: anything that
// exposes a held value of type T. Operand resolution checks for it
// instead of for a concrete wrapper type.
type Holder[T any] interface {
	Held() T
}

// anyHolder is satisfied by every Value regardless of type parameter.
type anyHolder interface {
	heldAny() any
}

// Value wraps a single value of type T and counts every operation
// performed through it. Derived results inherit the receiver's operation
// table and ledger.
type Value[T any] struct {
	held T
	ops  Ops[T]
	ctr  *counter.Counter
}

// Option configures a wrapper at construction time.
type Option[T any] func(*Value[T])

// WithCounter binds the wrapper (and everything derived from it) to c
// instead of the process-wide default ledger.
func WithCounter[T any](c *counter.Counter) Option[T] {
	return func(v *Value[T]) {
		v.ctr = c
	}
}

// Wrap wraps a built-in integer value. The full operation table applies,
// including bitwise operations and modular exponentiation.
func Wrap[T constraints.Integer](v T, opts ...Option[T]) *Value[T] {
	return newValue(v, IntOps[T](), opts)
}

// WrapFloat wraps a built-in float value. Bitwise operations and Invert
// are unsupported.
func WrapFloat[T constraints.Float](v T, opts ...Option[T]) *Value[T] {
	return newValue(v, FloatOps[T](), opts)
}

// WrapComplex wraps a built-in complex value. Ordering comparisons,
// floor division, modulo and bitwise operations are unsupported.
func WrapComplex[T constraints.Complex](v T, opts ...Option[T]) *Value[T] {
	return newValue(v, ComplexOps[T](), opts)
}

// WrapOps wraps a value of an arbitrary type with a caller-supplied
// operation table. No validation is performed on either.
func WrapOps[T any](v T, ops Ops[T], opts ...Option[T]) *Value[T] {
	return newValue(v, ops, opts)
}

func newValue[T any](v T, ops Ops[T], opts []Option[T]) *Value[T] {
	val := &Value[T]{held: v, ops: ops, ctr: counter.Default()}
	for _, opt := range opts {
		opt(val)
	}
	return val
}

// Held returns the wrapped value.
func (v *Value[T]) Held() T {
	return v.held
}

func (v *Value[T]) heldAny() any {
	return v.held
}

// Unwrap returns the held value if x is a counting wrapper and x itself
// otherwise, so it is safe to apply to already-unwrapped values.
func Unwrap(x any) any {
	if h, ok := x.(anyHolder); ok {
		return h.heldAny()
	}
	return x
}

// derive wraps a computed result, inheriting table and ledger.
func (v *Value[T]) derive(x T) *Value[T] {
	return &Value[T]{held: x, ops: v.ops, ctr: v.ctr}
}

// operand resolves the other side of a binary operation: a wrapper's
// held value is extracted, a plain T is used as-is, anything else is
// rejected. The extraction itself is not counted.
func (v *Value[T]) operand(x any) T {
	if h, ok := x.(Holder[T]); ok {
		return h.Held()
	}
	if t, ok := x.(T); ok {
		return t
	}
	panic(errx.Wrap(ErrOperand, errx.WithDetails(errx.D{
		"operand": fmt.Sprintf("%T", x),
	})))
}

// unsupported builds the panic value for a nil table entry.
func unsupported(op string) error {
	return errx.Wrap(ErrUnsupported, errx.WithDetails(errx.D{"op": op}))
}

// Bool converts the held value to a plain bool, counting one "bool".
func (v *Value[T]) Bool() bool {
	v.ctr.Inc(counter.OpBool)
	return cast.ToBool(v.held)
}

// Int converts the held value to a plain int64, counting one "int".
func (v *Value[T]) Int() int64 {
	v.ctr.Inc(counter.OpInt)
	return cast.ToInt64(v.held)
}

// Float converts the held value to a plain float64, counting one
// "float".
func (v *Value[T]) Float() float64 {
	v.ctr.Inc(counter.OpFloat)
	return cast.ToFloat64(v.held)
}

// Complex converts the held value to a plain complex128, counting one
// "complex".
func (v *Value[T]) Complex() complex128 {
	v.ctr.Inc(counter.OpComplex)
	if v.ops.Complex == nil {
		panic(unsupported(counter.OpComplex))
	}
	return v.ops.Complex(v.held)
}

// String returns a debug representation exposing the held value.
func (v *Value[T]) String() string {
	return fmt.Sprintf("Value(%v)", v.held)
}

// Format implements fmt.Formatter. The plain %v and %s verbs print the
// debug representation; any other verb, with its flags, width and
// precision, is forwarded to the held value's own formatting. Formatting
// is not counted.
func (v *Value[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, "Value(%v)", v.held)
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.held)
	}
}
