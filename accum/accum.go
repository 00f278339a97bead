// Package accum provides fold-style accumulation helpers with explicit
// control over the seed and the empty-input result.
//
// Unlike naive folds, none of these helpers perform a wasted identity
// operation (an implicit +0 or *1) against the first element when no
// initial value is given: the first element itself seeds the
// accumulation. This matters when the elements are counting wrappers,
// where an extra identity operation would inflate the operation tally by
// one per run.
//
// The helpers carry no counting logic of their own; any observed counts
// come solely from the operations the elements themselves perform.
package accum

import (
	"iter"

	"github.com/code19m/errx"
)

// ErrEmpty reports an accumulation over an empty input with neither an
// initial value nor a default.
var ErrEmpty = errx.New("accum: empty input without initial or default value")

// Adder is satisfied by values that can add an operand of arbitrary
// type, such as the counting wrapper.
type Adder[T any] interface {
	Add(other any) T
}

// Multiplier is satisfied by values that can multiply by an operand of
// arbitrary type, such as the counting wrapper.
type Multiplier[T any] interface {
	Mul(other any) T
}

type optional[T any] struct {
	value T
	ok    bool
}

type options[T any] struct {
	initial  optional[T]
	fallback optional[T]
}

// Option configures an accumulation.
type Option[T any] func(*options[T])

// WithInitial seeds the accumulation with v before the first element.
// An empty input then yields v unchanged.
func WithInitial[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.initial = optional[T]{value: v, ok: true}
	}
}

// WithDefault makes an empty input (with no initial value) yield v
// instead of ErrEmpty.
func WithDefault[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.fallback = optional[T]{value: v, ok: true}
	}
}

func build[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Fold combines the elements of seq pairwise, left to right, using
// combine. With WithInitial the accumulation starts from the initial
// value and covers the whole sequence; otherwise the first element seeds
// it and the remainder folds onto it. An empty sequence returns the
// initial value if one was given, else the WithDefault value if one was
// given, else ErrEmpty.
func Fold[T any](seq iter.Seq[T], combine func(acc, next T) T, opts ...Option[T]) (T, error) {
	o := build(opts)

	next, stop := iter.Pull(seq)
	defer stop()

	acc, seeded := o.initial.value, o.initial.ok
	if !seeded {
		first, ok := next()
		if !ok {
			if o.fallback.ok {
				return o.fallback.value, nil
			}
			var zero T
			return zero, ErrEmpty
		}
		acc = first
	}

	for {
		x, ok := next()
		if !ok {
			return acc, nil
		}
		acc = combine(acc, x)
	}
}

// Sum adds the elements of seq under Fold's seeding policy. A sequence
// of n elements with no initial value performs exactly n-1 additions.
func Sum[T Adder[T]](seq iter.Seq[T], opts ...Option[T]) (T, error) {
	return Fold(seq, func(acc, next T) T { return acc.Add(next) }, opts...)
}

// Prod multiplies the elements of seq under Fold's seeding policy. It
// works for any type satisfying Multiplier, not just built-in numerics.
func Prod[T Multiplier[T]](seq iter.Seq[T], opts ...Option[T]) (T, error) {
	return Fold(seq, func(acc, next T) T { return acc.Mul(next) }, opts...)
}

// SumProd sums the pairwise products of a and b under Sum's policy.
// Elements pair positionally and zipping is non-strict: iteration stops
// at the shorter sequence with no error for a length mismatch.
func SumProd[T interface {
	Adder[T]
	Multiplier[T]
}](a, b iter.Seq[T], opts ...Option[T]) (T, error) {
	return Sum(products[T](a, b), opts...)
}

func products[T Multiplier[T]](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for x := range a {
			y, ok := next()
			if !ok {
				return
			}
			if !yield(x.Mul(y)) {
				return
			}
		}
	}
}
