package combinator

import (
	"github.com/on-the-ground/underscore_go/shared/helper"
)

// Fallback composes two callables in a fixed left-to-right order. Dispatching
// an invocation tries the first component if it accepts the argument types,
// else the second. The order is fixed at construction and never changes.
//
// Components are stored as supplied: a closure owns whatever it captured, a
// method value borrows its receiver. The second slot may itself be a Fallback,
// which is how Concat builds chains of any length.
type Fallback struct {
	first  any
	second any
}

// Concat composes two or more callables into an ordered-fallback chain,
// right-folded: Concat(f1, f2, f3) == Concat(f1, Concat(f2, f3)).
func Concat(f1, f2 any, rest ...any) Fallback {
	if len(rest) == 0 {
		return Fallback{first: f1, second: f2}
	}
	return Fallback{first: f1, second: Concat(f2, rest[0], rest[1:]...)}
}

// TryDispatch1 invokes the first component of f accepting a single argument
// of type A and returning R, in composition order. f may be a plain callable
// or a Fallback chain. Returns the zero value and false when no component
// accepts (A, R).
func TryDispatch1[R, A any](f any, arg A) (R, bool) {
	if fn, ok := helper.As[func(A) R](f); ok {
		return fn(arg), true
	}
	if fb, ok := helper.As[Fallback](f); ok {
		if v, ok := TryDispatch1[R, A](fb.first, arg); ok {
			return v, true
		}
		return TryDispatch1[R, A](fb.second, arg)
	}
	var zero R
	return zero, false
}

// Dispatch1 is TryDispatch1 with no-match promoted to a panic. The argument
// and result types are fixed at the call site; only the component choice is
// resolved during dispatch.
func Dispatch1[R, A any](f any, arg A) R {
	v, ok := TryDispatch1[R, A](f, arg)
	if !ok {
		panic("combinator: no composed callable accepts the given argument")
	}
	return v
}

// TryDispatch2 is the two-argument form of TryDispatch1.
func TryDispatch2[R, A, B any](f any, a A, b B) (R, bool) {
	if fn, ok := helper.As[func(A, B) R](f); ok {
		return fn(a, b), true
	}
	if fb, ok := helper.As[Fallback](f); ok {
		if v, ok := TryDispatch2[R, A, B](fb.first, a, b); ok {
			return v, true
		}
		return TryDispatch2[R, A, B](fb.second, a, b)
	}
	var zero R
	return zero, false
}

// Dispatch2 is the two-argument form of Dispatch1.
func Dispatch2[R, A, B any](f any, a A, b B) R {
	v, ok := TryDispatch2[R, A, B](f, a, b)
	if !ok {
		panic("combinator: no composed callable accepts the given arguments")
	}
	return v
}
