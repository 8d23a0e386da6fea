package seq

import (
	"iter"

	"github.com/on-the-ground/underscore_go/traverse"
)

// Each calls fn once per element of s, in order, for side effects.
func Each[T any](s []T, fn func(T)) {
	for _, v := range s {
		fn(v)
	}
}

// Map returns a new slice holding fn applied to every element of s, same
// length and order as the input. The callable must return a value; an
// effect-only func(T) does not instantiate.
func Map[T, U any](s []T, fn func(T) U) []U {
	return traverse.Engine[
		[]T, []U, func(T) U,
		traverse.PreallocSized[T, U],
		traverse.TransformAssign[T, U],
	]{}.Do(s, fn)
}

// Filter returns a new slice holding only the elements of s for which pred
// holds, in original relative order.
func Filter[T any](s []T, pred func(T) bool) []T {
	return traverse.Engine[
		[]T, []T, func(T) bool,
		traverse.FreshEmpty[T, func(T) bool],
		traverse.FilterAppend[T],
	]{}.Do(s, pred)
}

// Reject returns the elements of s for which pred does not hold — the
// complement of Filter within s.
func Reject[T any](s []T, pred func(T) bool) []T {
	return Filter(s, Negate(pred))
}

// Negate returns the logical complement of pred.
func Negate[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool {
		return !pred(v)
	}
}

// Some reports whether pred holds for at least one element of s. The scan
// stops at the first truthy result.
func Some[T any](s []T, pred func(T) bool) bool {
	return scanUntil(s, pred, true, true)
}

// Every reports whether pred holds for all elements of s (vacuously true for
// an empty slice). The scan stops at the first falsy result.
func Every[T any](s []T, pred func(T) bool) bool {
	return scanUntil(s, pred, false, false)
}

// None reports whether pred holds for no element of s (vacuously true for an
// empty slice). The scan stops at the first truthy result.
func None[T any](s []T, pred func(T) bool) bool {
	return scanUntil(s, pred, true, false)
}

// scanUntil scans s until pred yields stopWhen, returning onStop; an
// exhausted scan returns the complement. Some, Every, and None are the three
// useful (stopWhen, onStop) pairings.
func scanUntil[T any](s []T, pred func(T) bool, stopWhen, onStop bool) bool {
	for _, v := range s {
		if pred(v) == stopWhen {
			return onStop
		}
	}
	return !onStop
}

// EachSeq is Each over an iterator.
func EachSeq[T any](s iter.Seq[T], fn func(T)) {
	for v := range s {
		fn(v)
	}
}

// SomeSeq is Some over an iterator.
func SomeSeq[T any](s iter.Seq[T], pred func(T) bool) bool {
	for v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// EverySeq is Every over an iterator.
func EverySeq[T any](s iter.Seq[T], pred func(T) bool) bool {
	for v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// NoneSeq is None over an iterator.
func NoneSeq[T any](s iter.Seq[T], pred func(T) bool) bool {
	return !SomeSeq(s, pred)
}
