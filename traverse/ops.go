package traverse

// Container-generic derived operations. Each is either a thin Engine
// instantiation or a single-purpose short-circuit scan; none contains its own
// shaping or population logic.

// Each calls fn once per element of src, in iteration order, for side
// effects.
func Each[C Iterable[T], T any](src C, fn func(T)) {
	for v := range src.Elems() {
		fn(v)
	}
}

// Map returns fn applied to every element of src, same length and iteration
// order as the input.
func Map[C Sequence[T], T, U any](src C, fn func(T) U) []U {
	return Engine[C, []U, func(T) U, PreallocSeq[C, T, U], TransformAssignSeq[C, T, U]]{}.Do(src, fn)
}

// Filter returns a fresh container of the same kind as src holding only the
// elements for which pred holds, in input order.
func Filter[C interface {
	Iterable[T]
	EndAppender[T]
	Emptiable[C]
}, T any](src C, pred func(T) bool) C {
	return Engine[C, C, func(T) bool, FreshEmptySeq[C, func(T) bool], FilterPush[C, T]]{}.Do(src, pred)
}

// FilterInto is Filter for insert-capable containers; output order is
// container-defined.
func FilterInto[C interface {
	Iterable[T]
	Inserter[T]
	Emptiable[C]
}, T any](src C, pred func(T) bool) C {
	return Engine[C, C, func(T) bool, FreshEmptySeq[C, func(T) bool], FilterInsert[C, T]]{}.Do(src, pred)
}

// Reject is Filter of the negated predicate.
func Reject[C interface {
	Iterable[T]
	EndAppender[T]
	Emptiable[C]
}, T any](src C, pred func(T) bool) C {
	return Filter[C](src, func(v T) bool { return !pred(v) })
}

// RejectInto is FilterInto of the negated predicate.
func RejectInto[C interface {
	Iterable[T]
	Inserter[T]
	Emptiable[C]
}, T any](src C, pred func(T) bool) C {
	return FilterInto[C](src, func(v T) bool { return !pred(v) })
}

// Some reports whether pred holds for at least one element. It stops at the
// first truthy result; remaining elements are not evaluated.
func Some[C Iterable[T], T any](src C, pred func(T) bool) bool {
	return scanUntil(src, pred, true, true)
}

// Every reports whether pred holds for all elements (vacuously true when src
// is empty). It stops at the first falsy result.
func Every[C Iterable[T], T any](src C, pred func(T) bool) bool {
	return scanUntil(src, pred, false, false)
}

// None reports whether pred holds for no element (vacuously true when src is
// empty). It stops at the first truthy result.
func None[C Iterable[T], T any](src C, pred func(T) bool) bool {
	return scanUntil(src, pred, true, false)
}

// scanUntil scans src until pred yields stopWhen, returning onStop; an
// exhausted scan returns the complement.
func scanUntil[C Iterable[T], T any](src C, pred func(T) bool, stopWhen, onStop bool) bool {
	for v := range src.Elems() {
		if pred(v) == stopWhen {
			return onStop
		}
	}
	return !onStop
}
