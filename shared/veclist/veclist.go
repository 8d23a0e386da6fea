// Package veclist provides a minimal ordered, end-appendable container.
//
// List is the reference order-preserving target for filter-style traversals:
// it grows only at the end, so the relative order of appended elements always
// matches the order they were pushed.
package veclist

import "iter"

// List is an ordered sequence of elements that grows at the end.
type List[T any] struct {
	data []T
}

// New returns a List holding the given elements in order.
func New[T any](vals ...T) *List[T] {
	return &List[T]{data: append([]T(nil), vals...)}
}

// Push appends val at the end of the list.
func (l *List[T]) Push(val T) {
	l.data = append(l.data, val)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.data)
}

// Elems iterates the elements in push order.
func (l *List[T]) Elems() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.data {
			if !yield(v) {
				return
			}
		}
	}
}

// FreshEmpty returns a new empty list of the same kind.
func (l *List[T]) FreshEmpty() *List[T] {
	return &List[T]{}
}

// Slice returns a copy of the elements as a plain Go slice.
func (l *List[T]) Slice() []T {
	return append([]T(nil), l.data...)
}
