// Package sortedlist provides an ordered container that keeps its elements
// sorted under a caller-supplied comparison. Insertion position is defined by
// the comparison, not by arrival order, which makes it the reference
// insert-capable (rather than end-append-capable) traversal target.
package sortedlist

import (
	"iter"
	"sort"
)

// CompareFunc reports the order of a relative to b:
// negative if a sorts before b, zero if equal, positive otherwise.
type CompareFunc[T any] func(a, b T) int

// SortedList keeps its elements sorted under its CompareFunc.
type SortedList[T any] struct {
	data    []T
	compare CompareFunc[T]
}

// New returns an empty SortedList ordered by cmp.
func New[T any](cmp CompareFunc[T]) *SortedList[T] {
	if cmp == nil {
		panic("sortedlist: nil compare func")
	}
	return &SortedList[T]{compare: cmp}
}

// Insert places val at its sorted position via binary search.
func (l *SortedList[T]) Insert(val T) {
	idx := sort.Search(len(l.data), func(i int) bool {
		return l.compare(val, l.data[i]) < 0
	})

	var zero T
	l.data = append(l.data, zero)
	copy(l.data[idx+1:], l.data[idx:])
	l.data[idx] = val
}

// Len returns the number of elements.
func (l *SortedList[T]) Len() int {
	return len(l.data)
}

// Elems iterates the elements in sorted order.
func (l *SortedList[T]) Elems() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.data {
			if !yield(v) {
				return
			}
		}
	}
}

// FreshEmpty returns a new empty list with the same comparison.
func (l *SortedList[T]) FreshEmpty() *SortedList[T] {
	return &SortedList[T]{compare: l.compare}
}

// Slice returns a copy of the elements as a plain Go slice, sorted.
func (l *SortedList[T]) Slice() []T {
	return append([]T(nil), l.data...)
}
