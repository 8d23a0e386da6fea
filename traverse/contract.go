package traverse

import "iter"

// Iterable is the minimal capability of every traversal input: finite forward
// iteration over homogeneous elements.
type Iterable[T any] interface {
	Elems() iter.Seq[T]
}

// Sized is the capability of knowing one's element count without iterating.
type Sized interface {
	Len() int
}

// Sequence is a sized iterable, the input contract for preallocating
// map-style traversals.
type Sequence[T any] interface {
	Iterable[T]
	Sized
}

// EndAppender is the capability of growing at the end. Appending preserves
// the relative order of appended elements.
type EndAppender[T any] interface {
	Push(val T)
}

// Inserter is the capability of accepting an element at a container-defined
// position. Placement, and therefore iteration order, is up to the container.
type Inserter[T any] interface {
	Insert(val T)
}

// Emptiable is the capability of producing a fresh, empty container of the
// same kind as the receiver, carrying over the instance's configuration (a
// set's key function, a sorted list's comparison).
type Emptiable[C any] interface {
	FreshEmpty() C
}
