package traverse

// Shaper is a result-shaping policy: it produces the output container for a
// traversal over src before any element is visited. Shapers never mutate src;
// they only observe its type and size.
type Shaper[S, D, F any] interface {
	Shape(src S, fn F) D
}

// PreallocSized shapes a value-initialized output slice of the transform's
// result type, same length as the input. Used for map-style traversals where
// the output size is known up front.
type PreallocSized[T, U any] struct{}

func (PreallocSized[T, U]) Shape(src []T, fn func(T) U) []U {
	return make([]U, len(src))
}

// PreallocSeq is PreallocSized for sized containers.
type PreallocSeq[C Sequence[T], T, U any] struct{}

func (PreallocSeq[C, T, U]) Shape(src C, fn func(T) U) []U {
	return make([]U, src.Len())
}

// FreshEmpty shapes a new, empty slice of the input's element type. The
// callable is ignored; this policy serves traversals whose output size is
// unknown before execution, e.g. filtering.
type FreshEmpty[T, F any] struct{}

func (FreshEmpty[T, F]) Shape(src []T, fn F) []T {
	return []T{}
}

// FreshEmptySeq shapes a fresh empty container of the same kind as the input.
type FreshEmptySeq[C Emptiable[C], F any] struct{}

func (FreshEmptySeq[C, F]) Shape(src C, fn F) C {
	return src.FreshEmpty()
}
