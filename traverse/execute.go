package traverse

// Executor is an execution policy: it populates a previously shaped output
// from the input, invoking the caller-supplied callable per element, and
// returns the populated output. If the callable fails mid-traversal, elements
// already written stay written.
type Executor[S, D, F any] interface {
	Execute(dst D, src S, fn F) D
}

// TransformAssign walks input and output in lockstep from their starts,
// assigning fn(input element) into the corresponding output slot. The output
// must be at least as long as the input; a shorter output is a contract
// violation and panics.
type TransformAssign[T, U any] struct{}

func (TransformAssign[T, U]) Execute(dst []U, src []T, fn func(T) U) []U {
	for i, v := range src {
		dst[i] = fn(v)
	}
	return dst
}

// TransformAssignSeq is TransformAssign for container inputs with a slice
// output.
type TransformAssignSeq[C Iterable[T], T, U any] struct{}

func (TransformAssignSeq[C, T, U]) Execute(dst []U, src C, fn func(T) U) []U {
	i := 0
	for v := range src.Elems() {
		dst[i] = fn(v)
		i++
	}
	return dst
}

// FilterAppend appends each input element passing the predicate to the output
// slice, preserving input order.
type FilterAppend[T any] struct{}

func (FilterAppend[T]) Execute(dst []T, src []T, pred func(T) bool) []T {
	for _, v := range src {
		if pred(v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// FilterPush is FilterAppend for end-appendable containers: order preserved.
type FilterPush[C interface {
	Iterable[T]
	EndAppender[T]
}, T any] struct{}

func (FilterPush[C, T]) Execute(dst C, src C, pred func(T) bool) C {
	for v := range src.Elems() {
		if pred(v) {
			dst.Push(v)
		}
	}
	return dst
}

// FilterInsert is the filter executor for insert-capable containers: element
// placement, and therefore output order, is container-defined.
type FilterInsert[C interface {
	Iterable[T]
	Inserter[T]
}, T any] struct{}

func (FilterInsert[C, T]) Execute(dst C, src C, pred func(T) bool) C {
	for v := range src.Elems() {
		if pred(v) {
			dst.Insert(v)
		}
	}
	return dst
}
