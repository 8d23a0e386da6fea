package combinator

// Constant and no-op callables. All of them are total and side-effect-free:
// they ignore every argument, never fail, and never touch shared state.

// Always0 returns a nullary callable that always yields v.
func Always0[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Always returns a unary callable that ignores its argument and yields v.
func Always[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}

// Always2 returns a binary callable that ignores both arguments and yields v.
func Always2[A, B, T any](v T) func(A, B) T {
	return func(A, B) T {
		return v
	}
}

// AlwaysTrue returns a predicate that holds for every argument.
func AlwaysTrue[A any]() func(A) bool {
	return Always[A](true)
}

// AlwaysFalse returns a predicate that holds for no argument.
func AlwaysFalse[A any]() func(A) bool {
	return Always[A](false)
}

// Noop0 does nothing.
func Noop0() {}

// Noop1 ignores its argument and does nothing.
func Noop1[A any](A) {}

// Noop2 ignores both arguments and does nothing.
func Noop2[A, B any](A, B) {}
