package combinator

// Positional selectors return the N-th of M arguments (0-indexed).
// Go has no variadic type parameters, so the family is enumerated by arity;
// selecting past the last argument has no function to call and cannot compile.
// Each arity delegates to the next smaller one, mirroring the recursive
// definition SelectAt(n)(a0, a1, ...) = SelectAt(n-1)(a1, ...).

// Cloner is the capability a type must offer for copy-selection.
// Clone must return an independent copy of the receiver.
type Cloner[T any] interface {
	Clone() T
}

// IdentityAt0Of1 returns its only argument as given.
func IdentityAt0Of1[A0 any](a0 A0) A0 {
	return a0
}

// IdentityAt0Of2 returns the first of two arguments.
func IdentityAt0Of2[A0, A1 any](a0 A0, a1 A1) A0 {
	return a0
}

// IdentityAt1Of2 returns the second of two arguments.
func IdentityAt1Of2[A0, A1 any](a0 A0, a1 A1) A1 {
	return IdentityAt0Of1(a1)
}

// IdentityAt0Of3 returns the first of three arguments.
func IdentityAt0Of3[A0, A1, A2 any](a0 A0, a1 A1, a2 A2) A0 {
	return a0
}

// IdentityAt1Of3 returns the second of three arguments.
func IdentityAt1Of3[A0, A1, A2 any](a0 A0, a1 A1, a2 A2) A1 {
	return IdentityAt0Of2(a1, a2)
}

// IdentityAt2Of3 returns the third of three arguments.
func IdentityAt2Of3[A0, A1, A2 any](a0 A0, a1 A1, a2 A2) A2 {
	return IdentityAt1Of2(a1, a2)
}

// IdentityAt0Of4 returns the first of four arguments.
func IdentityAt0Of4[A0, A1, A2, A3 any](a0 A0, a1 A1, a2 A2, a3 A3) A0 {
	return a0
}

// IdentityAt1Of4 returns the second of four arguments.
func IdentityAt1Of4[A0, A1, A2, A3 any](a0 A0, a1 A1, a2 A2, a3 A3) A1 {
	return IdentityAt0Of3(a1, a2, a3)
}

// IdentityAt2Of4 returns the third of four arguments.
func IdentityAt2Of4[A0, A1, A2, A3 any](a0 A0, a1 A1, a2 A2, a3 A3) A2 {
	return IdentityAt1Of3(a1, a2, a3)
}

// IdentityAt3Of4 returns the fourth of four arguments.
func IdentityAt3Of4[A0, A1, A2, A3 any](a0 A0, a1 A1, a2 A2, a3 A3) A3 {
	return IdentityAt2Of3(a1, a2, a3)
}

// CopyAt0Of1 returns an independent copy of its only argument.
func CopyAt0Of1[A0 Cloner[A0]](a0 A0) A0 {
	return a0.Clone()
}

// CopyAt0Of2 returns an independent copy of the first of two arguments.
func CopyAt0Of2[A0 Cloner[A0], A1 any](a0 A0, a1 A1) A0 {
	return a0.Clone()
}

// CopyAt1Of2 returns an independent copy of the second of two arguments.
func CopyAt1Of2[A0 any, A1 Cloner[A1]](a0 A0, a1 A1) A1 {
	return CopyAt0Of1(a1)
}

// CopyAt0Of3 returns an independent copy of the first of three arguments.
func CopyAt0Of3[A0 Cloner[A0], A1, A2 any](a0 A0, a1 A1, a2 A2) A0 {
	return a0.Clone()
}

// CopyAt1Of3 returns an independent copy of the second of three arguments.
func CopyAt1Of3[A0 any, A1 Cloner[A1], A2 any](a0 A0, a1 A1, a2 A2) A1 {
	return CopyAt0Of2(a1, a2)
}

// CopyAt2Of3 returns an independent copy of the third of three arguments.
func CopyAt2Of3[A0, A1 any, A2 Cloner[A2]](a0 A0, a1 A1, a2 A2) A2 {
	return CopyAt1Of2(a1, a2)
}

// CopyAt0Of4 returns an independent copy of the first of four arguments.
func CopyAt0Of4[A0 Cloner[A0], A1, A2, A3 any](a0 A0, a1 A1, a2 A2, a3 A3) A0 {
	return a0.Clone()
}

// CopyAt1Of4 returns an independent copy of the second of four arguments.
func CopyAt1Of4[A0 any, A1 Cloner[A1], A2, A3 any](a0 A0, a1 A1, a2 A2, a3 A3) A1 {
	return CopyAt0Of3(a1, a2, a3)
}

// CopyAt2Of4 returns an independent copy of the third of four arguments.
func CopyAt2Of4[A0, A1 any, A2 Cloner[A2], A3 any](a0 A0, a1 A1, a2 A2, a3 A3) A2 {
	return CopyAt1Of3(a1, a2, a3)
}

// CopyAt3Of4 returns an independent copy of the fourth of four arguments.
func CopyAt3Of4[A0, A1, A2 any, A3 Cloner[A3]](a0 A0, a1 A1, a2 A2, a3 A3) A3 {
	return CopyAt2Of3(a1, a2, a3)
}
