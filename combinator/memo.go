package combinator

import (
	"fmt"
)

// Memoize1 to Memoize4 cache a pure function's results by its argument
// values, in a bounded table. They assume purity—not just determinism, but
// referential transparency. Arguments must either be comparable or implement
// fmt.Stringer; a Stringer's String() output is used as its cache key.
//
// WARNING: do not memoize impure functions (e.g., those depending on time or
// I/O). Like Once, memoized wrappers are single-goroutine.

// KeyArg is an argument usable as a memoization key: a comparable value or a
// fmt.Stringer.
type KeyArg any

// Memoize1 memoizes a pure unary function in a table bounded to maxTableSize
// entries per generation.
func Memoize1[I1 KeyArg, O any](pureFn func(I1) O, maxTableSize uint32) func(I1) O {
	memoized := memoize(
		func(args ...KeyArg) O {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

// Memoize2 memoizes a pure binary function.
func Memoize2[I1, I2 KeyArg, O any](pureFn func(I1, I2) O, maxTableSize uint32) func(I1, I2) O {
	memoized := memoize(
		func(args ...KeyArg) O {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

// Memoize3 memoizes a pure ternary function.
func Memoize3[I1, I2, I3 KeyArg, O any](pureFn func(I1, I2, I3) O, maxTableSize uint32) func(I1, I2, I3) O {
	memoized := memoize(
		func(args ...KeyArg) O {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

// Memoize4 memoizes a pure quaternary function.
func Memoize4[I1, I2, I3, I4 KeyArg, O any](pureFn func(I1, I2, I3, I4) O, maxTableSize uint32) func(I1, I2, I3, I4) O {
	memoized := memoize(
		func(args ...KeyArg) O {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return memoized(i1, i2, i3, i4)
	}
}

func memoKey(arg KeyArg) any {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	return arg
}

func memoize[O any](pureFn func(...KeyArg) O, maxTableSize uint32) func(...KeyArg) O {
	memo := newTrie[O](maxTableSize)
	return func(args ...KeyArg) O {
		keys := make([]any, len(args))
		for i, arg := range args {
			keys[i] = memoKey(arg)
		}
		v, ok := memo.load(keys)
		if !ok {
			v = pureFn(args...)
			memo.store(keys, v)
		}
		return v
	}
}
