package combinator

// Once wraps a value-returning callable so it executes at most once.
// The first call runs fn and caches its result; every later call returns the
// cached value without invoking fn again. The done flag is only set after fn
// returns, so a panic on the first call leaves the wrapper unrun and the next
// call retries.
//
// The returned wrapper is not safe for concurrent use; callers sharing one
// wrapper across goroutines must synchronize externally.
func Once[T any](fn func() T) func() T {
	var done bool
	var memo T
	return func() T {
		if done {
			return memo
		}
		memo = fn()
		done = true
		return memo
	}
}

// OnceVoid is the effect-only specialization of Once: the wrapped callable's
// side effects occur exactly once, on the first call that completes.
func OnceVoid(fn func()) func() {
	var done bool
	return func() {
		if done {
			return
		}
		fn()
		done = true
	}
}

// OnceErr wraps a fallible callable so it executes until it first succeeds.
// A call that returns a non-nil error does not mark the wrapper as run; the
// next call re-attempts. After the first nil-error result, the value is cached
// and fn is never invoked again.
func OnceErr[T any](fn func() (T, error)) func() (T, error) {
	var done bool
	var memo T
	return func() (T, error) {
		if done {
			return memo, nil
		}
		v, err := fn()
		if err != nil {
			return v, err
		}
		memo = v
		done = true
		return memo, nil
	}
}
