package helper

import (
	"fmt"
)

// As safely asserts v to the expected type T.
// Returns the zero value and false if the assertion fails.
func As[T any](v any) (T, bool) {
	res, ok := v.(T)
	return res, ok
}

// MustAs is the panic-on-failure variant of As.
// Use when failure should be fatal (e.g., when the concrete type is guaranteed
// by construction).
func MustAs[T any](v any) T {
	res, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("unexpected type: %T", v))
	}
	return res
}

// AsResultOf safely asserts the result of a getter function to the expected
// type T. Returns an error if the getter fails or the assertion fails.
func AsResultOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}
