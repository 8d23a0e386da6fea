package combinator_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/underscore_go/combinator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnceInvokesUnderlyingExactlyOnce(t *testing.T) {
	count := 0
	fn := combinator.Once(func() int {
		count++
		return count * 10
	})

	assert.Equal(t, 10, fn())
	assert.Equal(t, 10, fn()) // cached
	assert.Equal(t, 10, fn())
	assert.Equal(t, 1, count)
}

func TestOnceVoidSideEffectsOccurOnce(t *testing.T) {
	count := 0
	fn := combinator.OnceVoid(func() { count++ })

	fn()
	fn()
	fn()

	assert.Equal(t, 1, count)
}

func TestOnceRetriesAfterPanic(t *testing.T) {
	count := 0
	fn := combinator.Once(func() int {
		count++
		if count == 1 {
			panic("first attempt fails")
		}
		return count
	})

	assert.Panics(t, func() { fn() })
	// the failed attempt must not have marked the wrapper as run
	assert.Equal(t, 2, fn())
	assert.Equal(t, 2, fn())
	assert.Equal(t, 2, count)
}

func TestOnceErrRetriesUntilSuccess(t *testing.T) {
	count := 0
	failTwice := errors.New("not yet")
	fn := combinator.OnceErr(func() (string, error) {
		count++
		if count < 3 {
			return "", failTwice
		}
		return "ready", nil
	})

	_, err := fn()
	require.ErrorIs(t, err, failTwice)
	_, err = fn()
	require.ErrorIs(t, err, failTwice)

	v, err := fn()
	require.NoError(t, err)
	assert.Equal(t, "ready", v)

	v, err = fn()
	require.NoError(t, err)
	assert.Equal(t, "ready", v)
	assert.Equal(t, 3, count)
}
