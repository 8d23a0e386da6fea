package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/underscore_go/shared/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	v, ok := helper.As[int](any(7))
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = helper.As[string](any(7))
	assert.False(t, ok)
}

func TestAsFunctionTypes(t *testing.T) {
	var f any = func(i int) int { return i + 1 }

	fn, ok := helper.As[func(int) int](f)
	require.True(t, ok)
	assert.Equal(t, 8, fn(7))

	_, ok = helper.As[func(string) int](f)
	assert.False(t, ok)
}

func TestMustAs(t *testing.T) {
	assert.Equal(t, "x", helper.MustAs[string](any("x")))
	assert.Panics(t, func() { helper.MustAs[int](any("x")) })
}

func TestAsResultOf(t *testing.T) {
	v, err := helper.AsResultOf[int](func() (any, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = helper.AsResultOf[int](func() (any, error) { return "three", nil })
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = helper.AsResultOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}
