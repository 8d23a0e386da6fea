package combinator_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/underscore_go/combinator"

	"github.com/stretchr/testify/assert"
)

func TestDispatchPicksByArgumentType(t *testing.T) {
	intCalls, strCalls := 0, 0
	onInt := func(i int) string {
		intCalls++
		return "int"
	}
	onStr := func(s string) string {
		strCalls++
		return "string"
	}

	composite := combinator.Concat(onInt, onStr)

	assert.Equal(t, "int", combinator.Dispatch1[string](composite, 7))
	assert.Equal(t, 1, intCalls)
	assert.Equal(t, 0, strCalls)

	assert.Equal(t, "string", combinator.Dispatch1[string](composite, "hello"))
	assert.Equal(t, 1, intCalls)
	assert.Equal(t, 1, strCalls)
}

func TestDispatchHonorsLeftToRightOrder(t *testing.T) {
	first := func(i int) string { return "first" }
	second := func(i int) string { return "second" }

	composite := combinator.Concat(first, second)

	// both accept int; the earlier component must win
	assert.Equal(t, "first", combinator.Dispatch1[string](composite, 1))
}

func TestConcatRightFold(t *testing.T) {
	onInt := func(i int) string { return "int" }
	onStr := func(s string) string { return "string" }
	onFloat := func(f float64) string { return "float" }

	flat := combinator.Concat(onInt, onStr, onFloat)
	nested := combinator.Concat(onInt, combinator.Concat(onStr, onFloat))

	for _, composite := range []combinator.Fallback{flat, nested} {
		assert.Equal(t, "int", combinator.Dispatch1[string](composite, 1))
		assert.Equal(t, "string", combinator.Dispatch1[string](composite, "s"))
		assert.Equal(t, "float", combinator.Dispatch1[string](composite, 1.5))
	}
}

func TestTryDispatchNoMatch(t *testing.T) {
	composite := combinator.Concat(
		func(i int) string { return "int" },
		func(s string) string { return "string" },
	)

	_, ok := combinator.TryDispatch1[string](composite, 1.5)
	assert.False(t, ok)
}

func TestDispatchPanicsOnNoMatch(t *testing.T) {
	composite := combinator.Concat(
		func(i int) string { return "int" },
		func(s string) string { return "string" },
	)

	assert.PanicsWithValue(t,
		"combinator: no composed callable accepts the given argument",
		func() { combinator.Dispatch1[string](composite, 1.5) },
	)
}

func TestDispatch2(t *testing.T) {
	join := func(a, b string) string { return a + b }
	add := func(a, b int) int { return a + b }

	composite := combinator.Concat(join, add)

	assert.Equal(t, "ab", combinator.Dispatch2[string](composite, "a", "b"))
	assert.Equal(t, 3, combinator.Dispatch2[int](composite, 1, 2))
}

func TestDispatchWithCapturedState(t *testing.T) {
	var seen []string
	record := func(s string) string {
		seen = append(seen, s)
		return strings.ToUpper(s)
	}
	fallthru := func(i int) string { return "number" }

	composite := combinator.Concat(record, fallthru)

	assert.Equal(t, "A", combinator.Dispatch1[string](composite, "a"))
	assert.Equal(t, "number", combinator.Dispatch1[string](composite, 9))
	assert.Equal(t, []string{"a"}, seen)
}
