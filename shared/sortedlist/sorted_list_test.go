package sortedlist_test

import (
	"testing"

	"github.com/on-the-ground/underscore_go/shared/sortedlist"

	"github.com/stretchr/testify/assert"
)

func TestInsertKeepsSortedOrder(t *testing.T) {
	l := sortedlist.New(func(a, b int) int { return a - b })
	for _, v := range []int{5, 1, 4, 2, 3} {
		l.Insert(v)
	}

	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Slice())
}

func TestInsertStableForEqualElements(t *testing.T) {
	type pair struct {
		key, seq int
	}
	l := sortedlist.New(func(a, b pair) int { return a.key - b.key })

	l.Insert(pair{key: 1, seq: 1})
	l.Insert(pair{key: 1, seq: 2})
	l.Insert(pair{key: 0, seq: 3})

	got := l.Slice()
	assert.Equal(t, pair{0, 3}, got[0])
	assert.Equal(t, pair{1, 1}, got[1])
	assert.Equal(t, pair{1, 2}, got[2])
}

func TestElemsIteratesSorted(t *testing.T) {
	l := sortedlist.New(func(a, b string) int {
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	for _, v := range []string{"b", "c", "a"} {
		l.Insert(v)
	}

	var got []string
	for v := range l.Elems() {
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestFreshEmptyKeepsComparison(t *testing.T) {
	desc := sortedlist.New(func(a, b int) int { return b - a })
	desc.Insert(1)

	fresh := desc.FreshEmpty()
	fresh.Insert(1)
	fresh.Insert(3)
	fresh.Insert(2)

	assert.Equal(t, []int{3, 2, 1}, fresh.Slice())
	assert.Equal(t, 1, desc.Len())
}

func TestNewNilCompareFuncPanics(t *testing.T) {
	assert.Panics(t, func() { sortedlist.New[int](nil) })
}
