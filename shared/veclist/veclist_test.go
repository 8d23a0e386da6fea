package veclist_test

import (
	"testing"

	"github.com/on-the-ground/underscore_go/shared/veclist"

	"github.com/stretchr/testify/assert"
)

func TestPushAppendsAtEnd(t *testing.T) {
	l := veclist.New(1, 2)
	l.Push(3)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, l.Slice())
}

func TestElemsIteratesInPushOrder(t *testing.T) {
	l := veclist.New("b", "a", "c")

	var got []string
	for v := range l.Elems() {
		got = append(got, v)
	}
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestNewCopiesItsArguments(t *testing.T) {
	backing := []int{1, 2, 3}
	l := veclist.New(backing...)
	backing[0] = 99

	assert.Equal(t, []int{1, 2, 3}, l.Slice())
}

func TestFreshEmpty(t *testing.T) {
	l := veclist.New(1, 2, 3)
	fresh := l.FreshEmpty()

	assert.Equal(t, 0, fresh.Len())
	assert.Equal(t, 3, l.Len())
}

func TestSliceReturnsCopy(t *testing.T) {
	l := veclist.New(1, 2)
	s := l.Slice()
	s[0] = 99

	assert.Equal(t, []int{1, 2}, l.Slice())
}
