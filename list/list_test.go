package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movable-go/movable/list"
)

func TestHeadInsertOrder(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 7} {
		var l list.List[int]

		for v := 1; v <= n; v++ {
			l.InsertAtHead(v)
		}

		require.Equal(t, n, l.Len())

		got := make([]int, 0, n)
		for it := l.Begin(); it.NotEqual(l.End()); it.Advance() {
			got = append(got, *it.Deref())
		}

		want := make([]int, 0, n)
		for v := n; v >= 1; v-- {
			want = append(want, v)
		}

		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestEmptyList(t *testing.T) {
	t.Parallel()

	var l list.List[string]

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Begin().NotEqual(l.End()))
	assert.True(t, l.Begin().AtEnd())
}

func TestAll(t *testing.T) {
	t.Parallel()

	var l list.List[int]
	for v := 1; v <= 4; v++ {
		l.InsertAtHead(v)
	}

	got := []int{}
	for v := range l.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, got)

	got = got[:0]
	for v := range l.All() {
		got = append(got, v)

		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{4, 3}, got)
}

func TestClear(t *testing.T) {
	t.Parallel()

	var l list.List[int]
	for v := 1; v <= 5; v++ {
		l.InsertAtHead(v)
	}

	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Begin().NotEqual(l.End()))

	// the list is reusable after teardown
	l.InsertAtHead(10)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, 10, *l.Begin().Deref())
}

func TestClearEmpty(t *testing.T) {
	t.Parallel()

	var l list.List[int]
	l.Clear()
	l.Clear()

	assert.True(t, l.IsEmpty())
}
