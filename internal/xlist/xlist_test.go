package xlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func values[T any](l *List[T]) []T {
	var out []T
	for node := l.Front(); node != nil; node = node.Next() {
		out = append(out, node.Value())
	}
	return out
}

func backwards[T any](l *List[T]) []T {
	var out []T
	for node := l.Back(); node != nil; node = node.Prev() {
		out = append([]T{node.Value()}, out...)
	}
	return out
}

func requireChain[T any](t *testing.T, l *List[T], expected ...T) {
	t.Helper()
	require.Equal(t, len(expected), l.Len())
	if len(expected) == 0 {
		require.Nil(t, l.Front())
		require.Nil(t, l.Back())
		return
	}
	require.Equal(t, expected, values(l))
	require.Equal(t, expected, backwards(l))
	require.Nil(t, l.Front().Prev())
	require.Nil(t, l.Back().Next())
}

func TestPush(t *testing.T) {
	var l List[int]
	requireChain(t, &l)

	l.PushFront(2)
	requireChain(t, &l, 2)
	l.PushBack(3)
	l.PushFront(1)
	requireChain(t, &l, 1, 2, 3)
}

func TestInsertBefore(t *testing.T) {
	var l List[int]
	four := l.PushBack(4)
	l.InsertBefore(2, four)
	requireChain(t, &l, 2, 4)

	l.InsertBefore(3, four)
	requireChain(t, &l, 2, 3, 4)

	l.InsertBefore(0, l.Front())
	requireChain(t, &l, 0, 2, 3, 4)
}

func TestRemove(t *testing.T) {
	var l List[int]
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)

	l.Remove(b)
	requireChain(t, &l, 1, 3)
	l.Remove(a)
	requireChain(t, &l, 3)
	l.Remove(c)
	requireChain(t, &l)
}

func TestRemoveRun(t *testing.T) {
	var l List[int]
	nodes := make([]*Node[int], 0, 6)
	for i := 0; i < 6; i++ {
		nodes = append(nodes, l.PushBack(i))
	}

	l.RemoveRun(nodes[2], nodes[3], 2)
	requireChain(t, &l, 0, 1, 4, 5)

	l.RemoveRun(nodes[0], nodes[1], 2)
	requireChain(t, &l, 4, 5)

	l.RemoveRun(nodes[4], nodes[5], 2)
	requireChain(t, &l)
}

func TestTakeBeforeAndSplice(t *testing.T) {
	var dst, src List[int]
	three := dst.PushBack(3)
	dst.PushBack(5)
	src.PushBack(1)
	src.PushBack(4)
	src.PushBack(6)
	src.PushBack(7)

	dst.TakeBefore(&src, src.Front(), three)
	requireChain(t, &dst, 1, 3, 5)
	requireChain(t, &src, 4, 6, 7)

	dst.TakeBefore(&src, src.Front(), three.Next())
	requireChain(t, &dst, 1, 3, 4, 5)

	dst.Splice(&src)
	requireChain(t, &dst, 1, 3, 4, 5, 6, 7)
	requireChain(t, &src)
}

func TestSpliceIntoEmpty(t *testing.T) {
	var dst, src List[string]
	src.PushBack("a")
	src.PushBack("b")

	dst.Splice(&src)
	requireChain(t, &dst, "a", "b")
	requireChain(t, &src)

	dst.Splice(&src)
	requireChain(t, &dst, "a", "b")
}
