package sortedlist

import (
	"fmt"

	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/sortedlist/internal/xlist"
)

// Node is a copy of one position in a list: its value and the values of its neighbors at the
// moment the copy was taken. It is detached from the list, so later changes to the list do not
// show through it.
type Node[T any] struct {
	value   T
	prev    T
	next    T
	hasPrev bool
	hasNext bool
}

func snapshot[T any](n *xlist.Node[T]) Node[T] {
	out := Node[T]{value: n.Value()}
	if p := n.Prev(); p != nil {
		out.prev = p.Value()
		out.hasPrev = true
	}
	if nx := n.Next(); nx != nil {
		out.next = nx.Value()
		out.hasNext = true
	}
	return out
}

func (n Node[T]) Value() T { return n.value }

// Prev returns the value of the preceding node, or false if this was the first node.
func (n Node[T]) Prev() (T, bool) { return n.prev, n.hasPrev }

// Next returns the value of the following node, or false if this was the last node.
func (n Node[T]) Next() (T, bool) { return n.next, n.hasNext }

// String renders the node as "<value> (prev: <prev>, next: <next>)", with null for a missing
// neighbor.
func (n Node[T]) String() string {
	prev, next := "null", "null"
	if n.hasPrev {
		prev = fmt.Sprint(n.prev)
	}
	if n.hasNext {
		next = fmt.Sprint(n.next)
	}
	return fmt.Sprintf("%v (prev: %s, next: %s)", n.value, prev, next)
}

// NodeValues returns the values of nodes, in order.
func NodeValues[T any](nodes []Node[T]) []T {
	return xslices.Map(nodes, Node[T].Value)
}
