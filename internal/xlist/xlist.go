// Package xlist is the doubly-linked node chain underneath the sorted lists.
//
// It keeps no ordering of its own. Callers decide where values go; the chain only keeps front,
// back and size consistent with the links.
package xlist

type List[T any] struct {
	front *Node[T]
	back  *Node[T]
	size  int
}

func (l *List[T]) Len() int        { return l.size }
func (l *List[T]) Front() *Node[T] { return l.front }
func (l *List[T]) Back() *Node[T]  { return l.back }

func (l *List[T]) Clear() { l.front = nil; l.back = nil; l.size = 0 }

func (l *List[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{
		next:  l.front,
		value: value,
	}
	if l.front != nil {
		l.front.prev = node
	}
	l.front = node
	if l.back == nil {
		l.back = node
	}
	l.size++
	return node
}

func (l *List[T]) PushBack(value T) *Node[T] {
	node := &Node[T]{
		prev:  l.back,
		value: value,
	}
	if l.back != nil {
		l.back.next = node
	}
	l.back = node
	if l.front == nil {
		l.front = node
	}
	l.size++
	return node
}

func (l *List[T]) InsertBefore(value T, mark *Node[T]) *Node[T] {
	node := &Node[T]{value: value}
	l.linkBefore(node, mark)
	l.size++
	return node
}

func (l *List[T]) Remove(node *Node[T]) {
	l.remove(node)
	l.size--
}

// RemoveRun unlinks the n consecutive nodes starting at first and ending at last.
func (l *List[T]) RemoveRun(first *Node[T], last *Node[T], n int) {
	before := first.prev
	after := last.next
	if before == nil {
		l.front = after
	} else {
		before.next = after
	}
	if after == nil {
		l.back = before
	} else {
		after.prev = before
	}
	first.prev = nil
	last.next = nil
	l.size -= n
}

// TakeBefore moves node out of from and links it in front of mark, which must belong to l.
func (l *List[T]) TakeBefore(from *List[T], node *Node[T], mark *Node[T]) {
	from.Remove(node)
	l.linkBefore(node, mark)
	l.size++
}

// Splice appends every node of from after l's back and leaves from empty.
func (l *List[T]) Splice(from *List[T]) {
	if from.front == nil {
		return
	}
	if l.back == nil {
		l.front = from.front
	} else {
		l.back.next = from.front
		from.front.prev = l.back
	}
	l.back = from.back
	l.size += from.size
	from.Clear()
}

func (l *List[T]) linkBefore(node *Node[T], mark *Node[T]) {
	node.prev = mark.prev
	if node.prev != nil {
		node.prev.next = node
	}
	mark.prev = node
	node.next = mark
	if l.front == mark {
		l.front = node
	}
}

func (l *List[T]) remove(node *Node[T]) {
	if l.front == node {
		l.front = l.front.next
	} else {
		node.prev.next = node.next
	}
	if l.back == node {
		l.back = l.back.prev
	} else {
		node.next.prev = node.prev
	}

	node.prev = nil
	node.next = nil
}

// Node is one cell of a List. Its value is fixed when the node is created; a different value
// belongs in a different position, so callers remove the node and insert a new one instead.
type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	value T
}

func (n *Node[T]) Value() T       { return n.value }
func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }
