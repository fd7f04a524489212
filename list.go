package sortedlist

import (
	"fmt"
	"strings"

	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/sortedlist/internal/xlist"
)

// list is the sorted engine shared by the typed lists. Values are kept in non-decreasing order
// under compare, and equal values always sit next to each other.
//
// Every mutating method does all of its comparisons before it relinks anything, so a failed
// comparison leaves the list as it was.
type list[T any] struct {
	chain   xlist.List[T]
	compare compareFunc[T]
	// label and suffix frame the node count on the first line of String.
	label  string
	suffix string
}

func newList[T any](compare compareFunc[T], label string) *list[T] {
	return &list[T]{compare: compare, label: label}
}

func (l *list[T]) Len() int      { return l.chain.Len() }
func (l *list[T]) IsEmpty() bool { return l.chain.Len() == 0 }

func (l *list[T]) Front() (T, bool) { return nodeValue(l.chain.Front()) }
func (l *list[T]) Back() (T, bool)  { return nodeValue(l.chain.Back()) }

func nodeValue[T any](n *xlist.Node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Value(), true
}

func (l *list[T]) InsertHead(value T) error {
	if front := l.chain.Front(); front != nil {
		c, err := l.compare(value, front.Value())
		if err != nil {
			return err
		}
		if c > 0 {
			return fmt.Errorf("%w: %v cannot be added to the beginning, use Insert", ErrOrderViolation, value)
		}
	}
	l.chain.PushFront(value)
	return nil
}

func (l *list[T]) InsertTail(value T) error {
	if back := l.chain.Back(); back != nil {
		c, err := l.compare(value, back.Value())
		if err != nil {
			return err
		}
		if c <= 0 {
			return fmt.Errorf("%w: %v cannot be added to the end, use Insert", ErrOrderViolation, value)
		}
	}
	l.chain.PushBack(value)
	return nil
}

func (l *list[T]) Shift() (T, error) {
	front := l.chain.Front()
	if front == nil {
		var zero T
		return zero, ErrEmptyList
	}
	l.chain.Remove(front)
	return front.Value(), nil
}

func (l *list[T]) Insert(value T) error {
	front, back := l.chain.Front(), l.chain.Back()
	if front == nil {
		l.chain.PushBack(value)
		return nil
	}

	toBack, err := l.compare(value, back.Value())
	if err != nil {
		return err
	}
	if toBack > 0 {
		l.chain.PushBack(value)
		return nil
	}
	toFront, err := l.compare(value, front.Value())
	if err != nil {
		return err
	}
	if toFront < 0 {
		l.chain.PushFront(value)
		return nil
	}
	if toBack == 0 {
		l.chain.InsertBefore(value, back)
		return nil
	}

	// front <= value < back, so the scan stops before running off the end. The nil check keeps
	// an inconsistent comparator from walking off the chain.
	curr := front
	for curr != nil {
		c, err := l.compare(curr.Value(), value)
		if err != nil {
			return err
		}
		if c >= 0 {
			break
		}
		curr = curr.Next()
	}
	if curr == nil {
		l.chain.PushBack(value)
	} else {
		l.chain.InsertBefore(value, curr)
	}
	return nil
}

// Delete removes value from the list, either the whole run of nodes equal to it or just one of
// them. It returns how many nodes were removed.
func (l *list[T]) Delete(value T, all bool) (int, error) {
	front, back := l.chain.Front(), l.chain.Back()
	if front == nil {
		return 0, fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}

	atFront, err := l.compare(front.Value(), value)
	if err != nil {
		return 0, err
	}
	if atFront == 0 {
		uniform, err := l.compare(front.Value(), back.Value())
		if err != nil {
			return 0, err
		}
		if l.chain.Len() == 1 || uniform == 0 {
			return l.drain(all), nil
		}
		last, n, err := l.runForward(front, value, all)
		if err != nil {
			return 0, err
		}
		l.chain.RemoveRun(front, last, n)
		return n, nil
	}

	atBack, err := l.compare(back.Value(), value)
	if err != nil {
		return 0, err
	}
	if atBack == 0 {
		first, n, err := l.runBackward(back, value, all)
		if err != nil {
			return 0, err
		}
		l.chain.RemoveRun(first, back, n)
		return n, nil
	}
	if atFront > 0 || atBack < 0 {
		return 0, fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}

	first, err := l.find(front.Next(), value)
	if err != nil {
		return 0, err
	}
	if first == nil {
		return 0, fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	last, n, err := l.runForward(first, value, all)
	if err != nil {
		return 0, err
	}
	l.chain.RemoveRun(first, last, n)
	return n, nil
}

// drain empties a list whose values are all equal, or only shifts its head when all is false.
func (l *list[T]) drain(all bool) int {
	if !all {
		l.chain.Remove(l.chain.Front())
		return 1
	}
	n := l.chain.Len()
	l.chain.Clear()
	return n
}

// runForward returns the last node of the run of nodes equal to value that starts at first, and
// the run's length. With all false the run is just first.
func (l *list[T]) runForward(first *xlist.Node[T], value T, all bool) (*xlist.Node[T], int, error) {
	last, n := first, 1
	for all && last.Next() != nil {
		c, err := l.compare(last.Next().Value(), value)
		if err != nil {
			return nil, 0, err
		}
		if c != 0 {
			break
		}
		last = last.Next()
		n++
	}
	return last, n, nil
}

func (l *list[T]) runBackward(last *xlist.Node[T], value T, all bool) (*xlist.Node[T], int, error) {
	first, n := last, 1
	for all && first.Prev() != nil {
		c, err := l.compare(first.Prev().Value(), value)
		if err != nil {
			return nil, 0, err
		}
		if c != 0 {
			break
		}
		first = first.Prev()
		n++
	}
	return first, n, nil
}

// find returns the first node at or after start equal to value, or nil once the scan passes
// the place value would be.
func (l *list[T]) find(start *xlist.Node[T], value T) (*xlist.Node[T], error) {
	for curr := start; curr != nil; curr = curr.Next() {
		c, err := l.compare(curr.Value(), value)
		if err != nil {
			return nil, err
		}
		if c == 0 {
			return curr, nil
		}
		if c > 0 {
			return nil, nil
		}
	}
	return nil, nil
}

// Search returns copies of every node equal to value.
func (l *list[T]) Search(value T) ([]Node[T], error) {
	var found []Node[T]
	for curr := l.chain.Front(); curr != nil; curr = curr.Next() {
		c, err := l.compare(curr.Value(), value)
		if err != nil {
			return nil, err
		}
		if c < 0 {
			continue
		}
		if c > 0 {
			break
		}
		found = append(found, snapshot(curr))
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	return found, nil
}

// Merge moves every node of other into l, keeping l sorted, and returns the merged list. If
// either list is empty the other one is returned as is. Otherwise the result is l and other is
// left empty. Merging a list into itself leaves it unchanged.
//
// other must be sorted by l's comparator.
func (l *list[T]) Merge(other *list[T]) (*list[T], error) {
	if other == l {
		return l, nil
	}
	if l.IsEmpty() {
		return other, nil
	}
	if other.IsEmpty() {
		return l, nil
	}

	// marks[i] is the node of l that the i-th node of other goes in front of. Nodes of other past
	// the end of marks are larger than everything in l.
	marks := make([]*xlist.Node[T], 0, other.Len())
	curr := l.chain.Front()
	for node := other.chain.Front(); node != nil; node = node.Next() {
		for curr != nil {
			c, err := l.compare(node.Value(), curr.Value())
			if err != nil {
				return nil, err
			}
			if c <= 0 {
				break
			}
			curr = curr.Next()
		}
		if curr == nil {
			break
		}
		marks = append(marks, curr)
	}

	for _, mark := range marks {
		l.chain.TakeBefore(&other.chain, other.chain.Front(), mark)
	}
	l.chain.Splice(&other.chain)
	return l, nil
}

// Nodes returns copies of every node, front to back.
func (l *list[T]) Nodes() []Node[T] {
	out := make([]Node[T], 0, l.chain.Len())
	for curr := l.chain.Front(); curr != nil; curr = curr.Next() {
		out = append(out, snapshot(curr))
	}
	return out
}

func (l *list[T]) Iterate() iterator.Iterator[T] {
	return &listIterator[T]{next: l.chain.Front()}
}

func (l *list[T]) Values() []T { return iterator.Collect(l.Iterate()) }

func (l *list[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s number of nodes: %d%s", l.label, l.chain.Len(), l.suffix)
	for curr := l.chain.Front(); curr != nil; curr = curr.Next() {
		sb.WriteByte('\n')
		sb.WriteString(snapshot(curr).String())
	}
	return sb.String()
}

type listIterator[T any] struct {
	next *xlist.Node[T]
}

func (iter *listIterator[T]) Next() (T, bool) {
	if iter.next == nil {
		var zero T
		return zero, false
	}
	item := iter.next.Value()
	iter.next = iter.next.Next()
	return item, true
}
