package sortedlist

import (
	"github.com/bradenaw/juniper/iterator"
)

// IntList is a sorted doubly-linked list of ints. Values are kept in ascending order, and equal
// values are kept next to each other.
//
// Integer comparison cannot fail, so the methods that only compare return no error.
//
// IntList's methods must not be called concurrently.
type IntList struct {
	l *list[int]
}

const intListLabel = "IntLinkedList"

func NewIntList() *IntList {
	return &IntList{l: newList[int](compareInts, intListLabel)}
}

func (il *IntList) Len() int      { return il.l.Len() }
func (il *IntList) IsEmpty() bool { return il.l.IsEmpty() }

// Front returns the smallest value, or false if the list is empty.
func (il *IntList) Front() (int, bool) { return il.l.Front() }

// Back returns the largest value, or false if the list is empty.
func (il *IntList) Back() (int, bool) { return il.l.Back() }

// InsertHead adds value to the beginning of the list. It returns ErrOrderViolation if value is
// larger than the current first value.
func (il *IntList) InsertHead(value int) error { return il.l.InsertHead(value) }

// InsertTail adds value to the end of the list. It returns ErrOrderViolation unless value is
// larger than the current last value.
func (il *IntList) InsertTail(value int) error { return il.l.InsertTail(value) }

// Insert adds value in its sorted position. A value equal to ones already in the list is placed
// in front of them.
func (il *IntList) Insert(value int) { mustCompare(il.l.Insert(value)) }

// Shift removes and returns the first value. It returns ErrEmptyList if there is none.
func (il *IntList) Shift() (int, error) { return il.l.Shift() }

// Delete removes value from the list. If all is true every node holding value is removed,
// otherwise only one is. It returns the number of nodes removed, or ErrValueNotFound.
func (il *IntList) Delete(value int, all bool) (int, error) { return il.l.Delete(value, all) }

// Search returns copies of every node holding value, or ErrValueNotFound.
func (il *IntList) Search(value int) ([]Node[int], error) { return il.l.Search(value) }

// Merge moves all of other's values into il and returns the merged list.
//
// If il is empty, other is returned; if other is empty, il is returned. Otherwise il is returned
// and other is left empty. In every case the caller should use only the returned list afterward.
func (il *IntList) Merge(other *IntList) *IntList {
	merged, err := il.l.Merge(other.l)
	mustCompare(err)
	if merged == other.l {
		return other
	}
	return il
}

func (il *IntList) Nodes() []Node[int]              { return il.l.Nodes() }
func (il *IntList) Values() []int                   { return il.l.Values() }
func (il *IntList) Iterate() iterator.Iterator[int] { return il.l.Iterate() }

// String renders the list as a header line with the node count followed by one line per node.
func (il *IntList) String() string { return il.l.String() }

// mustCompare is for errors that can only come from a comparator, in lists whose comparator
// cannot fail.
func mustCompare(err error) {
	if err != nil {
		panic(err)
	}
}
