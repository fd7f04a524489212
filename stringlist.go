package sortedlist

import (
	"fmt"

	"github.com/bradenaw/juniper/iterator"
)

// StringList is a sorted doubly-linked list of strings, ordered by the collation rules of a
// locale with digit runs compared numerically. Equal strings are kept next to each other.
//
// Collation fails on strings that are not valid UTF-8, so every method that compares values
// can return ErrComparisonFailed. A failed call leaves the list unchanged.
//
// StringList's methods must not be called concurrently.
type StringList struct {
	l         *list[string]
	collation *Collation
}

const stringListLabel = "StringLinkedList"

// NewStringList returns an empty StringList. Without options it collates by the process locale
// (see DefaultLocale).
func NewStringList(opts ...Option) (*StringList, error) {
	collation, err := collationFor(opts)
	if err != nil {
		return nil, err
	}
	return &StringList{
		l:         newList[string](collation.Compare, stringListLabel),
		collation: collation,
	}, nil
}

// Collation returns the collation the list is ordered by.
func (sl *StringList) Collation() *Collation { return sl.collation }

func (sl *StringList) Len() int      { return sl.l.Len() }
func (sl *StringList) IsEmpty() bool { return sl.l.IsEmpty() }

// Front returns the first value in collation order, or false if the list is empty.
func (sl *StringList) Front() (string, bool) { return sl.l.Front() }

// Back returns the last value in collation order, or false if the list is empty.
func (sl *StringList) Back() (string, bool) { return sl.l.Back() }

// InsertHead adds value to the beginning of the list. It returns ErrOrderViolation if value
// collates after the current first value.
func (sl *StringList) InsertHead(value string) error {
	if err := sl.collation.check(value); err != nil {
		return err
	}
	return sl.l.InsertHead(value)
}

// InsertTail adds value to the end of the list. It returns ErrOrderViolation unless value
// collates after the current last value.
func (sl *StringList) InsertTail(value string) error {
	if err := sl.collation.check(value); err != nil {
		return err
	}
	return sl.l.InsertTail(value)
}

// Insert adds value in its sorted position. A value equal to ones already in the list is placed
// in front of them.
func (sl *StringList) Insert(value string) error {
	if err := sl.collation.check(value); err != nil {
		return err
	}
	return sl.l.Insert(value)
}

// Shift removes and returns the first value. It returns ErrEmptyList if there is none.
func (sl *StringList) Shift() (string, error) { return sl.l.Shift() }

// Delete removes value from the list. If all is true every node collating equal to value is
// removed, otherwise only one is. It returns the number of nodes removed.
func (sl *StringList) Delete(value string, all bool) (int, error) { return sl.l.Delete(value, all) }

// Search returns copies of every node collating equal to value, or ErrValueNotFound.
func (sl *StringList) Search(value string) ([]Node[string], error) { return sl.l.Search(value) }

// Merge moves all of other's values into sl and returns the merged list. Two non-empty lists
// must use the same locale; otherwise Merge returns ErrListTypeMismatch.
//
// If sl is empty, other is returned; if other is empty, sl is returned. Otherwise sl is returned
// and other is left empty. If a comparison fails, neither list is changed.
func (sl *StringList) Merge(other *StringList) (*StringList, error) {
	if !sl.IsEmpty() && !other.IsEmpty() && !sl.collation.sameOrder(other.collation) {
		return nil, fmt.Errorf("%w: locales %s and %s",
			ErrListTypeMismatch, sl.collation.Locale(), other.collation.Locale())
	}
	merged, err := sl.l.Merge(other.l)
	if err != nil {
		return nil, err
	}
	if merged == other.l {
		return other, nil
	}
	return sl, nil
}

func (sl *StringList) Nodes() []Node[string]              { return sl.l.Nodes() }
func (sl *StringList) Values() []string                   { return sl.l.Values() }
func (sl *StringList) Iterate() iterator.Iterator[string] { return sl.l.Iterate() }

func (sl *StringList) String() string { return sl.l.String() }
