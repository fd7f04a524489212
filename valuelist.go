package sortedlist

import (
	"fmt"

	"github.com/bradenaw/juniper/iterator"
)

// ValueList is a sorted doubly-linked list whose domain is chosen at runtime. Every value passed
// in is checked against the list's domain, and values of the wrong domain are rejected with
// ErrInvalidValueType.
//
// IntList and StringList fix the domain in their types instead and should be preferred when the
// domain is known at compile time.
//
// ValueList's methods must not be called concurrently.
type ValueList struct {
	domain    Domain
	collation *Collation
	l         *list[Value]
}

const valueListLabel = "LinkedList"

// NewValueList returns an empty list of domain. Options only matter for DomainText.
func NewValueList(domain Domain, opts ...Option) (*ValueList, error) {
	if !domain.valid() {
		return nil, fmt.Errorf("%w: unknown domain %v", ErrInvalidValueType, domain)
	}
	var collation *Collation
	if domain == DomainText {
		var err error
		collation, err = collationFor(opts)
		if err != nil {
			return nil, err
		}
	}
	l := newList[Value](valueCompare(collation), valueListLabel)
	l.suffix = ", values type: " + domain.String()
	return &ValueList{domain: domain, collation: collation, l: l}, nil
}

func (vl *ValueList) Domain() Domain { return vl.domain }

func (vl *ValueList) check(value Value) error {
	if value.domain != vl.domain {
		return fmt.Errorf("%w: the value must be of type %v", ErrInvalidValueType, vl.domain)
	}
	if vl.domain == DomainText {
		return vl.collation.check(value.s)
	}
	return nil
}

func (vl *ValueList) Len() int      { return vl.l.Len() }
func (vl *ValueList) IsEmpty() bool { return vl.l.IsEmpty() }

func (vl *ValueList) Front() (Value, bool) { return vl.l.Front() }
func (vl *ValueList) Back() (Value, bool)  { return vl.l.Back() }

// InsertHead adds value to the beginning of the list. It returns ErrOrderViolation if value sorts
// after the current first value.
func (vl *ValueList) InsertHead(value Value) error {
	if err := vl.check(value); err != nil {
		return err
	}
	return vl.l.InsertHead(value)
}

// InsertTail adds value to the end of the list. It returns ErrOrderViolation unless value sorts
// after the current last value.
func (vl *ValueList) InsertTail(value Value) error {
	if err := vl.check(value); err != nil {
		return err
	}
	return vl.l.InsertTail(value)
}

// Insert adds value in its sorted position, in front of any equal values.
func (vl *ValueList) Insert(value Value) error {
	if err := vl.check(value); err != nil {
		return err
	}
	return vl.l.Insert(value)
}

// Shift removes and returns the first value. It returns ErrEmptyList if there is none.
func (vl *ValueList) Shift() (Value, error) { return vl.l.Shift() }

// Delete removes value from the list. If all is true every node equal to value is removed,
// otherwise only one is. It returns the number of nodes removed.
func (vl *ValueList) Delete(value Value, all bool) (int, error) {
	if err := vl.check(value); err != nil {
		return 0, err
	}
	return vl.l.Delete(value, all)
}

// Search returns copies of every node equal to value. The domain of value is checked before the
// list is looked at, so a mismatched value is reported even on an empty list.
func (vl *ValueList) Search(value Value) ([]Node[Value], error) {
	if err := vl.check(value); err != nil {
		return nil, err
	}
	return vl.l.Search(value)
}

// Merge moves all of other's values into vl and returns the merged list. It returns
// ErrListTypeMismatch if the lists have different domains, or if two non-empty string lists
// use different locales.
//
// If vl is empty, other is returned; if other is empty, vl is returned. Otherwise vl is returned
// and other is left empty.
func (vl *ValueList) Merge(other *ValueList) (*ValueList, error) {
	if vl.domain != other.domain {
		return nil, fmt.Errorf("%w: %v and %v", ErrListTypeMismatch, vl.domain, other.domain)
	}
	if vl.domain == DomainText && !vl.IsEmpty() && !other.IsEmpty() &&
		!vl.collation.sameOrder(other.collation) {
		return nil, fmt.Errorf("%w: locales %s and %s",
			ErrListTypeMismatch, vl.collation.Locale(), other.collation.Locale())
	}
	merged, err := vl.l.Merge(other.l)
	if err != nil {
		return nil, err
	}
	if merged == other.l {
		return other, nil
	}
	return vl, nil
}

func (vl *ValueList) Nodes() []Node[Value]              { return vl.l.Nodes() }
func (vl *ValueList) Values() []Value                   { return vl.l.Values() }
func (vl *ValueList) Iterate() iterator.Iterator[Value] { return vl.l.Iterate() }

func (vl *ValueList) String() string { return vl.l.String() }
