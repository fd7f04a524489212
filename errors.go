package sortedlist

import (
	"errors"
)

// Errors returned by list operations. They are wrapped with the offending value, so compare
// with errors.Is.
var (
	// ErrInvalidValueType is returned when a value, or a list's declared domain, does not match
	// the domain of the list it is used with.
	ErrInvalidValueType = errors.New("value type does not match the list")
	// ErrOrderViolation is returned by InsertHead and InsertTail when the value does not belong
	// at that end of the list. Use Insert instead.
	ErrOrderViolation = errors.New("value would break sort order")
	// ErrEmptyList is returned by Shift on an empty list.
	ErrEmptyList = errors.New("cannot remove from an empty list")
	// ErrValueNotFound is returned by Delete and Search when no node holds the value.
	ErrValueNotFound = errors.New("value was not found")
	// ErrListTypeMismatch is returned when merging lists of different domains.
	ErrListTypeMismatch = errors.New("both lists must be of the same type")
	// ErrComparisonFailed is returned when two strings cannot be collated, or when a collator
	// cannot be created for a locale.
	ErrComparisonFailed = errors.New("comparison failed")
)
