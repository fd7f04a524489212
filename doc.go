// Package sortedlist provides doubly-linked lists that keep their values sorted.
//
// IntList holds ints in numeric order. StringList holds strings in the collation order of a
// locale, with runs of digits compared by numeric value so that "Item 2" sorts before "Item 10".
// ValueList holds either kind, chosen at runtime, and checks every value it is given.
//
// All three keep equal values next to each other, insert a new value in front of existing equal
// ones, and can delete one or all copies of a value, search for every copy of a value, and merge
// another list of the same kind into themselves.
//
// None of the lists are safe for concurrent use.
package sortedlist
