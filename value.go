package sortedlist

import (
	"cmp"
	"fmt"
	"strconv"
)

// Domain is the kind of value a ValueList holds.
type Domain int

const (
	DomainInt Domain = iota + 1
	DomainText
)

func (d Domain) String() string {
	switch d {
	case DomainInt:
		return "int"
	case DomainText:
		return "string"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

func (d Domain) valid() bool { return d == DomainInt || d == DomainText }

// ParseDomain returns the Domain named by s, which is "int" or "string".
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "int":
		return DomainInt, nil
	case "string":
		return DomainText, nil
	default:
		return 0, fmt.Errorf("%w: unknown domain %q", ErrInvalidValueType, s)
	}
}

// Value is either an int or a string. The zero Value belongs to no domain and is rejected by
// every ValueList.
type Value struct {
	domain Domain
	i      int
	s      string
}

func Int(i int) Value     { return Value{domain: DomainInt, i: i} }
func Text(s string) Value { return Value{domain: DomainText, s: s} }

// ParseValue interprets s as a value of domain d.
func ParseValue(d Domain, s string) (Value, error) {
	switch d {
	case DomainInt:
		i, err := strconv.Atoi(s)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an int", ErrInvalidValueType, s)
		}
		return Int(i), nil
	case DomainText:
		return Text(s), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown domain %v", ErrInvalidValueType, d)
	}
}

func (v Value) Domain() Domain { return v.domain }

// Int returns the value as an int, or false if it is not in DomainInt.
func (v Value) Int() (int, bool) { return v.i, v.domain == DomainInt }

// Text returns the value as a string, or false if it is not in DomainText.
func (v Value) Text() (string, bool) { return v.s, v.domain == DomainText }

func (v Value) String() string {
	switch v.domain {
	case DomainInt:
		return strconv.Itoa(v.i)
	case DomainText:
		return v.s
	default:
		return "<invalid>"
	}
}

// valueCompare orders Values of a single domain. Ints compare numerically and strings through
// collation.
func valueCompare(collation *Collation) compareFunc[Value] {
	return func(a, b Value) (int, error) {
		if a.domain != b.domain {
			return 0, fmt.Errorf("%w: cannot compare %v with %v", ErrInvalidValueType, a.domain, b.domain)
		}
		if a.domain == DomainInt {
			return cmp.Compare(a.i, b.i), nil
		}
		return collation.Compare(a.s, b.s)
	}
}
