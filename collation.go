package sortedlist

import (
	"cmp"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// compareFunc orders two values, returning a negative number, zero or a positive number when a
// sorts before, with or after b.
type compareFunc[T any] func(a, b T) (int, error)

func compareInts(a, b int) (int, error) { return cmp.Compare(a, b), nil }

// Collation compares strings by the rules of a locale. Runs of digits are compared by their
// numeric value, so "Item 2" sorts before "Item 10".
//
// A Collation is not safe for concurrent use. Each StringList built without WithCollation gets
// its own.
type Collation struct {
	tag      language.Tag
	collator *collate.Collator
}

// NewCollation returns a Collation for locale, which may be a BCP 47 tag ("cs-CZ") or a POSIX
// locale name ("cs_CZ.UTF-8"). The empty string, "C" and "POSIX" select the root collation.
func NewCollation(locale string) (*Collation, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: creating collator for locale %q: %v", ErrComparisonFailed, locale, err)
	}
	return &Collation{
		tag:      tag,
		collator: collate.New(tag, collate.Numeric),
	}, nil
}

// DefaultLocale returns the collation locale of the process, taken from LC_ALL, LC_COLLATE and
// LANG in that order. It returns "" when none are set.
func DefaultLocale() string {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Locale returns the BCP 47 form of the collation's locale.
func (c *Collation) Locale() string { return c.tag.String() }

// Compare returns -1, 0 or 1 when a sorts before, with or after b. Strings that are not valid
// UTF-8 cannot be collated and produce ErrComparisonFailed.
func (c *Collation) Compare(a, b string) (int, error) {
	if err := c.check(a); err != nil {
		return 0, err
	}
	if err := c.check(b); err != nil {
		return 0, err
	}
	return c.collator.CompareString(a, b), nil
}

// sameOrder reports whether c and other order every pair of strings the same way.
func (c *Collation) sameOrder(other *Collation) bool {
	return c == other || c.Locale() == other.Locale()
}

// check reports whether s can be collated at all. Lists call it before storing a value, so that
// the first value of an empty list, which is never compared, cannot poison later comparisons.
func (c *Collation) check(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrComparisonFailed, s)
	}
	return nil
}

func parseLocale(locale string) (language.Tag, error) {
	// POSIX names carry a codeset and modifier that BCP 47 has no place for: cs_CZ.UTF-8@euro.
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	switch locale {
	case "", "C", "POSIX":
		return language.Und, nil
	}
	return language.Parse(strings.ReplaceAll(locale, "_", "-"))
}
