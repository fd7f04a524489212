package sortedlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradenaw/sortedlist"
)

func TestNewCollation(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		locale   string
		expected string
	}{
		{"", "und"},
		{"C", "und"},
		{"POSIX", "und"},
		{"C.UTF-8", "und"},
		{"cs_CZ.UTF-8", "cs-CZ"},
		{"de_DE@euro", "de-DE"},
		{"en-US", "en-US"},
	} {
		c, err := sortedlist.NewCollation(tt.locale)
		require.NoError(t, err, tt.locale)
		assert.Equal(t, tt.expected, c.Locale(), tt.locale)
	}

	_, err := sortedlist.NewCollation("!!not a locale")
	require.ErrorIs(t, err, sortedlist.ErrComparisonFailed)
}

func TestCollationCompare(t *testing.T) {
	t.Parallel()

	c, err := sortedlist.NewCollation("und")
	require.NoError(t, err)

	for _, tt := range []struct {
		a, b     string
		expected int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"Item 2", "Item 10", -1},
		{"Prague 10", "Prague 3", 1},
		{"a", "á", -1},
		{"á", "b", -1},
	} {
		got, err := c.Compare(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%q vs %q", tt.a, tt.b)
	}

	_, err = c.Compare("a", "\xff")
	require.ErrorIs(t, err, sortedlist.ErrComparisonFailed)
	_, err = c.Compare("\xff", "a")
	require.ErrorIs(t, err, sortedlist.ErrComparisonFailed)
}

func TestDefaultLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_COLLATE", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "", sortedlist.DefaultLocale())

	t.Setenv("LANG", "de_DE.UTF-8")
	assert.Equal(t, "de_DE.UTF-8", sortedlist.DefaultLocale())

	t.Setenv("LC_COLLATE", "cs_CZ.UTF-8")
	assert.Equal(t, "cs_CZ.UTF-8", sortedlist.DefaultLocale())

	t.Setenv("LC_ALL", "C")
	assert.Equal(t, "C", sortedlist.DefaultLocale())

	l, err := sortedlist.NewStringList()
	require.NoError(t, err)
	assert.Equal(t, "und", l.Collation().Locale())
}
