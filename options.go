package sortedlist

// Option configures how a list compares strings.
type Option func(*options)

type options struct {
	locale    string
	hasLocale bool
	collation *Collation
}

// WithLocale collates strings by the rules of locale instead of the process locale. See
// NewCollation for the accepted forms.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
		o.hasLocale = true
	}
}

// WithCollation uses c to compare strings. It takes precedence over WithLocale. A Collation is
// not safe for concurrent use, so lists sharing one must not be used concurrently either.
func WithCollation(c *Collation) Option {
	return func(o *options) { o.collation = c }
}

func (o *options) resolve() (*Collation, error) {
	if o.collation != nil {
		return o.collation, nil
	}
	if o.hasLocale {
		return NewCollation(o.locale)
	}
	return NewCollation(DefaultLocale())
}

func collationFor(opts []Option) (*Collation, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o.resolve()
}
