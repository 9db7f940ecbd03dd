// Package format holds the pluggable text formatting used by the thread
// components: noun pluralization and compact relative timestamps.
package format

import "time"

// Pluralizer chooses the noun form for a count.
type Pluralizer interface {
	Plural(count int, singular string) string
}

// RelativeTimer renders the distance between t and now.
type RelativeTimer interface {
	Since(t, now time.Time) string
}

// Formatter bundles the collaborators a renderer needs.
type Formatter struct {
	Plurals Pluralizer
	Times   RelativeTimer
}

// DefaultFormatter appends "s" for plurals and uses compact relative times.
func DefaultFormatter() Formatter {
	return Formatter{
		Plurals: SuffixPluralizer{},
		Times:   CompactRelativeTimer{},
	}
}

// Plural delegates to the configured Pluralizer, falling back to the suffix rule.
func (f Formatter) Plural(count int, singular string) string {
	if f.Plurals == nil {
		return SuffixPluralizer{}.Plural(count, singular)
	}
	return f.Plurals.Plural(count, singular)
}

// Since delegates to the configured RelativeTimer, falling back to the compact form.
func (f Formatter) Since(t, now time.Time) string {
	if f.Times == nil {
		return CompactRelativeTimer{}.Since(t, now)
	}
	return f.Times.Since(t, now)
}
