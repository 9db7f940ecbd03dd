package format

import "github.com/go-openapi/inflect"

// SuffixPluralizer returns the singular form for a count of one and appends
// "s" otherwise. Custom maps a singular noun to an irregular plural.
type SuffixPluralizer struct {
	Custom map[string]string
}

// Plural implements Pluralizer.
func (p SuffixPluralizer) Plural(count int, singular string) string {
	if count == 1 {
		return singular
	}
	if plural, ok := p.Custom[singular]; ok {
		return plural
	}
	return singular + "s"
}

// InflectPluralizer applies English inflection rules ("reply" -> "replies").
type InflectPluralizer struct{}

// Plural implements Pluralizer.
func (InflectPluralizer) Plural(count int, singular string) string {
	if count == 1 {
		return singular
	}
	return inflect.Pluralize(singular)
}

// PluralizerFor maps a configured rule name to a Pluralizer. Unknown names
// use the suffix rule.
func PluralizerFor(rule string, custom map[string]string) Pluralizer {
	if rule == RuleInflect {
		return InflectPluralizer{}
	}
	return SuffixPluralizer{Custom: custom}
}

// Plural rule names accepted by PluralizerFor.
const (
	RuleSuffix  = "suffix"
	RuleInflect = "inflect"
)
