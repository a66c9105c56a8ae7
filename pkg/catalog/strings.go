package catalog

import (
	"strings"
	"unicode/utf8"
)

func StartsWith(prefix string) Predicate[string] {
	lowered := strings.ToLower(prefix)
	return func(s string) bool {
		return strings.HasPrefix(strings.ToLower(s), lowered)
	}
}

func Contains(fragment string) Predicate[string] {
	lowered := strings.ToLower(fragment)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), lowered)
	}
}

// LengthBetween matches strings of min to max runes, both inclusive.
func LengthBetween(min, max int) Predicate[string] {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		return n >= min && n <= max
	}
}
