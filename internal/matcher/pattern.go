package matcher

import (
	"regexp"
)

// Word returns a case-insensitive pattern matching w anywhere in the input
func Word(w string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(w))
}

// Eventually returns a case-insensitive pattern matching first followed,
// after any number of characters, by then.
func Eventually(first, then string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(first) + `.*` + regexp.QuoteMeta(then))
}
