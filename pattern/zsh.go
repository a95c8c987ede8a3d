package pattern

import "strings"

// ValidExtglobAlternatives reports whether every '|'-separated
// alternative inside an extglob group's parentheses — e.g. the
// "a|b*.txt" in "@(a|b*.txt)" — is a syntactically valid glob pattern
// on its own. The scanner's EXTGLOB_PATTERN handler (spec §4.2 item
// 22) only tracks paren depth; it never validates what's inside, so
// this is a separate check a consumer can run on a scanned span. No
// scanner test calls it; only this package's own test does.
func ValidExtglobAlternatives(inner string) bool {
	for _, alt := range strings.Split(inner, "|") {
		if _, err := Regexp(alt, 0); err != nil {
			return false
		}
	}
	return true
}
