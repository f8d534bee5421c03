package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonSlugRun        = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Slugify folds a display name down to a lowercase hyphenated identifier.
// Diacritics are stripped first so accented names produce stable slugs.
func Slugify(s string) string {
	s = strings.ReplaceAll(s, "ß", "ss")

	folded, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(folded)

	return strings.Trim(nonSlugRun.ReplaceAllString(folded, "-"), "-")
}

// NormalizeWhitespace collapses any run of whitespace to a single space and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func ContainsString(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}
