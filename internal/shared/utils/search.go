package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldSearch lowercases s and strips combining marks so that searches over
// Spanish names match regardless of accents ("José" matches "jose").
func FoldSearch(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// MatchesSearch reports whether any of the fields contains needle after
// accent folding. An empty needle matches everything.
func MatchesSearch(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	folded := FoldSearch(needle)
	for _, field := range fields {
		if strings.Contains(FoldSearch(field), folded) {
			return true
		}
	}
	return false
}
