package hora

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation is replaced by spaces before matching; '.', ':' and '-' are kept because they
// belong to "a.m.", clock and date shapes.
var punctuation = strings.NewReplacer(
	",", " ", ";", " ", "¿", " ", "?", " ", "¡", " ", "!", " ",
	"*", " ", "\"", " ", "(", " ", ")", " ", "«", " ", "»", " ",
)

// fold lower-cases s with Spanish rules, strips diacritics and punctuation, and collapses
// whitespace. Transformers are built per call since they carry state.
func fold(s string) string {
	s = cases.Lower(language.Spanish).String(s)
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err == nil {
		s = stripped
	}
	s = punctuation.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func sortLongestFirst(words []string) {
	slices.SortFunc(words, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
