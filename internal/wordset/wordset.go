package wordset

import (
	"regexp"
	"strings"
	"unicode"
)

// Words that carry no signal when comparing degree labels.
var stopwords = map[string]struct{}{
	"&":   {},
	"of":  {},
	"in":  {},
	"the": {},
	"and": {},
}

var nonWordRuns = regexp.MustCompile(`\W+`)

// SplitWords tokenizes a string on runs of non-word characters.
func SplitWords(s string) []string {
	var words []string
	for _, w := range nonWordRuns.Split(s, -1) {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Wordset lowercases the tokens, drops stopwords and collapses duplicates.
func Wordset(words []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range words {
		w = strings.ToLower(w)
		if _, stop := stopwords[w]; stop {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Capitals returns only the uppercase alphabetic characters of s,
// in their original order. Used to compare acronym shapes.
func Capitals(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) && unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Intersection counts how many members of a appear in b.
func Intersection(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

// Subset reports whether every member of a appears in b.
func Subset(a, b map[string]struct{}) bool {
	return Intersection(a, b) == len(a)
}
