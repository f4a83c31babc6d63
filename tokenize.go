package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"canned_responder/responder"
)

// normalizeText prepares raw user input for tokenizing:
// - Unicode decomposition, with combining marks dropped
// - Lowercase conversion
func normalizeText(text string) string {
	text = norm.NFKD.String(text)

	text = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, text)

	return strings.ToLower(strings.TrimSpace(text))
}

// tokenize splits text into the word set handed to the generator. Anything
// that is not a letter, digit, apostrophe or hyphen separates words, and
// apostrophes and hyphens are trimmed from the ends of each word. Keywords
// are compared after normalizeText, so a key only matches raw text when it
// is a single word in this sense.
func tokenize(text string) responder.WordSet {
	words := strings.FieldsFunc(normalizeText(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})

	set := make(responder.WordSet, len(words))
	for _, w := range words {
		w = strings.Trim(w, "'-")
		if w != "" {
			set.Add(w)
		}
	}
	return set
}
