package normalizer

import (
	"strings"
	"unicode"
)

// asciiPunctuation lists the ASCII punctuation characters that are removed from text.
// The hyphen is not listed, so hyphenated words stay whole.
const asciiPunctuation = "!\"#$%&'()*+,./:;<=>?@[\\]^_`{|}~"

func isStrippedPunct(r rune) bool {
	return r < 128 && strings.ContainsRune(asciiPunctuation, r)
}

// splitWords splits text on whitespace and keeps tokens with at least one letter.
func splitWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if hasLetter(f) {
			words = append(words, f)
		}
	}
	return words
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
