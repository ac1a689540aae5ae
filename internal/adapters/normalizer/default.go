package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

// DefaultNormalizer implements the default text normalization strategy.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize lowercases the text with Unicode case rules, removes ASCII punctuation other
// than '-', and splits on whitespace. Tokens without a letter are dropped. No Unicode
// normalization form is applied, so composed and decomposed spellings count separately.
func (n *DefaultNormalizer) Normalize(text string) []string {
	return splitWords(foldText(text))
}

// foldText applies the character level steps. Transformers are not safe for concurrent
// use, so a fresh chain is built per call.
func foldText(text string) string {
	t := transform.Chain(
		cases.Lower(language.Und),
		runes.Remove(runes.Predicate(isStrippedPunct)),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		// The chain only fails on malformed internal state; fall back to the simple rules.
		return strings.Map(func(r rune) rune {
			if isStrippedPunct(r) {
				return -1
			}
			return r
		}, strings.ToLower(text))
	}
	return out
}
