// Package frequency aggregates word counts per source.
package frequency

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

// Table maps each source to its word counts. Sources keep insertion order and counts
// only ever grow.
type Table struct {
	entries *domain.Table
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{entries: domain.NewTable()}
}

// AddWords increments the counts of words for source. Words are lowercased before counting.
// A nil slice is rejected with domain.ErrInvalidInput; an empty slice registers the source.
func (t *Table) AddWords(source domain.SourceID, words []string) error {
	if words == nil {
		return fmt.Errorf("add words for %s: nil word list: %w", source, domain.ErrInvalidInput)
	}
	counts, ok := t.entries.Get(source)
	if !ok {
		counts = domain.NewWordCounts()
		t.entries.Set(source, counts)
	}
	lower := cases.Lower(language.Und)
	for _, w := range words {
		counts.Add(lower.String(w), 1)
	}
	return nil
}

// AllEntries returns the full table in source order. The result is shared with the
// table and must be treated as read-only.
func (t *Table) AllEntries() *domain.Table {
	return t.entries
}

// CountOccurrences returns, for each source containing word, how often it occurs.
// The lookup is case-insensitive and sources with no occurrence are omitted.
func (t *Table) CountOccurrences(word string) *domain.Occurrences {
	result := domain.NewOrdered[int]()
	if word == "" {
		return result
	}
	word = cases.Lower(language.Und).String(word)
	for source, counts := range t.entries.All() {
		if c := counts.Count(word); c > 0 {
			result.Set(source, c)
		}
	}
	return result
}
