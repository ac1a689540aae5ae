package ports

import (
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

// WordsFinder is the query surface shared by file-backed and in-memory finders.
type WordsFinder interface {
	// Find returns the per-source count of word. Sources without the word are omitted.
	Find(word string) *domain.Occurrences
	// CountWordOccurrences has the same contract as Find.
	CountWordOccurrences(word string) *domain.Occurrences
	// CountAllWords returns a snapshot of every source's counts.
	CountAllWords() *domain.Table
	// FilterWords returns, per source, the distinct words matching filter.
	FilterWords(filter domain.Filter) *domain.WordLists
	// SortResults reorders the sources of table.
	SortResults(table *domain.Table, by domain.SortOrder) *domain.Table
	// SaveResults writes table to path in the given format.
	SaveResults(table *domain.Table, path string, format domain.Format) error
}

// SourceReader loads the full text of a named source.
type SourceReader interface {
	ReadSource(source domain.SourceID) (string, error)
}
