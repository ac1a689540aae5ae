// Package finder builds queryable word-frequency views over one or more text sources.
package finder

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_word_frequency/internal/adapters/export"
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/core/frequency"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

// base holds the query logic shared by FileFinder and MemoryFinder. It owns the table.
type base struct {
	table      *frequency.Table
	normalizer ports.Normalizer
	logger     ports.Logger
}

func newBase(normalizer ports.Normalizer, logger ports.Logger) base {
	return base{
		table:      frequency.NewTable(),
		normalizer: normalizer,
		logger:     logger,
	}
}

// ingest normalizes text and adds its words under source.
func (b *base) ingest(source domain.SourceID, text string) error {
	words := b.normalizer.Normalize(text)
	if err := b.table.AddWords(source, words); err != nil {
		return err
	}
	b.logger.Debug("Source aggregated", "source", source, "words", len(words))
	return nil
}

// Find returns the per-source count of word, case-insensitively.
func (b *base) Find(word string) *domain.Occurrences {
	return b.table.CountOccurrences(word)
}

// CountWordOccurrences has the same contract as Find.
func (b *base) CountWordOccurrences(word string) *domain.Occurrences {
	return b.table.CountOccurrences(word)
}

// CountAllWords returns a copy of every source's counts in source order.
func (b *base) CountAllWords() *domain.Table {
	return domain.CloneTable(b.table.AllEntries())
}

// FilterWords returns the distinct words of each source that have at least
// filter.MinLength characters and start with filter.Prefix.
func (b *base) FilterWords(filter domain.Filter) *domain.WordLists {
	result := domain.NewOrdered[[]string]()
	for source, counts := range b.table.AllEntries().All() {
		words := make([]string, 0, counts.Len())
		for word := range counts.All() {
			if utf8.RuneCountInString(word) >= filter.MinLength && strings.HasPrefix(word, filter.Prefix) {
				words = append(words, word)
			}
		}
		result.Set(source, words)
	}
	return result
}

// SortResults reorders the sources of table. SortFrequency orders by total count,
// largest first, keeping the prior order on ties. SortAlphabetical orders by SourceID.
// Any other value returns table unchanged.
func (b *base) SortResults(table *domain.Table, by domain.SortOrder) *domain.Table {
	return SortTable(table, by)
}

// SaveResults writes table to path in format.
func (b *base) SaveResults(table *domain.Table, path string, format domain.Format) error {
	if err := export.WriteFile(path, table, format); err != nil {
		b.logger.Error("Failed to save results", "output", path, "error", err)
		return err
	}
	b.logger.Info("Results saved", "output", path, "format", string(format), "sources", table.Len())
	return nil
}

// SortTable is the transform behind SortResults.
func SortTable(table *domain.Table, by domain.SortOrder) *domain.Table {
	keys := table.Keys()
	switch by {
	case domain.SortFrequency:
		totals := make(map[domain.SourceID]int, len(keys))
		for source, counts := range table.All() {
			totals[source] = counts.Total()
		}
		slices.SortStableFunc(keys, func(a, b domain.SourceID) int {
			return cmp.Compare(totals[b], totals[a])
		})
	case domain.SortAlphabetical:
		slices.SortStableFunc(keys, strings.Compare)
	default:
		return table
	}
	return table.Reordered(keys)
}
