package domain

import (
	"fmt"
	"strings"
)

// SourceID identifies a word-count source: a file path or InMemorySource.
type SourceID = string

// InMemorySource is the SourceID used for text supplied directly rather than read from disk.
const InMemorySource SourceID = "in_memory_text"

// Occurrences maps each source to the number of times a word occurs in it.
type Occurrences = Ordered[int]

// WordLists maps each source to a list of distinct words.
type WordLists = Ordered[[]string]

// Table is the per-source word frequency aggregate.
type Table = Ordered[*WordCounts]

// NewTable returns an empty table.
func NewTable() *Table {
	return NewOrdered[*WordCounts]()
}

// Filter selects words by length and prefix. A zero Filter matches every word.
type Filter struct {
	// MinLength is the minimum number of characters (runes) a word must have.
	MinLength int
	// Prefix, when non-empty, is a case-sensitive prefix the word must start with.
	Prefix string
}

// SortOrder selects how sources are ordered when results are sorted.
type SortOrder string

const (
	// SortNone keeps the table's existing order.
	SortNone SortOrder = ""
	// SortFrequency orders sources by total word count, largest first.
	SortFrequency SortOrder = "frequency"
	// SortAlphabetical orders sources by SourceID.
	SortAlphabetical SortOrder = "alphabetical"
)

// ParseSortOrder validates a user-supplied sort order.
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(value))) {
	case SortNone:
		return SortNone, nil
	case SortFrequency:
		return SortFrequency, nil
	case SortAlphabetical:
		return SortAlphabetical, nil
	}
	return SortNone, fmt.Errorf("unknown sort order %q (expected frequency or alphabetical)", value)
}

// Format selects the serialized layout used when results are saved.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied output format. An empty value means text.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q (expected text or json)", value)
}
