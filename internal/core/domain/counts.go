package domain

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// WordCounts is one source's word → count mapping. Words enumerate in first-seen order
// and every stored count is at least 1.
type WordCounts struct {
	counts *orderedmap.OrderedMap[string, int]
}

// NewWordCounts returns an empty counter.
func NewWordCounts() *WordCounts {
	return &WordCounts{counts: newPairs[string, int]()}
}

// Add increments the count for word by n. Non-positive n is ignored.
func (w *WordCounts) Add(word string, n int) {
	if n <= 0 {
		return
	}
	current, _ := w.counts.Get(word)
	w.counts.Set(word, current+n)
}

// Count returns the number of occurrences of word, or 0 when absent.
func (w *WordCounts) Count(word string) int {
	if w == nil {
		return 0
	}
	c, _ := w.counts.Get(word)
	return c
}

// Len returns the number of distinct words.
func (w *WordCounts) Len() int {
	if w == nil {
		return 0
	}
	return w.counts.Len()
}

// Total returns the sum of all counts.
func (w *WordCounts) Total() int {
	total := 0
	for _, c := range w.All() {
		total += c
	}
	return total
}

// Words returns the distinct words in enumeration order.
func (w *WordCounts) Words() []string {
	if w == nil {
		return nil
	}
	out := make([]string, 0, w.counts.Len())
	for word := range w.All() {
		out = append(out, word)
	}
	return out
}

// All iterates over word/count pairs in enumeration order.
func (w *WordCounts) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		if w == nil {
			return
		}
		for pair := w.counts.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Map returns the counts as a plain map.
func (w *WordCounts) Map() map[string]int {
	out := make(map[string]int, w.Len())
	for word, c := range w.All() {
		out[word] = c
	}
	return out
}

// Clone returns an independent copy.
func (w *WordCounts) Clone() *WordCounts {
	out := NewWordCounts()
	for word, c := range w.All() {
		out.Add(word, c)
	}
	return out
}

// MarshalJSON encodes the counts as a JSON object in enumeration order.
func (w *WordCounts) MarshalJSON() ([]byte, error) {
	if w == nil {
		return []byte("{}"), nil
	}
	return w.counts.MarshalJSON()
}

// CloneTable returns a deep copy of t.
func CloneTable(t *Table) *Table {
	out := NewTable()
	for src, counts := range t.All() {
		out.Set(src, counts.Clone())
	}
	return out
}
