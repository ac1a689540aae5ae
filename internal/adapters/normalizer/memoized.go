package normalizer

import (
	"math"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

// MemoizedNormalizer caches the words produced for each exact input text.
type MemoizedNormalizer struct {
	next   ports.Normalizer
	cache  *lru.Cache[string, []string]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemoizedNormalizer wraps next with a least-recently-used cache of at most size entries.
// A size of zero or less keeps every result.
func NewMemoizedNormalizer(next ports.Normalizer, size int) *MemoizedNormalizer {
	if size <= 0 {
		size = math.MaxInt
	}
	cache, err := lru.New[string, []string](size)
	if err != nil {
		// lru.New only rejects non-positive sizes.
		panic(err)
	}
	return &MemoizedNormalizer{next: next, cache: cache}
}

// Normalize returns the cached words for text, computing them on first use.
// Callers receive their own copy and may modify it.
func (m *MemoizedNormalizer) Normalize(text string) []string {
	words, ok := m.cache.Get(text)
	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
		words = m.next.Normalize(text)
		m.cache.Add(text, words)
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Len returns the number of cached texts.
func (m *MemoizedNormalizer) Len() int {
	return m.cache.Len()
}

// Stats reports cache hits and misses.
func (m *MemoizedNormalizer) Stats() (hits, misses uint64) {
	return m.hits.Load(), m.misses.Load()
}
