package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_word_frequency/internal/pool"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

// OptimizedNormalizer produces the same words as DefaultNormalizer but handles
// ASCII-only input with a lookup table and a pooled buffer.
type OptimizedNormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiTable [128]byte

	bytePool *pool.BufferPool
	fallback ports.Normalizer
}

const (
	asciiKeep byte = iota
	asciiDrop
	asciiLower
)

// NewOptimizedNormalizer creates a new optimized normalizer
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(8192),
		fallback: NewDefaultNormalizer(),
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		switch {
		case isStrippedPunct(r):
			n.asciiTable[i] = asciiDrop
		case unicode.IsUpper(r):
			n.asciiTable[i] = asciiLower
		default:
			n.asciiTable[i] = asciiKeep
		}
	}

	return n
}

// Normalize returns the normalized words of text.
func (n *OptimizedNormalizer) Normalize(text string) []string {
	if len(text) == 0 {
		return []string{}
	}

	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			return n.fallback.Normalize(text)
		}
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	for i := 0; i < len(text); i++ {
		b := text[i]
		switch n.asciiTable[b] {
		case asciiKeep:
			*buffer = append(*buffer, b)
		case asciiLower:
			*buffer = append(*buffer, b+('a'-'A'))
		}
	}

	return splitWords(string(*buffer))
}
