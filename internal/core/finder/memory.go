package finder

import (
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

// MemoryFinder aggregates the words of a single in-memory text under domain.InMemorySource.
type MemoryFinder struct {
	base
}

// NewMemoryFinder normalizes and aggregates text.
func NewMemoryFinder(text string, normalizer ports.Normalizer, logger ports.Logger) (*MemoryFinder, error) {
	m := &MemoryFinder{base: newBase(normalizer, logger)}
	if err := m.ingest(domain.InMemorySource, text); err != nil {
		return nil, err
	}
	return m, nil
}
