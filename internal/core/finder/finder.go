package finder

import "github.com/baditaflorin/go_word_frequency/internal/ports"

var (
	_ ports.WordsFinder = (*FileFinder)(nil)
	_ ports.WordsFinder = (*MemoryFinder)(nil)
)
