// Package wordfinder counts normalized words per source and answers queries over the counts.
//
// A finder is built once from either a list of files or a single in-memory text. Building
// reads and normalizes every source eagerly; all later calls are read-only queries:
//
//	f, err := wordfinder.NewFileFinder([]string{"a.txt", "b.txt"}, wordfinder.WithEncoding("utf-8"))
//	if err != nil {
//		return err
//	}
//	counts := f.Find("hello")
package wordfinder

import (
	"github.com/baditaflorin/go_word_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_word_frequency/internal/adapters/normalizer"
	"github.com/baditaflorin/go_word_frequency/internal/adapters/source"
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/core/finder"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
	"github.com/baditaflorin/l"
)

// Re-exported types so callers do not import internal packages.
type (
	Finder      = ports.WordsFinder
	Logger      = ports.Logger
	Normalizer  = ports.Normalizer
	Table       = domain.Table
	WordCounts  = domain.WordCounts
	Occurrences = domain.Occurrences
	WordLists   = domain.WordLists
	Filter      = domain.Filter
	SortOrder   = domain.SortOrder
	Format      = domain.Format
)

const (
	InMemorySource   = domain.InMemorySource
	SortFrequency    = domain.SortFrequency
	SortAlphabetical = domain.SortAlphabetical
	FormatText       = domain.FormatText
	FormatJSON       = domain.FormatJSON
)

// Option defines a functional option for configuring a finder.
type Option func(*options)

type options struct {
	encoding   string
	logger     ports.Logger
	normalizer ports.Normalizer
	cacheSize  int
	noCache    bool
	lConfig    *l.Config
	logLevel   string
}

// WithEncoding sets the text encoding used to decode files. Defaults to utf-8.
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithLogger sets the logger that receives per-file read failures.
func WithLogger(log Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithL adapts an existing l.Logger.
func WithL(log l.Logger) Option {
	return func(o *options) {
		o.logger = logger.FromExisting(log)
	}
}

// WithLConfig builds a logger from an l configuration. Messages below level (DEBUG, INFO,
// WARNING, ERROR or CRITICAL) are dropped. The finder does not close the logger; it is
// flushed when the process exits.
func WithLConfig(config l.Config, level string) Option {
	return func(o *options) {
		o.lConfig = &config
		o.logLevel = level
	}
}

// WithNormalizer replaces the default normalizer. The result is still memoized unless
// WithoutCache is also given.
func WithNormalizer(n Normalizer) Option {
	return func(o *options) {
		o.normalizer = n
	}
}

// WithCacheSize bounds the normalization cache. Zero (the default) keeps every text.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithoutCache disables normalization memoization.
func WithoutCache() Option {
	return func(o *options) {
		o.noCache = true
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{encoding: source.DefaultEncoding}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil && o.lConfig != nil {
		log, err := logger.NewCustomStdLogger(*o.lConfig, logger.ParseLevel(o.logLevel))
		if err != nil {
			return o, err
		}
		o.logger = log
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.normalizer == nil {
		o.normalizer = normalizer.NewOptimizedNormalizer()
	}
	if !o.noCache {
		o.normalizer = normalizer.NewMemoizedNormalizer(o.normalizer, o.cacheSize)
	}
	return o, nil
}

// FileFinder is a finder over files on disk.
type FileFinder = finder.FileFinder

// MemoryFinder is a finder over a single in-memory text.
type MemoryFinder = finder.MemoryFinder

// NewFileFinder reads and aggregates files. Unreadable files are logged and skipped.
// An error is returned only for an unknown encoding or an unusable logger configuration.
func NewFileFinder(files []string, opts ...Option) (*FileFinder, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	reader, err := source.NewFileReader(o.encoding)
	if err != nil {
		return nil, err
	}
	return finder.NewFileFinder(files, reader, o.normalizer, o.logger)
}

// NewMemoryFinder aggregates text under InMemorySource.
func NewMemoryFinder(text string, opts ...Option) (*MemoryFinder, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return finder.NewMemoryFinder(text, o.normalizer, o.logger)
}

// Normalize splits text into normalized words with the default rules.
func Normalize(text string) []string {
	return normalizer.NewDefaultNormalizer().Normalize(text)
}

// SortResults reorders the sources of table without needing a finder.
func SortResults(table *Table, by SortOrder) *Table {
	return finder.SortTable(table, by)
}
