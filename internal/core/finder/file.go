package finder

import (
	"errors"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

// FileFinder aggregates the words of a fixed list of files.
type FileFinder struct {
	base
	files    []domain.SourceID
	encoding string
	failed   []*domain.SourceReadError
}

// NewFileFinder reads every file in order and aggregates its words. A file that cannot be
// read is logged and skipped; it contributes no entry. The returned error is non-nil only
// when the normalizer breaks its contract by returning a nil word list.
func NewFileFinder(files []string, reader ports.SourceReader, normalizer ports.Normalizer, logger ports.Logger) (*FileFinder, error) {
	f := &FileFinder{
		base:  newBase(normalizer, logger),
		files: append([]domain.SourceID(nil), files...),
	}
	if enc, ok := reader.(interface{ Encoding() string }); ok {
		f.encoding = enc.Encoding()
	}

	for _, file := range f.files {
		if err := f.load(reader, file); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *FileFinder) load(reader ports.SourceReader, file domain.SourceID) error {
	text, err := reader.ReadSource(file)
	if err != nil {
		var readErr *domain.SourceReadError
		if !errors.As(err, &readErr) {
			readErr = &domain.SourceReadError{Source: file, Cause: err.Error(), Err: err}
		}
		f.logger.Error("Error processing file", "file", file, "cause", readErr.Cause)
		f.failed = append(f.failed, readErr)
		return nil
	}
	return f.ingest(file, text)
}

// Files returns the configured file paths in order.
func (f *FileFinder) Files() []domain.SourceID {
	return append([]domain.SourceID(nil), f.files...)
}

// Encoding returns the canonical name of the encoding files were decoded with.
func (f *FileFinder) Encoding() string {
	return f.encoding
}

// Failures returns the files that could not be read.
func (f *FileFinder) Failures() []*domain.SourceReadError {
	return append([]*domain.SourceReadError(nil), f.failed...)
}
