// Package source reads text sources from disk.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/pool"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

const (
	causeNotFound = "file not found"
	causeDecode   = "decoding error"
)

// FileReader reads whole files and decodes them from a configured encoding.
type FileReader struct {
	encoding encoding.Encoding
	name     string
	buffers  *pool.BufferPool
}

// NewFileReader creates a reader for the named encoding, e.g. "utf-8", "windows-1251",
// "koi8-r" or "iso-8859-1". An empty name selects DefaultEncoding.
func NewFileReader(encodingName string) (*FileReader, error) {
	enc, name, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &FileReader{
		encoding: enc,
		name:     name,
		buffers:  pool.NewBufferPool(64 * 1024),
	}, nil
}

// LookupEncoding resolves an encoding label to its implementation and canonical name.
// IANA charset names are tried first so that "iso-8859-1" means Latin-1 rather than the
// browser's windows-1252; common Python spellings such as "latin-1" and "cp1251" are
// accepted as aliases, and WHATWG labels are the fallback.
func LookupEncoding(label string) (encoding.Encoding, string, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = DefaultEncoding
	}
	if alias, ok := encodingAliases[strings.ReplaceAll(label, "_", "-")]; ok {
		label = alias
	}
	if label == asciiName {
		return ASCII, asciiName, nil
	}

	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		if name, err := ianaindex.IANA.Name(enc); err == nil {
			return enc, strings.ToLower(name), nil
		}
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc, name, nil
}

// Encoding returns the canonical name of the configured encoding.
func (r *FileReader) Encoding() string {
	return r.name
}

// ReadSource reads and decodes the whole file. The file is closed before returning.
// Failures are reported as *domain.SourceReadError.
func (r *FileReader) ReadSource(path domain.SourceID) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", readError(path, err)
	}
	defer f.Close()

	buffer := r.buffers.Get()
	defer r.buffers.Put(buffer)

	if err := readAll(transform.NewReader(f, r.decoder()), buffer); err != nil {
		return "", readError(path, err)
	}
	return string(*buffer), nil
}

// decoder returns a strict validator for UTF-8, whose standard decoder would silently
// substitute invalid bytes.
func (r *FileReader) decoder() transform.Transformer {
	if r.name == "utf-8" {
		return encoding.UTF8Validator
	}
	return r.encoding.NewDecoder()
}

func readAll(src io.Reader, buffer *[]byte) error {
	for {
		if len(*buffer) == cap(*buffer) {
			*buffer = append(*buffer, 0)[:len(*buffer)]
		}
		n, err := src.Read((*buffer)[len(*buffer):cap(*buffer)])
		*buffer = (*buffer)[:len(*buffer)+n]
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func readError(path string, err error) *domain.SourceReadError {
	cause := err.Error()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cause = causeNotFound
	case errors.Is(err, encoding.ErrInvalidUTF8), errors.Is(err, errInvalidASCII):
		cause = causeDecode
	}
	return &domain.SourceReadError{Source: path, Cause: cause, Err: err}
}
