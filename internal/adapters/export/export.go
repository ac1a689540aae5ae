// Package export serializes frequency tables as text or JSON.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

// Write serializes table to w. Any format other than domain.FormatJSON writes text.
func Write(w io.Writer, table *domain.Table, format domain.Format) error {
	if format == domain.FormatJSON {
		return WriteJSON(w, table)
	}
	return WriteText(w, table)
}

// WriteFile creates (or truncates) path and writes table to it.
func WriteFile(path string, table *domain.Table, format domain.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, table, format); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return bw.Flush()
}

// WriteJSON writes {"source": {"word": count}} with a four space indent. Non-ASCII
// characters are written literally.
func WriteJSON(w io.Writer, table *domain.Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(table)
}

// WriteText writes one block per source: a "source:" header, a "word: count" line per
// word and a blank line.
func WriteText(w io.Writer, table *domain.Table) error {
	for source, counts := range table.All() {
		if _, err := fmt.Fprintf(w, "%s:\n", source); err != nil {
			return err
		}
		for word, count := range counts.All() {
			if _, err := fmt.Fprintf(w, "%s: %d\n", word, count); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
