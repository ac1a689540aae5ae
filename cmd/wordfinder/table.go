package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

// sourceRow is one line of per-source output. words is nil for plain occurrence counts.
type sourceRow struct {
	source string
	count  int
	words  []string
}

// renderSourceTable draws rows as Source | countHeader, plus a Words column when withWords
// is set.
func renderSourceTable(countHeader string, rows []sourceRow, withWords bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"Source", countHeader}
	configs := []table.ColumnConfig{
		{Number: 1, WidthMax: 60},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	}
	if withWords {
		header = append(header, "Words")
		configs = append(configs, table.ColumnConfig{Number: 3, WidthMax: 80})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, r := range rows {
		row := table.Row{r.source, r.count}
		if withWords {
			row = append(row, strings.Join(r.words, ", "))
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderOccurrences formats per-source counts as a table on a terminal, or as
// "source: count" lines otherwise.
func renderOccurrences(w io.Writer, occ *domain.Occurrences) string {
	if occ.Len() == 0 {
		return "(no matches)"
	}
	if isTerminal(w) {
		rows := make([]sourceRow, 0, occ.Len())
		for source, count := range occ.All() {
			rows = append(rows, sourceRow{source: source, count: count})
		}
		return renderSourceTable("Count", rows, false)
	}
	lines := make([]string, 0, occ.Len())
	for source, count := range occ.All() {
		lines = append(lines, fmt.Sprintf("%s: %d", source, count))
	}
	return strings.Join(lines, "\n")
}

// renderWordLists formats per-source word lists.
func renderWordLists(w io.Writer, lists *domain.WordLists) string {
	if lists.Len() == 0 {
		return "(no sources)"
	}
	if isTerminal(w) {
		rows := make([]sourceRow, 0, lists.Len())
		for source, words := range lists.All() {
			rows = append(rows, sourceRow{source: source, count: len(words), words: words})
		}
		return renderSourceTable("Matches", rows, true)
	}
	lines := make([]string, 0, lists.Len())
	for source, words := range lists.All() {
		lines = append(lines, fmt.Sprintf("%s: %s", source, strings.Join(words, ", ")))
	}
	return strings.Join(lines, "\n")
}
