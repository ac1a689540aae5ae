package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

func sampleTable() *domain.Table {
	table := domain.NewTable()
	b := domain.NewWordCounts()
	b.Add("привет", 2)
	b.Add("a&b", 1)
	table.Set("b.txt", b)
	a := domain.NewWordCounts()
	a.Add("hello", 3)
	table.Set("a.txt", a)
	table.Set("empty.txt", domain.NewWordCounts())
	return table
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleTable()))

	expected := "b.txt:\nпривет: 2\na&b: 1\n\na.txt:\nhello: 3\n\nempty.txt:\n\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleTable()))

	expected := `{
    "b.txt": {
        "привет": 2,
        "a&b": 1
    },
    "a.txt": {
        "hello": 3
    },
    "empty.txt": {}
}
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteUnknownFormatFallsBackToText(t *testing.T) {
	var text, other bytes.Buffer
	require.NoError(t, Write(&text, sampleTable(), domain.FormatText))
	require.NoError(t, Write(&other, sampleTable(), domain.Format("xml")))
	assert.Equal(t, text.String(), other.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, sampleTable(), domain.FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"привет": 2`)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.txt"), sampleTable(), domain.FormatText)
	assert.Error(t, err)
}
