package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

func TestAddWords(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddWords("file1.txt", []string{"hello", "world", "hello"}))

	counts, ok := table.AllEntries().Get("file1.txt")
	require.True(t, ok)
	assert.Equal(t, 2, counts.Count("hello"))
	assert.Equal(t, 1, counts.Count("world"))
}

func TestAddWordsCaseInsensitive(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddWords("file1.txt", []string{"Hello", "world", "HELLO"}))

	counts, _ := table.AllEntries().Get("file1.txt")
	assert.Equal(t, map[string]int{"hello": 2, "world": 1}, counts.Map())
}

func TestAddWordsAccumulates(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddWords("file1.txt", []string{"hello", "world", "hello"}))
	require.NoError(t, table.AddWords("file1.txt", []string{"hello"}))

	counts, _ := table.AllEntries().Get("file1.txt")
	assert.Equal(t, 3, counts.Count("hello"))
	assert.Equal(t, 1, counts.Count("world"))
	assert.Equal(t, []string{"hello", "world"}, counts.Words())
}

func TestAddWordsNil(t *testing.T) {
	table := NewTable()
	err := table.AddWords("file1.txt", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, table.AllEntries().Len())
}

func TestAddWordsEmptyRegistersSource(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddWords("empty.txt", []string{}))

	counts, ok := table.AllEntries().Get("empty.txt")
	require.True(t, ok)
	assert.Equal(t, 0, counts.Len())
}

func TestCountOccurrences(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.AddWords("b.txt", []string{"hello", "world", "hello"}))
	require.NoError(t, table.AddWords("a.txt", []string{"world"}))
	require.NoError(t, table.AddWords("c.txt", []string{"hello"}))

	tests := []struct {
		name     string
		word     string
		expected map[string]int
		keys     []string
	}{
		{"Present in some sources", "hello", map[string]int{"b.txt": 2, "c.txt": 1}, []string{"b.txt", "c.txt"}},
		{"Uppercase query", "WORLD", map[string]int{"b.txt": 1, "a.txt": 1}, []string{"b.txt", "a.txt"}},
		{"Absent word", "nonexistent", map[string]int{}, []string{}},
		{"Empty word", "", map[string]int{}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := table.CountOccurrences(tc.word)
			assert.Equal(t, tc.expected, got.Map())
			assert.Equal(t, tc.keys, got.Keys())
		})
	}
}

func TestCountOccurrencesEmptyTable(t *testing.T) {
	table := NewTable()
	assert.Equal(t, 0, table.CountOccurrences("hello").Len())
	assert.Equal(t, 0, table.CountOccurrences("").Len())
}
