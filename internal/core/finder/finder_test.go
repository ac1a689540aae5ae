package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_word_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_word_frequency/internal/adapters/normalizer"
	"github.com/baditaflorin/go_word_frequency/internal/adapters/source"
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

const sampleText = "Hello world! This is a test. Hello again."

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (r *recordingLogger) Debug(string, ...interface{}) {}
func (r *recordingLogger) Info(string, ...interface{})  {}
func (r *recordingLogger) Warn(string, ...interface{})  {}
func (r *recordingLogger) Error(msg string, kv ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprint(append([]interface{}{msg}, kv...)...))
}
func (r *recordingLogger) Close() error { return nil }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFileFinder(t *testing.T, log ports.Logger, files ...string) *FileFinder {
	t.Helper()
	reader, err := source.NewFileReader("utf-8")
	require.NoError(t, err)
	f, err := NewFileFinder(files, reader, normalizer.NewDefaultNormalizer(), log)
	require.NoError(t, err)
	return f
}

func TestFileFinderFind(t *testing.T) {
	path := writeFile(t, t.TempDir(), "test_file.txt", sampleText)
	f := newFileFinder(t, logger.NewNop(), path)

	assert.Equal(t, map[string]int{path: 2}, f.Find("hello").Map())
	assert.Equal(t, map[string]int{path: 2}, f.Find("Hello").Map())
	assert.Equal(t, map[string]int{path: 1}, f.CountWordOccurrences("test").Map())
	assert.Equal(t, 0, f.Find("nonexistent").Len())
	assert.Equal(t, 0, f.Find("").Len())
	assert.Equal(t, []string{path}, f.Files())
	assert.Equal(t, "utf-8", f.Encoding())
}

func TestFileFinderFilterWords(t *testing.T) {
	path := writeFile(t, t.TempDir(), "test_file.txt", sampleText)
	f := newFileFinder(t, logger.NewNop(), path)

	words, ok := f.FilterWords(domain.Filter{MinLength: 4}).Get(path)
	require.True(t, ok)
	assert.Equal(t, []string{"hello", "world", "this", "test", "again"}, words)
	assert.NotContains(t, words, "is")
	assert.NotContains(t, words, "a")

	words, _ = f.FilterWords(domain.Filter{MinLength: 0, Prefix: "t"}).Get(path)
	assert.Equal(t, []string{"this", "test"}, words)

	words, _ = f.FilterWords(domain.Filter{Prefix: "T"}).Get(path)
	assert.Empty(t, words, "prefix matching is case-sensitive against lowercased words")

	words, _ = f.FilterWords(domain.Filter{}).Get(path)
	assert.Len(t, words, 7)
}

func TestFilterWordsCountsRunes(t *testing.T) {
	f, err := NewMemoryFinder("мир привет", normalizer.NewDefaultNormalizer(), logger.NewNop())
	require.NoError(t, err)

	words, _ := f.FilterWords(domain.Filter{MinLength: 4}).Get(domain.InMemorySource)
	assert.Equal(t, []string{"привет"}, words)
}

func TestFileFinderEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty_file.txt", "")
	f := newFileFinder(t, logger.NewNop(), path)

	assert.Equal(t, 0, f.Find("hello").Len())
	counts, ok := f.CountAllWords().Get(path)
	require.True(t, ok, "an empty file is still a source")
	assert.Equal(t, 0, counts.Len())
}

func TestFileFinderOnlySpecialCharacters(t *testing.T) {
	path := writeFile(t, t.TempDir(), "special.txt", "!!! @@@ ###")
	f := newFileFinder(t, logger.NewNop(), path)
	assert.Equal(t, 0, f.Find("nonexistent").Len())
}

func TestFileFinderMissingFileIsIsolated(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "real.txt", sampleText)
	missing := filepath.Join(dir, "nonexistent_file.txt")
	log := &recordingLogger{}

	f := newFileFinder(t, log, missing, path)

	assert.Equal(t, map[string]int{path: 2}, f.Find("hello").Map())
	assert.Equal(t, []string{path}, f.CountAllWords().Keys())
	require.Len(t, f.Failures(), 1)
	assert.Equal(t, missing, f.Failures()[0].Source)
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], missing)
	assert.Contains(t, log.errors[0], "file not found")
}

func TestFileFinderDecodeErrorIsIsolated(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe, 'h', 'i'}, 0o644))
	good := writeFile(t, dir, "good.txt", "hi there")
	log := &recordingLogger{}

	f := newFileFinder(t, log, bad, good)

	assert.Equal(t, map[string]int{good: 1}, f.Find("hi").Map())
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "decoding error")
}

func TestFileFinderLargeFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "large_file.txt", strings.Repeat("hello ", 10000))
	f := newFileFinder(t, logger.NewNop(), path)
	assert.Equal(t, map[string]int{path: 10000}, f.Find("hello").Map())
}

func TestFileFinderMultipleFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.txt", "hello hello world")
	a := writeFile(t, dir, "a.txt", "hello")

	f := newFileFinder(t, logger.NewNop(), b, a)
	got := f.Find("HELLO")
	assert.Equal(t, []string{b, a}, got.Keys())
	assert.Equal(t, map[string]int{b: 2, a: 1}, got.Map())
}

func TestFileFinderSameFileTwiceAccumulates(t *testing.T) {
	path := writeFile(t, t.TempDir(), "twice.txt", "hello world")
	f := newFileFinder(t, logger.NewNop(), path, path)
	assert.Equal(t, map[string]int{path: 2}, f.Find("hello").Map())
}

func TestCountAllWordsIsSnapshot(t *testing.T) {
	f, err := NewMemoryFinder("hello world hello", normalizer.NewDefaultNormalizer(), logger.NewNop())
	require.NoError(t, err)

	snapshot := f.CountAllWords()
	counts, _ := snapshot.Get(domain.InMemorySource)
	counts.Add("hello", 10)

	assert.Equal(t, map[string]int{domain.InMemorySource: 2}, f.Find("hello").Map())
}

func TestMemoryFinder(t *testing.T) {
	f, err := NewMemoryFinder("Hello, мир! Привет, world! hello", normalizer.NewDefaultNormalizer(), logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{domain.InMemorySource: 2}, f.Find("HELLO").Map())
	assert.Equal(t, map[string]int{domain.InMemorySource: 1}, f.CountWordOccurrences("Привет").Map())

	all := f.CountAllWords()
	require.Equal(t, []string{domain.InMemorySource}, all.Keys())
	counts, _ := all.Get(domain.InMemorySource)
	assert.Equal(t, []string{"hello", "мир", "привет", "world"}, counts.Words())

	filtered := f.FilterWords(domain.Filter{Prefix: "п"})
	assert.Equal(t, map[string][]string{domain.InMemorySource: {"привет"}}, filtered.Map())
}

func TestMemoryFinderEmptyText(t *testing.T) {
	f, err := NewMemoryFinder("", normalizer.NewDefaultNormalizer(), logger.NewNop())
	require.NoError(t, err)

	filtered := f.FilterWords(domain.Filter{})
	words, ok := filtered.Get(domain.InMemorySource)
	assert.True(t, ok)
	assert.Empty(t, words)
}

type nilNormalizer struct{}

func (nilNormalizer) Normalize(string) []string { return nil }

func TestInvalidInputPropagates(t *testing.T) {
	_, err := NewMemoryFinder("text", nilNormalizer{}, logger.NewNop())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveResults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "input.txt", "b a b")
	f := newFileFinder(t, logger.NewNop(), path)

	out := filepath.Join(dir, "out.txt")
	require.NoError(t, f.SaveResults(f.CountAllWords(), out, domain.FormatText))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, path+":\nb: 2\na: 1\n\n", string(data))

	err = f.SaveResults(f.CountAllWords(), filepath.Join(dir, "missing", "out.txt"), domain.FormatJSON)
	assert.Error(t, err)
}
