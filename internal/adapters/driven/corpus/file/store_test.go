package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bourse-labs/regchat/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FlattenedArray(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "knowledge.json", `[
		{"url": "https://nse.example/fees", "content": "Listing fee is 5000 INR."},
		{"url": "https://nse.example/rules", "content": "Members must register."}
	]`)

	entries, err := NewStore(path).Load()

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.CorpusEntry{
		SourceID: "https://nse.example/fees",
		Text:     "Listing fee is 5000 INR.",
	}, entries[0])
}

func TestLoad_ObjectShape(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "knowledge.json", `{
		"https://nse.example/b": "second",
		"https://nse.example/a": "first"
	}`)

	entries, err := NewStore(path).Load()

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Object keys are sorted for a stable prompt layout.
	assert.Equal(t, "https://nse.example/a", entries[0].SourceID)
	assert.Equal(t, "first", entries[0].Text)
	assert.Equal(t, "https://nse.example/b", entries[1].SourceID)
}

func TestLoad_MissingFileDegrades(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	entries, err := store.Load()

	require.NoError(t, err, "a missing knowledge file must not fail startup")
	assert.Empty(t, entries)
}

func TestLoad_UnparseableFileDegrades(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "knowledge.json", "{not json at all")

	entries, err := NewStore(path).Load()

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultKnowledgePath, NewStore("").Path())
}
