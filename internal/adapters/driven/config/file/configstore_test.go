package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGetRoundTrip(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyServerAddr, ":8080"))
	require.NoError(t, store.Set(KeyLLMTimeoutSecs, 60))
	require.NoError(t, store.Set(KeyCorpusBatchFiles, []string{"a.json", "b.json"}))

	assert.Equal(t, ":8080", store.GetString(KeyServerAddr))
	assert.Equal(t, 60, store.GetInt(KeyLLMTimeoutSecs))
	assert.Equal(t, []string{"a.json", "b.json"}, store.GetStringSlice(KeyCorpusBatchFiles))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyLLMModel, "gemini-2.0-flash"))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", second.GetString(KeyLLMModel))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[llm]\nmodel = \"gemini-2.0-flash\"\ntimeout_secs = 30\n"), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", store.GetString(KeyLLMModel))
	assert.Equal(t, 30, store.GetInt(KeyLLMTimeoutSecs))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.Nil(t, store.GetStringSlice("nope"))

	_, ok := store.Get("nope")
	assert.False(t, ok)
}
