// Package file provides the file-backed corpus store and the batch merge
// utility that produces the knowledge file.
package file

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/bourse-labs/regchat/internal/core/domain"
	"github.com/bourse-labs/regchat/internal/core/ports/driven"
	"github.com/bourse-labs/regchat/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// DefaultKnowledgePath is where the merge utility writes and the store
// reads by default.
const DefaultKnowledgePath = "data/knowledge.json"

// Store reads the knowledge corpus from a JSON file.
type Store struct {
	path string
}

// NewStore creates a corpus store over the given knowledge file path.
// If path is empty, DefaultKnowledgePath is used.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultKnowledgePath
	}
	return &Store{path: path}
}

// Load reads the knowledge file. It accepts both the flattened
// [{url, content}] array written by the merge utility and a plain
// {url: content} object. A missing or unparseable file degrades to an
// empty corpus with a logged warning; Load never fails startup.
func (s *Store) Load() ([]domain.CorpusEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.Warn("knowledge file %s could not be read: %v", s.path, err)
		return nil, nil
	}

	entries, err := decodeEntries(data)
	if err != nil {
		logger.Warn("knowledge file %s could not be parsed: %v", s.path, err)
		return nil, nil
	}

	logger.Info("knowledge base loaded: %d documents from %s", len(entries), s.path)
	return entries, nil
}

// Path returns the knowledge file path.
func (s *Store) Path() string {
	return s.path
}

// decodeEntries tries the flattened array shape first, then falls back to
// the object shape.
func decodeEntries(data []byte) ([]domain.CorpusEntry, error) {
	var entries []domain.CorpusEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, nil
	}

	var byURL map[string]string
	if err := json.Unmarshal(data, &byURL); err != nil {
		return nil, err
	}
	return flattenObject(byURL), nil
}

// flattenObject converts a {url: content} map into ordered entries.
// Keys are sorted so the prompt layout is stable across runs.
func flattenObject(byURL map[string]string) []domain.CorpusEntry {
	urls := make([]string, 0, len(byURL))
	for u := range byURL {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	entries := make([]domain.CorpusEntry, len(urls))
	for i, u := range urls {
		entries[i] = domain.CorpusEntry{SourceID: u, Text: byURL[u]}
	}
	return entries
}
