// Package domain contains the core business types for regchat.
package domain

// CorpusEntry is one (source, text) pair from the regulations knowledge
// corpus. Entries are immutable once loaded; the collection order only
// affects prompt layout.
type CorpusEntry struct {
	// SourceID identifies where the text was scraped from, usually a URL.
	SourceID string `json:"url"`

	// Text is the scraped content for the source.
	Text string `json:"content"`
}
