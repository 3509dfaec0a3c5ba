package driven

import "github.com/bourse-labs/regchat/internal/core/domain"

// CorpusStore loads the knowledge corpus from its backing storage.
type CorpusStore interface {
	// Load reads every corpus entry. It is invoked once per process
	// lifetime, not per request. Implementations degrade gracefully: a
	// missing or unparseable backing file yields an empty corpus and a
	// logged warning, never a failure that prevents startup.
	Load() ([]domain.CorpusEntry, error)
}
