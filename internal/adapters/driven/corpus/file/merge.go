package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bourse-labs/regchat/internal/core/domain"
	"github.com/bourse-labs/regchat/internal/logger"
)

// DefaultBatchFiles are the scraped batch files the merge utility looks
// for when no explicit list is given.
var DefaultBatchFiles = []string{
	"scraped_batch_1.json",
	"scraped_batch_2.json",
	"scraped_batch_3.json",
	"scraped_batch_4.json",
}

// MergeBatches flattens scraped batch files into a single knowledge file.
//
// Each batch is a JSON object mapping source URL to scraped content.
// Unreadable or unparseable batches are skipped with a notice rather than
// failing the merge. Overlapping keys across batches are all preserved as
// separate entries; there is no deduplication. Returns the number of
// entries written.
func MergeBatches(batchPaths []string, outPath string) (int, error) {
	if outPath == "" {
		outPath = DefaultKnowledgePath
	}

	all := make([]domain.CorpusEntry, 0)
	for _, path := range batchPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			continue
		}

		var batch map[string]string
		if err := json.Unmarshal(data, &batch); err != nil {
			logger.Warn("skipping %s: %v", path, err)
			continue
		}

		all = append(all, flattenObject(batch)...)
		logger.Debug("merged %s: %d entries", path, len(batch))
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal knowledge file: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write knowledge file: %w", err)
	}

	return len(all), nil
}
