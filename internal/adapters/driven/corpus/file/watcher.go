package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bourse-labs/regchat/internal/logger"
)

// WatchBatches re-runs the merge whenever one of the batch files changes.
// It blocks until ctx is cancelled. The scraper rewrites batch files in
// place, so only Write, Create and Rename events on the watched paths
// trigger a merge.
func WatchBatches(ctx context.Context, batchPaths []string, outPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// fsnotify watches directories more reliably than individual files
	// that get replaced by rename.
	watched := make(map[string]bool, len(batchPaths))
	dirs := make(map[string]bool)
	for _, path := range batchPaths {
		watched[filepath.Clean(path)] = true
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	logger.Info("watching %d batch files for changes", len(batchPaths))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			count, err := MergeBatches(batchPaths, outPath)
			if err != nil {
				logger.Warn("re-merge after change to %s failed: %v", event.Name, err)
				continue
			}
			logger.Info("re-merged %d entries after change to %s", count, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("batch watcher error: %v", err)
		}
	}
}
