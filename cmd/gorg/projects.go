package main

import (
	"fmt"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/index"
)

// loadIndex reads the project index for the configured location. A missing
// or damaged index is a hard error pointing at update-index, never silently
// treated as empty.
func loadIndex(cfg *config.Config) (*index.Index, error) {
	ix, err := index.Load(cfg.IndexFile)
	if err != nil {
		return nil, fmt.Errorf("%w\nRun 'gorg update-index' to rebuild it", err)
	}
	return ix, nil
}

// projectLine formats one entry for output, either the short name or the
// absolute path.
func projectLine(e index.Entry, fullPath bool) string {
	if fullPath {
		return e.Path
	}
	return e.Name
}
