// Package index persists the mapping from project names to repository paths.
//
// The index is a snapshot: it is rebuilt from a full scan of the projects
// root and replaced wholesale, never patched in place. Loading a missing or
// damaged index is a hard error so stale state is surfaced instead of
// silently treated as empty.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrUnavailable marks a missing, unreadable or malformed index file.
	ErrUnavailable = errors.New("project index unavailable")
	// ErrWrite marks a failed index write. The previous index file is
	// left untouched.
	ErrWrite = errors.New("project index write failed")
)

// Entry is one discovered repository.
type Entry struct {
	Name string `json:"name"` // Display name, slash separated (host/owner/repo)
	Path string `json:"path"` // Absolute path to the repository root
}

// Index holds all indexed repositories in scan order.
type Index struct {
	Entries []Entry `json:"entries"`
}

// Load reads the index from path. Any malformed record is a hard failure,
// not something to skip: a damaged index means the user has to rebuild it.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var ix Index
	if err := json.Unmarshal(data, &ix); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrUnavailable, path, err)
	}

	for i, e := range ix.Entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: %s: entry %d has no name", ErrUnavailable, path, i)
		}
		if !filepath.IsAbs(e.Path) {
			return nil, fmt.Errorf("%w: %s: entry %d (%s) has no absolute path", ErrUnavailable, path, i, e.Name)
		}
	}

	return &ix, nil
}

// Save atomically replaces the index at path with the given entries. The new
// content goes to a temp file first and is renamed into place, so a failed
// write never clobbers the previous index.
func Save(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(Index{Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // Clean up temp file on failure
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Names returns all entry names in index order. This is the candidate set
// handed to the matcher.
func (ix *Index) Names() []string {
	names := make([]string, len(ix.Entries))
	for i, e := range ix.Entries {
		names[i] = e.Name
	}
	return names
}

// FindByName looks up an entry by its exact name.
func (ix *Index) FindByName(name string) (Entry, error) {
	for _, e := range ix.Entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("project not indexed: %s", name)
}
