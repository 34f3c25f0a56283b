// Package scan discovers git repositories under the projects root.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/gorg/internal/index"
	"github.com/raphi011/gorg/internal/log"
)

// Repos walks root depth-first and returns the absolute path of every git
// repository below it, in lexical walk order. Repositories are not descended
// into, so a checkout vendored inside another repo stays hidden. Unreadable
// subdirectories are skipped with a verbose note, an unreadable root is an
// error.
func Repos(ctx context.Context, root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read projects dir: %w", err)
	}

	var repos []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := walk(ctx, filepath.Join(abs, e.Name()), &repos); err != nil {
			return nil, err
		}
	}
	return repos, nil
}

// Entries scans root and converts each repository path into an index entry.
// The entry name is the path relative to root with forward slashes, which
// for a remote-shaped layout reads host/owner/repo.
func Entries(ctx context.Context, root string) ([]index.Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}

	repos, err := Repos(ctx, abs)
	if err != nil {
		return nil, err
	}

	entries := make([]index.Entry, 0, len(repos))
	for _, path := range repos {
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil, fmt.Errorf("relativize %s: %w", path, err)
		}
		entries = append(entries, index.Entry{Name: filepath.ToSlash(rel), Path: path})
	}
	return entries, nil
}

func walk(ctx context.Context, dir string, out *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if IsRepo(dir) {
		*out = append(*out, dir)
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.FromContext(ctx).Debug("skipping directory", "dir", dir, "error", err.Error())
		return nil
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := walk(ctx, filepath.Join(dir, e.Name()), out); err != nil {
			return err
		}
	}
	return nil
}

// IsRepo checks if a path is a git repository (has .git dir or file)
func IsRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	// .git can be a directory (regular clone) or file (linked worktree)
	return info.IsDir() || info.Mode().IsRegular()
}
