package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/index"
	"github.com/raphi011/gorg/internal/log"
	"github.com/raphi011/gorg/internal/scan"
)

// rebuildLockTimeout bounds how long a rebuild waits for a concurrent one.
const rebuildLockTimeout = 5 * time.Second

func newUpdateIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update-index",
		Short:   "Rescan the projects directory and rewrite the index",
		GroupID: GroupIndex,
		Args:    cobra.NoArgs,
		Long: `Scan the projects directory for git repositories and update the index file.

The previous index is replaced wholesale: repositories that disappeared
from disk drop out, new ones are picked up. The index file is written
atomically, so a failed scan leaves the old index in place.`,
		Example: `  gorg update-index      # Rescan ~/Projects and rewrite the index`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			count, err := rebuildIndex(ctx, cfg)
			if err != nil {
				return err
			}

			l.Printf("Indexed %d projects in %s\n", count, cfg.ProjectsDir)
			return nil
		},
	}

	return cmd
}

// rebuildIndex scans the projects directory and atomically replaces the
// index file with the result. The rebuild lock serializes concurrent
// invocations, so two rebuilds never race on the same index file.
func rebuildIndex(ctx context.Context, cfg *config.Config) (int, error) {
	if _, err := os.Stat(cfg.ProjectsDir); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("projects directory does not exist: %s", cfg.ProjectsDir)
		}
		return 0, fmt.Errorf("projects directory not accessible: %w", err)
	}

	unlock, err := acquireRebuildLock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	entries, err := scan.Entries(ctx, cfg.ProjectsDir)
	if err != nil {
		return 0, fmt.Errorf("scan projects: %w", err)
	}
	if err := index.Save(cfg.IndexFile, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// acquireRebuildLock obtains the per-user index rebuild lock, retrying
// until rebuildLockTimeout when another rebuild holds it.
func acquireRebuildLock() (func(), error) {
	lockPath, err := rebuildLockPath()
	if err != nil {
		return nil, err
	}

	fl := flock.New(lockPath)
	deadline := time.Now().Add(rebuildLockTimeout)
	for {
		locked, err := fl.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire rebuild lock: %w", err)
		}
		if locked {
			return func() { _ = fl.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another index rebuild is in progress (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// rebuildLockPath determines the per-user lock file location.
func rebuildLockPath() (string, error) {
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		dir := filepath.Join(cacheDir, "gorg")
		if err := os.MkdirAll(dir, 0755); err == nil {
			return filepath.Join(dir, "rebuild.lock"), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dir := filepath.Join(home, ".gorg")
		if err := os.MkdirAll(dir, 0755); err == nil {
			return filepath.Join(dir, "rebuild.lock"), nil
		}
	}
	return "", errors.New("cannot determine writable lock directory")
}
