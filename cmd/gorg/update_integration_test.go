//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gorg/internal/index"
)

// TestUpdateIndex_Basic tests indexing a projects tree.
//
// Scenario: two git repositories exist under the projects directory.
// Expected: the index lists both with their host/owner/repo names and the
// summary line reports the count.
func TestUpdateIndex_Basic(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, _, logs := testContextWithLogs(t, cfg)

	setupProjectRepo(t, cfg, "github.com/alice/alpha")
	setupProjectRepo(t, cfg, "github.com/bob/beta")

	if err := runCommand(t, ctx, newUpdateIndexCmd()); err != nil {
		t.Fatalf("update-index failed: %v", err)
	}

	ix := readIndex(t, cfg)
	if len(ix.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(ix.Entries), ix.Names())
	}
	if ix.Entries[0].Name != "github.com/alice/alpha" || ix.Entries[1].Name != "github.com/bob/beta" {
		t.Errorf("unexpected entries: %v", ix.Names())
	}
	if !strings.Contains(logs.String(), "Indexed 2 projects") {
		t.Errorf("expected summary line, got: %q", logs.String())
	}
}

// TestUpdateIndex_MissingProjectsDir tests the guard for an absent root.
//
// Scenario: the configured projects directory does not exist.
// Expected: the command fails and no index file is written.
func TestUpdateIndex_MissingProjectsDir(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.ProjectsDir = cfg.ProjectsDir + "-missing"
	ctx, _ := testContext(t, cfg)

	err := runCommand(t, ctx, newUpdateIndexCmd())
	if err == nil {
		t.Fatal("expected error for missing projects directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := index.Load(cfg.IndexFile); err == nil {
		t.Error("expected no index file to be written")
	}
}

// TestUpdateIndex_ReplacesStaleIndex tests that a rebuild is a full
// replacement.
//
// Scenario: the index still lists a project that was deleted from disk,
// and a new repository appeared since the last rebuild.
// Expected: after update-index the stale entry is gone and the new
// repository is listed.
func TestUpdateIndex_ReplacesStaleIndex(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, _ := testContext(t, cfg)

	saveIndex(t, cfg, []index.Entry{projectEntry(cfg, "github.com/old/gone")})
	setupProjectRepo(t, cfg, "github.com/new/arrival")

	if err := runCommand(t, ctx, newUpdateIndexCmd()); err != nil {
		t.Fatalf("update-index failed: %v", err)
	}

	ix := readIndex(t, cfg)
	if len(ix.Entries) != 1 || ix.Entries[0].Name != "github.com/new/arrival" {
		t.Errorf("expected only the new repository, got: %v", ix.Names())
	}
}

// TestUpdateIndex_EmptyTree tests indexing an empty projects directory.
//
// Scenario: the projects directory exists but holds no repositories.
// Expected: an empty but valid index is written, not an error.
func TestUpdateIndex_EmptyTree(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, _ := testContext(t, cfg)

	if err := runCommand(t, ctx, newUpdateIndexCmd()); err != nil {
		t.Fatalf("update-index failed: %v", err)
	}

	ix := readIndex(t, cfg)
	if len(ix.Entries) != 0 {
		t.Errorf("expected empty index, got: %v", ix.Names())
	}
}

// TestUpdateIndex_SkipsPlainDirectories tests that only git repositories
// are indexed.
//
// Scenario: the projects tree contains a repository and a plain directory
// without a .git entry.
// Expected: only the repository ends up in the index.
func TestUpdateIndex_SkipsPlainDirectories(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, _ := testContext(t, cfg)

	setupProjectRepo(t, cfg, "github.com/alice/alpha")
	plain := filepath.Join(cfg.ProjectsDir, "github.com", "alice", "notes")
	if err := os.MkdirAll(plain, 0755); err != nil {
		t.Fatalf("failed to create plain dir: %v", err)
	}

	if err := runCommand(t, ctx, newUpdateIndexCmd()); err != nil {
		t.Fatalf("update-index failed: %v", err)
	}

	ix := readIndex(t, cfg)
	if len(ix.Entries) != 1 || ix.Entries[0].Name != "github.com/alice/alpha" {
		t.Errorf("expected only the repository, got: %v", ix.Names())
	}
}
