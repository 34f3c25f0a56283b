//go:build integration

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/raphi011/gorg/internal/index"
)

// TestFind_SingleMatchFastPath tests the non-interactive shortcut.
//
// Scenario: the initial query matches exactly one project.
// Expected: the name is printed without opening the picker, so this works
// even without a terminal.
func TestFind_SingleMatchFastPath(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, out := testContext(t, cfg)
	saveIndex(t, cfg, []index.Entry{
		projectEntry(cfg, "github.com/alice/alpha"),
		projectEntry(cfg, "github.com/bob/beta"),
	})

	if err := runCommand(t, ctx, newFindCmd(), "alpha"); err != nil {
		t.Fatalf("find failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "github.com/alice/alpha" {
		t.Errorf("expected project name, got %q", got)
	}
}

// TestFind_FullPathFlag tests the -f flag on the fast path.
//
// Scenario: the query matches exactly one project and -f is set.
// Expected: the absolute path is printed instead of the name.
func TestFind_FullPathFlag(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, out := testContext(t, cfg)
	entry := projectEntry(cfg, "github.com/alice/alpha")
	saveIndex(t, cfg, []index.Entry{
		entry,
		projectEntry(cfg, "github.com/bob/beta"),
	})

	if err := runCommand(t, ctx, newFindCmd(), "-f", "alpha"); err != nil {
		t.Fatalf("find failed: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != entry.Path {
		t.Errorf("expected path %q, got %q", entry.Path, got)
	}
}

// TestFind_EmptyIndex tests find against an index with no projects.
//
// Scenario: the index exists but lists nothing.
// Expected: find fails with a hint to run update-index instead of opening
// an empty picker.
func TestFind_EmptyIndex(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, _ := testContext(t, cfg)
	saveIndex(t, cfg, nil)

	err := runCommand(t, ctx, newFindCmd())
	if err == nil {
		t.Fatal("expected error for empty index")
	}
	if !strings.Contains(err.Error(), "no projects indexed") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestFind_MissingIndex tests find when no index has been built.
//
// Scenario: the index file does not exist.
// Expected: find fails and the error points at update-index.
func TestFind_MissingIndex(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, _ := testContext(t, cfg)

	err := runCommand(t, ctx, newFindCmd())
	if err == nil {
		t.Fatal("expected error for missing index")
	}
	if !strings.Contains(err.Error(), "update-index") {
		t.Errorf("expected hint to run update-index, got: %v", err)
	}
}

// TestFind_NoTerminal tests the guard for piped stdin.
//
// Scenario: several projects match, so find would have to open the picker,
// but stdin is not a terminal.
// Expected: find fails with a hint to use list instead of hanging.
func TestFind_NoTerminal(t *testing.T) {
	if isTerminal(os.Stdin) {
		t.Skip("stdin is a terminal, the picker would open")
	}
	t.Parallel()

	cfg := testConfig(t)
	ctx, _ := testContext(t, cfg)
	saveIndex(t, cfg, []index.Entry{
		projectEntry(cfg, "github.com/alice/alpha"),
		projectEntry(cfg, "github.com/bob/beta"),
	})

	err := runCommand(t, ctx, newFindCmd())
	if err == nil {
		t.Fatal("expected error without a terminal")
	}
	if !strings.Contains(err.Error(), "terminal") {
		t.Errorf("unexpected error: %v", err)
	}
}
