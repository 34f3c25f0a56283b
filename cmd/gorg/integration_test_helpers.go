//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/index"
	"github.com/raphi011/gorg/internal/log"
	"github.com/raphi011/gorg/internal/output"
)

// testConfig returns a config rooted in a fresh temp directory with the
// projects directory already created.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		ProjectsDir:  filepath.Join(dir, "Projects"),
		IndexFile:    filepath.Join(dir, "index.json"),
		GitCommand:   "git",
		GitRemote:    "origin",
		MaxFindItems: 10,
	}
	if err := os.MkdirAll(cfg.ProjectsDir, 0755); err != nil {
		t.Fatalf("failed to create projects dir: %v", err)
	}
	return cfg
}

// testContext returns a context wired for a command test: the given config
// attached, diagnostics discarded and primary output captured in the
// returned buffer.
func testContext(t *testing.T, cfg *config.Config) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &out)
	ctx = config.WithConfig(ctx, cfg)
	return ctx, &out
}

// testContextWithLogs is testContext with diagnostics captured too.
func testContextWithLogs(t *testing.T, cfg *config.Config) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, logs bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(&logs, false, false))
	ctx = output.WithPrinter(ctx, &out)
	ctx = config.WithConfig(ctx, cfg)
	return ctx, &out, &logs
}

// runCommand executes a freshly constructed command with the given context
// and CLI arguments.
func runCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) error {
	t.Helper()

	if args == nil {
		// A nil argument list makes cobra fall back to os.Args, which
		// holds the test binary's flags here.
		args = []string{}
	}
	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// setupProjectRepo creates a git repository under the projects directory.
// The name is the slash separated project name (host/owner/repo).
func setupProjectRepo(t *testing.T, cfg *config.Config, name string) string {
	t.Helper()

	repoPath := filepath.Join(cfg.ProjectsDir, filepath.FromSlash(name))
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
	}
	for _, args := range cmds {
		runGitCommand(t, repoPath, args...)
	}

	return repoPath
}

// runGitCommand runs a git command and returns its output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// saveIndex writes the given entries to the configured index file.
func saveIndex(t *testing.T, cfg *config.Config, entries []index.Entry) {
	t.Helper()

	if err := index.Save(cfg.IndexFile, entries); err != nil {
		t.Fatalf("failed to save index: %v", err)
	}
}

// readIndex loads the configured index file.
func readIndex(t *testing.T, cfg *config.Config) *index.Index {
	t.Helper()

	ix, err := index.Load(cfg.IndexFile)
	if err != nil {
		t.Fatalf("failed to load index: %v", err)
	}
	return ix
}

// projectEntry builds an index entry for a project name under the
// configured projects directory.
func projectEntry(cfg *config.Config, name string) index.Entry {
	return index.Entry{
		Name: name,
		Path: filepath.Join(cfg.ProjectsDir, filepath.FromSlash(name)),
	}
}
