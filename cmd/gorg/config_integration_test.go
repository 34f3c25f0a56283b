//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfigInit_Stdout tests printing the template instead of writing it.
//
// Scenario: config init runs with -s.
// Expected: the commented template goes to stdout and nothing is written.
func TestConfigInit_Stdout(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, out := testContext(t, cfg)

	if err := runCommand(t, ctx, newConfigCmd(), "init", "-s"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	for _, key := range []string{"projects_dir", "index_file", "git_command", "git_remote", "max_find_items"} {
		if !strings.Contains(out.String(), key) {
			t.Errorf("expected template to mention %s, got: %q", key, out.String())
		}
	}
}

// TestConfigInit_CreatesFile tests writing the config template.
//
// Scenario: GORG_CONFIG points at a fresh location and config init runs,
// then runs again without and with -f.
// Expected: the file is created once, the second run refuses to overwrite
// and -f overwrites.
func TestConfigInit_CreatesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GORG_CONFIG", target)

	cfg := testConfig(t)
	ctx, _, logs := testContextWithLogs(t, cfg)

	if err := runCommand(t, ctx, newConfigCmd(), "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if !strings.Contains(logs.String(), "Created config file:") {
		t.Errorf("expected creation message, got: %q", logs.String())
	}

	err := runCommand(t, ctx, newConfigCmd(), "init")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected already exists error, got: %v", err)
	}

	if err := runCommand(t, ctx, newConfigCmd(), "init", "-f"); err != nil {
		t.Errorf("config init -f failed: %v", err)
	}
}

// TestConfigShow tests printing the effective configuration.
//
// Scenario: config show runs with a config built from defaults.
// Expected: every key is printed with its effective value.
func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx, out := testContext(t, cfg)

	if err := runCommand(t, ctx, newConfigCmd(), "show"); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Config file: (none, using defaults)") {
		t.Errorf("expected defaults note, got: %q", got)
	}
	if !strings.Contains(got, "projects_dir: "+cfg.ProjectsDir) {
		t.Errorf("expected projects_dir line, got: %q", got)
	}
	if !strings.Contains(got, "index_file: "+cfg.IndexFile) {
		t.Errorf("expected index_file line, got: %q", got)
	}
	if !strings.Contains(got, "max_find_items: 10") {
		t.Errorf("expected max_find_items line, got: %q", got)
	}
}
