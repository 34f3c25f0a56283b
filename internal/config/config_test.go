package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setHome points HOME at a temp dir and clears GORG_CONFIG so tests do not
// pick up the real user config. Not parallel-safe.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GORG_CONFIG", "")
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	home := setHome(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(home, "Projects"); cfg.ProjectsDir != want {
		t.Errorf("ProjectsDir = %q, want %q", cfg.ProjectsDir, want)
	}
	if want := filepath.Join(home, "Projects", ".gorg-index.json"); cfg.IndexFile != want {
		t.Errorf("IndexFile = %q, want %q", cfg.IndexFile, want)
	}
	if cfg.GitCommand != "git" {
		t.Errorf("GitCommand = %q, want %q", cfg.GitCommand, "git")
	}
	if cfg.GitRemote != "origin" {
		t.Errorf("GitRemote = %q, want %q", cfg.GitRemote, "origin")
	}
	if cfg.MaxFindItems != 10 {
		t.Errorf("MaxFindItems = %d, want 10", cfg.MaxFindItems)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	setHome(t)
	path := writeConfig(t, t.TempDir(), `
projects_dir = "/repos"
git_command = "/usr/local/bin/git"
git_remote = "upstream"
max_find_items = 25
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ProjectsDir != "/repos" {
		t.Errorf("ProjectsDir = %q, want %q", cfg.ProjectsDir, "/repos")
	}
	if want := filepath.Join("/repos", ".gorg-index.json"); cfg.IndexFile != want {
		t.Errorf("IndexFile = %q, want %q", cfg.IndexFile, want)
	}
	if cfg.GitCommand != "/usr/local/bin/git" {
		t.Errorf("GitCommand = %q, want %q", cfg.GitCommand, "/usr/local/bin/git")
	}
	if cfg.GitRemote != "upstream" {
		t.Errorf("GitRemote = %q, want %q", cfg.GitRemote, "upstream")
	}
	if cfg.MaxFindItems != 25 {
		t.Errorf("MaxFindItems = %d, want 25", cfg.MaxFindItems)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadExplicitMissingIsError(t *testing.T) {
	setHome(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() expected error for missing explicit config")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	setHome(t)
	path := writeConfig(t, t.TempDir(), `projects_dir = "/env-repos"`)
	t.Setenv("GORG_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProjectsDir != "/env-repos" {
		t.Errorf("ProjectsDir = %q, want %q", cfg.ProjectsDir, "/env-repos")
	}
}

func TestLoadEnvMissingIsError(t *testing.T) {
	setHome(t)
	t.Setenv("GORG_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	if _, err := Load(""); err == nil {
		t.Error("Load() expected error for missing $GORG_CONFIG file")
	}
}

func TestLoadFlagBeatsEnv(t *testing.T) {
	setHome(t)
	flagPath := writeConfig(t, t.TempDir(), `projects_dir = "/flag-repos"`)
	envPath := writeConfig(t, t.TempDir(), `projects_dir = "/env-repos"`)
	t.Setenv("GORG_CONFIG", envPath)

	cfg, err := Load(flagPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProjectsDir != "/flag-repos" {
		t.Errorf("ProjectsDir = %q, want %q", cfg.ProjectsDir, "/flag-repos")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad toml",
			content: `projects_dir = `,
		},
		{
			name:    "relative projects_dir",
			content: `projects_dir = "repos"`,
		},
		{
			name:    "relative index_file",
			content: `index_file = "some/index.json"`,
		},
		{
			name:    "negative max_find_items",
			content: `max_find_items = -2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setHome(t)
			path := writeConfig(t, t.TempDir(), tt.content)

			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestLoadTildeExpansion(t *testing.T) {
	home := setHome(t)
	path := writeConfig(t, t.TempDir(), `
projects_dir = "~/Code"
index_file = "~/.cache/gorg/index.json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(home, "Code"); cfg.ProjectsDir != want {
		t.Errorf("ProjectsDir = %q, want %q", cfg.ProjectsDir, want)
	}
	if want := filepath.Join(home, ".cache", "gorg", "index.json"); cfg.IndexFile != want {
		t.Errorf("IndexFile = %q, want %q", cfg.IndexFile, want)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty", "", false},
		{"absolute", "/repos", false},
		{"tilde", "~/Projects", false},
		{"bare tilde", "~", false},
		{"relative", "repos", true},
		{"dot", ".", true},
		{"dotdot", "../repos", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePath(tt.path, "projects_dir")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestInit(t *testing.T) {
	home := setHome(t)

	path, err := Init("", false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if want := filepath.Join(home, ".config", "gorg", "config.toml"); path != want {
		t.Errorf("Init() path = %q, want %q", path, want)
	}

	// The generated template must load cleanly and produce the defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() after Init error = %v", err)
	}
	if want := filepath.Join(home, "Projects"); cfg.ProjectsDir != want {
		t.Errorf("ProjectsDir = %q, want %q", cfg.ProjectsDir, want)
	}

	// A second init without force refuses to overwrite.
	if _, err := Init("", false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Init() error = %v, want already exists", err)
	}

	// Force overwrites.
	if _, err := Init("", true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}
}

func TestInitHonorsEnvLocation(t *testing.T) {
	setHome(t)
	target := filepath.Join(t.TempDir(), "custom", "gorg.toml")
	t.Setenv("GORG_CONFIG", target)

	path, err := Init("", false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if path != target {
		t.Errorf("Init() path = %q, want %q", path, target)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("stat created config: %v", err)
	}
}

func TestInitHonorsFlagLocation(t *testing.T) {
	setHome(t)
	target := filepath.Join(t.TempDir(), "flagged.toml")

	path, err := Init(target, false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if path != target {
		t.Errorf("Init() path = %q, want %q", path, target)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("stat created config: %v", err)
	}
}
