package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type ctxKey struct{}

// Config holds the gorg configuration.
type Config struct {
	ProjectsDir  string `toml:"projects_dir"`   // root directory for all managed repos
	IndexFile    string `toml:"index_file"`     // where the project index lives
	GitCommand   string `toml:"git_command"`    // git executable to invoke
	GitRemote    string `toml:"git_remote"`     // remote name wired into new repos
	MaxFindItems int    `toml:"max_find_items"` // selector list height

	// Path is the file this config was loaded from, empty when running on
	// defaults.
	Path string `toml:"-"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ProjectsDir:  "~/Projects",
		GitCommand:   "git",
		GitRemote:    "origin",
		MaxFindItems: 10,
	}
}

// WithConfig attaches the loaded configuration to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the configuration from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	// Allow ~ paths
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// resolvePath picks the config file to read. The --config flag wins over
// $GORG_CONFIG, which wins over ~/.config/gorg/config.toml. The bool reports
// whether the user named the path explicitly (flag or env), which makes a
// missing file an error instead of a silent fall back to defaults.
func resolvePath(flagPath string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv("GORG_CONFIG"); env != "" {
		return env, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "gorg", "config.toml"), false
}

// Load reads the configuration. flagPath is the --config override, empty
// means the default location. A missing file at the default location yields
// Default(), a missing file the user asked for explicitly is an error, and
// so is any file that exists but does not parse or validate.
func Load(flagPath string) (Config, error) {
	path, explicit := resolvePath(flagPath)
	if path == "" {
		// No home directory and no explicit path: run on defaults.
		return finalize(Default(), "")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return finalize(Default(), "")
		}
		return Default(), fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file: %w", err)
	}

	return finalize(cfg, path)
}

// finalize validates the raw values, expands ~ and fills derived defaults.
func finalize(cfg Config, path string) (Config, error) {
	if cfg.ProjectsDir == "" {
		cfg.ProjectsDir = Default().ProjectsDir
	}
	if err := ValidatePath(cfg.ProjectsDir, "projects_dir"); err != nil {
		return Default(), err
	}
	if err := ValidatePath(cfg.IndexFile, "index_file"); err != nil {
		return Default(), err
	}

	expanded, err := expandPath(cfg.ProjectsDir)
	if err != nil {
		return Default(), fmt.Errorf("expand projects_dir: %w", err)
	}
	cfg.ProjectsDir = expanded

	if cfg.IndexFile == "" {
		cfg.IndexFile = filepath.Join(cfg.ProjectsDir, ".gorg-index.json")
	} else {
		expanded, err := expandPath(cfg.IndexFile)
		if err != nil {
			return Default(), fmt.Errorf("expand index_file: %w", err)
		}
		cfg.IndexFile = expanded
	}

	if cfg.GitCommand == "" {
		cfg.GitCommand = "git"
	}
	if cfg.GitRemote == "" {
		cfg.GitRemote = "origin"
	}
	if cfg.MaxFindItems < 0 {
		return Default(), fmt.Errorf("max_find_items must be positive, got: %d", cfg.MaxFindItems)
	}
	if cfg.MaxFindItems == 0 {
		cfg.MaxFindItems = Default().MaxFindItems
	}

	cfg.Path = path
	return cfg, nil
}

const defaultConfig = `# gorg configuration

# Root directory that holds all managed repositories
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# projects_dir = "~/Projects"

# Where the project index is stored
# Defaults to <projects_dir>/.gorg-index.json
# index_file = "~/Projects/.gorg-index.json"

# Git executable used for clone, init and remote calls
# git_command = "git"

# Remote name wired into repositories created by "gorg init"
# git_remote = "origin"

# How many projects the find selector shows at once
# max_find_items = 10
`

// DefaultTemplate returns the commented config template Init writes.
func DefaultTemplate() string {
	return defaultConfig
}

// Init creates a default config file at the location Load would read from
// (flagPath, $GORG_CONFIG or ~/.config/gorg/config.toml).
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(flagPath string, force bool) (string, error) {
	path, _ := resolvePath(flagPath)
	if path == "" {
		return "", errors.New("cannot determine config location: no home directory")
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	// Create directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	// Write default config
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
