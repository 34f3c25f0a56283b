// Package config handles loading and validation of gorg configuration.
//
// Configuration is read from a single TOML file.
//
// # Configuration Sources (highest priority first)
//
//   - --config flag
//   - GORG_CONFIG env var
//   - ~/.config/gorg/config.toml
//   - Default values
//
// A missing file at the default location is fine and yields the defaults. A
// missing file the user named explicitly (flag or env) is an error.
//
// # Key Settings
//
//   - projects_dir: Root directory for all managed repos (default: ~/Projects)
//   - index_file: Project index location (default: <projects_dir>/.gorg-index.json)
//   - git_command: Git executable to invoke (default: git)
//   - git_remote: Remote name wired into new repos (default: origin)
//   - max_find_items: Selector list height (default: 10)
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory. ~ is expanded on
// load since the shell does not expand inside config files.
package config
