// Package git provides git operations via shell commands.
//
// All operations go through the git binary named in the configuration rather
// than a Go git library. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers,
// aliases).
//
// A [Runner] carries the configured binary:
//
//   - [Runner.Check]: Verify the binary is installed
//   - [Runner.Clone]: Clone a remote with live progress
//   - [Runner.Init]: Initialize a fresh repository
//   - [Runner.Remotes], [Runner.RemoteAdd], [Runner.RemoteSetURL]: Remote wiring
//   - [Runner.EnsureRemote]: Add-or-update a remote in one call
package git
