// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// All helpers take a context for cancellation, an optional working directory
// and log the command line through the context logger in verbose mode.
// Captured stderr becomes the error message on failure, making command
// failures readable without digging through exit codes.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoPath, "git", "init"); err != nil {
//	    // err carries the command's stderr if it printed any
//	    return fmt.Errorf("git init: %w", err)
//	}
//
//	// For commands whose stdout is the result:
//	out, err := cmd.OutputContext(ctx, repoPath, "git", "remote")
//
//	// For commands the user watches live (clone progress, gorg run):
//	err := cmd.RunInteractive(ctx, repoPath, "make", "test")
//
// # Design Notes
//
// gorg shells out to the configured git binary rather than using a Go git
// library. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers,
// etc.).
package cmd
