// Package doctor provides diagnostic checks for the gorg environment and index.
//
// The doctor package detects issues including:
//
//   - Environment issues: configured git binary missing from PATH, missing
//     or unreadable projects directory.
//
//   - Index issues: unreadable or corrupt index file, entries whose path no
//     longer exists, entries whose path no longer looks like a repository.
//
//   - Drift: repositories on disk the index doesn't know about.
//
// # Usage
//
// Run diagnostics:
//
//	err := doctor.Run(ctx, cfg, os.Stdout)
//
// Doctor never mutates anything. Index problems all have the same remedy, a
// full rebuild via 'gorg update-index', which doctor recommends instead of
// attempting partial repairs.
//
// # Issue Categories
//
// Issues are grouped into three categories:
//
//   - [CategoryEnvironment]: Problems with the host setup
//   - [CategoryIndex]: Problems with the persisted index
//   - [CategoryDrift]: Repositories on disk missing from the index
//
// Each [Issue] carries a description naming the affected project or path.
package doctor
