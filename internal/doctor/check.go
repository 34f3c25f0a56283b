package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/git"
	"github.com/raphi011/gorg/internal/index"
	"github.com/raphi011/gorg/internal/scan"
)

// checkEnvironment verifies the configured git binary and projects root.
func checkEnvironment(cfg *config.Config) []Issue {
	var issues []Issue

	if err := git.New(cfg.GitCommand).Check(); err != nil {
		issues = append(issues, Issue{
			Name:        cfg.GitCommand,
			Description: err.Error(),
		})
	}

	info, err := os.Stat(cfg.ProjectsDir)
	switch {
	case os.IsNotExist(err):
		issues = append(issues, Issue{
			Name:        cfg.ProjectsDir,
			Description: "projects directory does not exist",
		})
	case err != nil:
		issues = append(issues, Issue{
			Name:        cfg.ProjectsDir,
			Description: fmt.Sprintf("projects directory not readable: %v", err),
		})
	case !info.IsDir():
		issues = append(issues, Issue{
			Name:        cfg.ProjectsDir,
			Description: "projects directory is not a directory",
		})
	}

	return issues
}

// checkIndex loads the persisted index. A load failure is reported as an
// issue rather than aborting the run, so the remaining checks still print.
func checkIndex(cfg *config.Config) (*index.Index, []Issue) {
	ix, err := index.Load(cfg.IndexFile)
	if err != nil {
		return nil, []Issue{{
			Name:        cfg.IndexFile,
			Description: err.Error(),
		}}
	}
	return ix, nil
}

// checkEntries verifies every indexed path still points at a repository.
func checkEntries(ix *index.Index, stats *Stats) []Issue {
	var issues []Issue

	for _, entry := range ix.Entries {
		if _, err := os.Stat(entry.Path); os.IsNotExist(err) {
			stats.EntriesStale++
			issues = append(issues, Issue{
				Name:        entry.Name,
				Description: fmt.Sprintf("path no longer exists: %s", entry.Path),
			})
			continue
		}
		if !scan.IsRepo(entry.Path) {
			stats.EntriesBroken++
			issues = append(issues, Issue{
				Name:        entry.Name,
				Description: fmt.Sprintf("no longer a git repository: %s", entry.Path),
			})
			continue
		}
		stats.EntriesValid++
	}

	return issues
}

// checkUnindexed finds repositories on disk the index doesn't know about.
func checkUnindexed(ctx context.Context, cfg *config.Config, ix *index.Index, stats *Stats) []Issue {
	repos, err := scan.Repos(ctx, cfg.ProjectsDir)
	if err != nil {
		return []Issue{{
			Name:        cfg.ProjectsDir,
			Description: fmt.Sprintf("scan failed: %v", err),
		}}
	}

	indexed := make(map[string]bool, len(ix.Entries))
	for _, entry := range ix.Entries {
		indexed[entry.Path] = true
	}

	var issues []Issue
	for _, path := range repos {
		if indexed[path] {
			continue
		}
		stats.Unindexed++
		issues = append(issues, Issue{
			Name:        path,
			Description: "repository not in the index",
		})
	}

	return issues
}
