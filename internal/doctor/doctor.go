package doctor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/raphi011/gorg/internal/config"
)

// Run performs diagnostic checks on the environment and the project index.
// It never mutates anything: index drift always has the same remedy, a full
// rebuild, which Run recommends instead of attempting partial repairs.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	var stats Stats
	var allIssues []Issue

	fmt.Fprintln(out, "Checking environment...")
	envIssues := checkEnvironment(cfg)
	for i := range envIssues {
		envIssues[i].Category = CategoryEnvironment
	}
	allIssues = append(allIssues, envIssues...)

	fmt.Fprintln(out, "Checking index...")
	ix, indexIssues := checkIndex(cfg)
	if ix != nil {
		indexIssues = append(indexIssues, checkEntries(ix, &stats)...)
	}
	for i := range indexIssues {
		indexIssues[i].Category = CategoryIndex
	}
	allIssues = append(allIssues, indexIssues...)

	// Drift needs both sides of the comparison: a loadable index and a
	// readable projects root.
	if ix != nil && dirExists(cfg.ProjectsDir) {
		fmt.Fprintln(out, "Checking for unindexed repositories...")
		driftIssues := checkUnindexed(ctx, cfg, ix, &stats)
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := range driftIssues {
			driftIssues[i].Category = CategoryDrift
		}
		allIssues = append(allIssues, driftIssues...)
	}

	printSummary(out, stats)

	if len(allIssues) == 0 {
		fmt.Fprintln(out, "\n✓ No issues found")
		return nil
	}

	fmt.Fprintf(out, "\nFound %d issues:\n", len(allIssues))
	printIssuesByCategory(out, allIssues)

	if needsRebuild(allIssues) {
		fmt.Fprintln(out, "\nRun 'gorg update-index' to rebuild the index.")
	}
	return nil
}

// needsRebuild reports whether any issue is curable by an index rebuild.
// Environment issues are not: a missing git binary needs an install.
func needsRebuild(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Category == CategoryIndex || issue.Category == CategoryDrift {
			return true
		}
	}
	return false
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// printSummary prints a categorized summary.
func printSummary(out io.Writer, stats Stats) {
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  ✓ %d index entries valid\n", stats.EntriesValid)
	if stats.EntriesStale > 0 {
		fmt.Fprintf(out, "  ⚠ %d stale entries (path gone)\n", stats.EntriesStale)
	}
	if stats.EntriesBroken > 0 {
		fmt.Fprintf(out, "  ✗ %d entries no longer repositories\n", stats.EntriesBroken)
	}
	if stats.Unindexed > 0 {
		fmt.Fprintf(out, "  ⚠ %d repositories not indexed\n", stats.Unindexed)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out io.Writer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryEnvironment: "Environment issues",
		CategoryIndex:       "Index issues",
		CategoryDrift:       "Unindexed repositories",
	}

	for _, cat := range []IssueCategory{CategoryEnvironment, CategoryIndex, CategoryDrift} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		fmt.Fprintf(out, "\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			fmt.Fprintf(out, "  • %s: %s\n", issue.Name, issue.Description)
		}
	}
}
