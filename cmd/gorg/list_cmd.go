package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/locate"
	"github.com/raphi011/gorg/internal/match"
	"github.com/raphi011/gorg/internal/output"
)

func newListCmd() *cobra.Command {
	var (
		fullPath     bool
		prefixSearch bool
	)

	cmd := &cobra.Command{
		Use:     "list [query...]",
		Short:   "List projects matching the query",
		Aliases: []string{"ls"},
		GroupID: GroupProjects,
		Long: `List all projects that match the given fuzzy query.

Matches are printed best first, one per line. Without a query every
indexed project is printed in index order. Finding nothing is not an
error, the output is just empty.`,
		Example: `  gorg list                # Every indexed project
  gorg list jpg            # Fuzzy matches for "jpg", best first
  gorg list -p github.com  # Projects whose name starts with github.com
  gorg list -f gorg        # Print full paths instead of names`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			ix, err := loadIndex(cfg)
			if err != nil {
				return err
			}

			mode := match.Fuzzy
			if prefixSearch {
				mode = match.Prefix
			}

			query := strings.Join(args, " ")
			for _, e := range locate.Many(ix, query, mode) {
				out.Println(projectLine(e, fullPath))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fullPath, "full-path", "f", false, "Print full paths instead of project names")
	cmd.Flags().BoolVarP(&prefixSearch, "prefix-search", "p", false, "Match the query as a prefix instead of fuzzily")

	cmd.ValidArgsFunction = completeProjects

	return cmd
}
