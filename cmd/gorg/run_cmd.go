package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	execcmd "github.com/raphi011/gorg/internal/cmd"
	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/locate"
	"github.com/raphi011/gorg/internal/log"
	"github.com/raphi011/gorg/internal/match"
)

func newRunCmd() *cobra.Command {
	var (
		query string
		dry   bool
		quiet bool
	)

	cmd := &cobra.Command{
		Use:     "run [-q query] -- <command> [args...]",
		Short:   "Run a command in all matching projects",
		GroupID: GroupProjects,
		Long: `Run a given command in all matching projects.

The command is executed in every project directory the query fuzzy
matches, with the terminal attached. Without -q it runs everywhere.
Use -- before commands that take flags of their own.

A failing command does not stop the loop; the failed projects are
reported at the end and the exit status is non-zero.`,
		Example: `  gorg run -- git status -sb        # In every indexed project
  gorg run -q acme -- make test     # Only in projects matching "acme"
  gorg run -d -q acme -- make test  # Show the targets, run nothing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("no command specified (use -- before commands with flags)")
			}

			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			ix, err := loadIndex(cfg)
			if err != nil {
				return err
			}

			entries := locate.Many(ix, query, match.Fuzzy)
			command := strings.Join(args, " ")

			if dry {
				for _, e := range entries {
					l.Printf("dry! %s: %s\n", e.Name, command)
				}
				return nil
			}

			var failed []string
			for _, e := range entries {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !quiet {
					l.Printf("%s: %s\n", e.Name, command)
				}
				if err := execcmd.RunInteractive(ctx, e.Path, args[0], args[1:]...); err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					l.Printf("Error in %s: %v\n", e.Name, err)
					failed = append(failed, e.Name)
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("command failed in %d of %d projects: %s",
					len(failed), len(entries), strings.Join(failed, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Fuzzy query selecting the target projects")
	cmd.Flags().BoolVarP(&dry, "dry", "d", false, "Only print the projects the command would run in")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not announce each project before running")

	cmd.RegisterFlagCompletionFunc("query", completeProjects)

	return cmd
}
