package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/locate"
	"github.com/raphi011/gorg/internal/log"
	"github.com/raphi011/gorg/internal/match"
	"github.com/raphi011/gorg/internal/output"
	"github.com/raphi011/gorg/internal/ui"
)

func newFindCmd() *cobra.Command {
	var (
		fullPath        bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "find [query...]",
		Short:   "Pick a project with an interactive fuzzy matcher",
		GroupID: GroupProjects,
		Long: `Pick a project with an interactive fuzzy matcher.

The selector runs on stderr and prints the picked project on stdout, so
the result can be captured with command substitution. When the initial
query already narrows the index down to a single project it is printed
straight away without opening the selector.

Cancelling the selector (esc, ctrl+c or ctrl+d) exits with status 1 and
prints nothing.`,
		Example: `  cd $(gorg find -f)       # Change into the picked project
  gorg find jpg            # Start with "jpg" typed into the prompt
  gorg find --copy         # Also put the picked name on the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			ix, err := loadIndex(cfg)
			if err != nil {
				return err
			}
			if len(ix.Entries) == 0 {
				return fmt.Errorf("%w: no projects indexed, run 'gorg update-index' first", locate.ErrNoMatch)
			}

			query := strings.Join(args, " ")
			candidates := ix.Names()

			var name string
			if results := match.Match(query, candidates, match.Fuzzy); len(results) == 1 {
				// Already unambiguous, nothing left to pick.
				name = results[0].Str
			} else {
				if !isTerminal(os.Stdin) {
					return errors.New("find is interactive and needs a terminal (use 'gorg list' when piping)")
				}
				pick, err := ui.Pick(candidates, query, cfg.MaxFindItems)
				if errors.Is(err, ui.ErrCancelled) {
					os.Exit(1)
				}
				if err != nil {
					return err
				}
				name = candidates[pick]
			}

			entry, err := locate.One(ix, name)
			if err != nil {
				return err
			}

			value := projectLine(entry, fullPath)

			// Copy to clipboard if requested
			if copyToClipboard {
				if err := clipboard.WriteAll(value); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			out.Println(value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fullPath, "full-path", "f", false, "Print the full path instead of the project name")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the result to the clipboard")

	cmd.ValidArgsFunction = completeProjects

	return cmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
