package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/git"
	"github.com/raphi011/gorg/internal/giturl"
	"github.com/raphi011/gorg/internal/log"
	"github.com/raphi011/gorg/internal/scan"
)

func newInitCmd() *cobra.Command {
	var noClone bool

	cmd := &cobra.Command{
		Use:     "init <remote>...",
		Short:   "Set up a repository for the given remote",
		GroupID: GroupIndex,
		Args:    cobra.MinimumNArgs(1),
		Long: `Set up a repository for the given remote under the projects directory.

The remote is either a complete git URL or parts that are joined into
one: a scheme (ssh, git, http, https), a host and the repository path.
Without a scheme the URL defaults to https. The repository lands at
<projects_dir>/<host>/<owner>/<repo>, derived from the URL.

The repository is cloned unless it already exists on disk, the
configured remote is pointed at the URL, and the index is rebuilt.`,
		Example: `  gorg init https://github.com/jpallari/gorg.git  # Clone an existing URL
  gorg init github.com jpallari gorg              # Same URL built from parts
  gorg init ssh gitlab.com acme widget            # ssh://git@gitlab.com/acme/widget.git
  gorg init --no-clone github.com acme sandbox    # git init instead of cloning`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			runner := git.New(cfg.GitCommand)
			if err := runner.Check(); err != nil {
				return err
			}

			url, err := giturl.FromParts(args)
			if err != nil {
				return err
			}
			parts, err := giturl.PathParts(url)
			if err != nil {
				return err
			}

			name := strings.Join(parts, "/")
			dest := filepath.Join(cfg.ProjectsDir, filepath.Join(parts...))
			l.Debug("resolved remote", "url", url, "project", name)

			if scan.IsRepo(dest) {
				l.Debug("repository already exists", "dir", dest)
			} else if noClone {
				if err := os.MkdirAll(dest, 0755); err != nil {
					return fmt.Errorf("create %s: %w", dest, err)
				}
				if err := runner.Init(ctx, dest); err != nil {
					return err
				}
			} else {
				if err := runner.Clone(ctx, url, dest); err != nil {
					return err
				}
			}

			if err := runner.EnsureRemote(ctx, dest, cfg.GitRemote, url); err != nil {
				return err
			}

			// The index is rebuilt from a full scan rather than patched,
			// so init picks up everything else that changed on disk too.
			if _, err := rebuildIndex(ctx, cfg); err != nil {
				return err
			}

			l.Printf("Initialized %s in %s\n", name, dest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noClone, "no-clone", false, "Skip cloning, create an empty repository instead")

	return cmd
}
