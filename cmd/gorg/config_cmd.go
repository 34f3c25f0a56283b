package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/log"
	"github.com/raphi011/gorg/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		GroupID: GroupConfig,
		Long: `Manage gorg configuration.

Config location: ~/.config/gorg/config.toml, overridable with --config
or the GORG_CONFIG environment variable.`,
		Example: `  gorg config init     # Create a default config file
  gorg config show     # Show the effective configuration`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		Long: `Create a default config file.

The file is a commented template with every key on its default, written
to ~/.config/gorg/config.toml (or the --config / $GORG_CONFIG override).`,
		Example: `  gorg config init         # Create the config file
  gorg config init -f      # Overwrite an existing config
  gorg config init -s      # Print the template to stdout instead`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultTemplate())
				return nil
			}

			path, err := config.Init(cfgFile, force)
			if err != nil {
				return err
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if cfg.Path != "" {
				out.Printf("Config file: %s\n", cfg.Path)
			} else {
				out.Println("Config file: (none, using defaults)")
			}
			out.Println()
			out.Printf("projects_dir: %s\n", cfg.ProjectsDir)
			out.Printf("index_file: %s\n", cfg.IndexFile)
			out.Printf("git_command: %s\n", cfg.GitCommand)
			out.Printf("git_remote: %s\n", cfg.GitRemote)
			out.Printf("max_find_items: %d\n", cfg.MaxFindItems)

			return nil
		},
	}

	return cmd
}
