package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/log"
	"github.com/raphi011/gorg/internal/output"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

// Command group IDs for organizing help output
const (
	GroupProjects = "projects"
	GroupIndex    = "index"
	GroupConfig   = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gorg",
	Short: "Organize git repositories under one projects directory",
	Long: `gorg keeps all your git repositories under one directory tree and
finds them back by fuzzy name.

Repositories live at <projects_dir>/<host>/<owner>/<repo> and are listed
in an index file that gorg rebuilds by scanning the tree. The index feeds
fuzzy matching for list, find and run.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Completion and help run without configuration
		if cmd.Name() == "completion" || cmd.Name() == "__complete" ||
			cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		ctx := cmd.Context()

		// Logger on stderr for diagnostics, printer on stdout for data
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, false))
		ctx = output.WithPrinter(ctx, os.Stdout)

		// "config init" must keep working while the config file on disk
		// is broken, otherwise there is no way to repair it.
		if !isConfigInit(cmd) {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			ctx = config.WithConfig(ctx, &loaded)
		}

		cmd.SetContext(ctx)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

func isConfigInit(cmd *cobra.Command) bool {
	return cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config"
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gorg -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the gorg configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupProjects, Title: "Project Commands:"},
		&cobra.Group{ID: GroupIndex, Title: "Index Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Project commands
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRunCmd())

	// Index commands
	rootCmd.AddCommand(newUpdateIndexCmd())
	rootCmd.AddCommand(newInitCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())
}
