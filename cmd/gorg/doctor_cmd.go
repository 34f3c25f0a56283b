package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gorg/internal/config"
	"github.com/raphi011/gorg/internal/doctor"
	"github.com/raphi011/gorg/internal/output"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose environment and index issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose environment and index issues.

Checks:
- Git binary is available
- Projects directory exists
- Index file loads
- Indexed projects still exist and still are git repositories
- Repositories on disk that are missing from the index

Doctor never changes anything. The fix for index drift is always
'gorg update-index'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			return doctor.Run(ctx, cfg, out.Writer())
		},
	}

	return cmd
}
