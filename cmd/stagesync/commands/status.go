package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/stagesync/cmd/stagesync/opts"
	"github.com/walteh/stagesync/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the staging directory needs a sync",
		Long: `Status is a local dry check, it touches nothing.
It will:
1. Check that the destination root exists
2. Check that every mapping source still exists
3. Check that every mapping destination is populated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "status").Logger().WithContext(ctx)

			// Create operator
			op, err := operation.New(operation.Options{
				Config:   opts.Config,
				Reporter: opts.Reporter,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			// Run status check
			needsSync, err := op.Status(ctx)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			// Log result
			if needsSync {
				opts.UserLogger.Warning("staging directory needs a sync")
			} else {
				opts.UserLogger.Success("staging directory is up to date")
			}

			return nil
		},
	}

	return cmd
}
