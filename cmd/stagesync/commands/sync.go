package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/stagesync/cmd/stagesync/opts"
	"github.com/walteh/stagesync/pkg/operation"
	"github.com/walteh/stagesync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewSyncCmd creates a new sync command
func NewSyncCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Clean the staging directory and copy the manifest into it",
		Long: `Sync brings the staging directory in line with the mapping manifest.
It will:
1. Ensure the destination root exists
2. Remove everything under it except protected paths
3. Copy each mapping into place, in manifest order
4. Report the aggregate outcome`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "sync").Logger().WithContext(ctx)

			opts.UserLogger.Header(opts.Config.String())

			// Create operator
			op, err := operation.New(operation.Options{
				Config:   opts.Config,
				Reporter: opts.Reporter,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			// Run sync
			res, err := op.Sync(ctx)
			if err != nil {
				opts.UserLogger.Error("staging sync failed", err)
				return errors.Errorf("syncing staging directory: %w", err)
			}

			// Surface isolated failures, then the summary
			for _, item := range res.Failures {
				opts.UserLogger.LogItem(item)
			}
			summary := status.NewDefaultFormatter().FormatSummary(res.Removed, res.Copied, res.Skipped, len(res.Failures))
			if res.Failed() {
				opts.UserLogger.Warning(summary)
			} else {
				opts.UserLogger.Success(summary)
			}

			return nil
		},
	}

	return cmd
}
