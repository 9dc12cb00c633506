package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/stagesync/cmd/stagesync/opts"
	"github.com/walteh/stagesync/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCleanCmd creates a new clean command
func NewCleanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Empty the staging directory except protected paths",
		Long: `Clean removes everything under the destination root.
It will:
1. Walk the destination tree, children before parents
2. Skip entries matching the protected path prefixes
3. Log and isolate any entry that cannot be removed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "clean").Logger().WithContext(ctx)

			// Create operator
			op, err := operation.New(operation.Options{
				Config:   opts.Config,
				Reporter: opts.Reporter,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			// Run clean
			res, err := op.Clean(ctx)
			if err != nil {
				opts.UserLogger.Error("cleaning staging directory failed", err)
				return errors.Errorf("cleaning staging directory: %w", err)
			}

			for _, item := range res.Failures {
				opts.UserLogger.LogItem(item)
			}
			summary := fmt.Sprintf("%d removed, %d protected", res.Removed, res.Protected)
			if res.Failed() {
				opts.UserLogger.Warning(fmt.Sprintf("finished with %d failures: %s", len(res.Failures), summary))
			} else {
				opts.UserLogger.Success("finished: " + summary)
			}

			return nil
		},
	}

	return cmd
}
