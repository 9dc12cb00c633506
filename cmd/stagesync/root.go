package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/stagesync/cmd/stagesync/commands"
	"github.com/walteh/stagesync/cmd/stagesync/opts"
	"github.com/walteh/stagesync/pkg/config"
	"github.com/walteh/stagesync/pkg/log"
	"github.com/walteh/stagesync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile  string
	destination string
	debug       bool
)

// NewRootCmd creates the stagesync root command
func NewRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "stagesync",
		Short: "Synchronize a deployment staging directory",
		Long: `stagesync empties a staging directory (except protected paths) and copies
a manifest of labeled source-to-destination mappings into it. Per-item
failures are logged and isolated; they never abort the rest of the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context())
			cmd.SetContext(ctx)

			populated, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*ro = *populated
			return nil
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewSyncCmd(ro))
	cmd.AddCommand(commands.NewCleanCmd(ro))
	cmd.AddCommand(commands.NewStatusCmd(ro))

	return cmd
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Override destination if provided
	if destination != "" {
		cfg.Destination = destination
	}

	return &opts.RootOpts{
		Config:     cfg,
		Reporter:   status.NewManager(status.NewDefaultFormatter()),
		UserLogger: log.NewUserLogger(ctx),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".stagesync.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&destination, "destination", "", "override destination path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context) context.Context {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}
