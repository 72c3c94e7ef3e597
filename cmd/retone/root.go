package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/retone/cmd/retone/commands"
	"github.com/walteh/retone/cmd/retone/opts"
)

// newRootCmd creates the root command with every subcommand attached
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retone",
		Short: "Rewrite embedded article records in a new tone",
		Long: `retone finds article records embedded in a source file, rewrites each body with a
generative model following a tone guide, and writes the result to a copy of the
file. Records the model fails on keep their original body and can be fixed
later with hand-written overrides.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), o.Debug))
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRewriteCmd(o),
		commands.NewPatchCmd(o),
		commands.NewExtractCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".retone.hcl", "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging attaches a zerolog logger tagged with a fresh run id to ctx
func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	return logger.WithContext(ctx)
}
