package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/retone/cmd/retone/opts"
	"github.com/walteh/retone/pkg/config"
	"github.com/walteh/retone/pkg/log"
	"github.com/walteh/retone/pkg/rewrite"
	"github.com/walteh/retone/pkg/status"
	"github.com/walteh/retone/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewPatchCmd creates a new patch command
func NewPatchCmd(o *opts.RootOpts) *cobra.Command {
	var overridesFile string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Apply hand-written bodies to the output file",
		Long: `Patch writes hand-authored replacement bodies into the output file, usually for
records whose automated rewrite failed. Records are located by id and title.
No model is called.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "patch").Logger().WithContext(ctx)

			if err := runPatch(ctx, o, overridesFile, dryRun); err != nil {
				return errors.Errorf("patching: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&overridesFile, "overrides", "", "load overrides from this file instead of the config")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "apply the overrides without writing the output file")

	return cmd
}

func runPatch(ctx context.Context, o *opts.RootOpts, overridesFile string, dryRun bool) error {
	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return err
	}

	overrides := cfg.Overrides
	if overridesFile != "" {
		overrides, err = config.LoadOverrides(ctx, overridesFile)
		if err != nil {
			return errors.Errorf("loading overrides: %w", err)
		}
	}

	console := log.New(o.Console, *zerolog.Ctx(ctx))
	user := log.NewUserLogger(ctx)

	if len(overrides) == 0 {
		console.Warning("no overrides configured, nothing to patch")
		return nil
	}

	mgr := status.NewManager(nil)
	document, err := mgr.ReadFile(ctx, cfg.Output)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Errorf("output %s does not exist, run rewrite first", cfg.Output)
		}
		return errors.Errorf("reading output: %w", err)
	}

	ext, err := opts.Extractor(cfg)
	if err != nil {
		return err
	}
	replacer := text.NewKeyedReplacer(ext, text.NewTemplateLiteralEscaper())

	console.Header("applying overrides")
	console.StartDocument(ctx, log.DocumentOperation{Input: cfg.Output, Output: cfg.Output, Mode: "patch"})
	defer console.EndDocument(ctx)

	result, err := rewrite.Patch(ctx, replacer, string(document), overrides)
	if err != nil {
		return err
	}

	for _, r := range result.Unmatched {
		console.Warningf("override %s did not match any record", r.ID)
	}

	if dryRun {
		user.LogFileChange(log.FileChange{Type: log.FileSkipped, Path: cfg.Output, Description: "dry run"})
		return nil
	}

	info, err := mgr.WriteOutput(ctx, cfg.Output, []byte(result.ModifiedContent))
	if err != nil {
		return errors.Errorf("writing output: %w", err)
	}
	user.LogFileChange(log.FileChangeOf(info))

	console.Successf("Applied %d of %d overrides", result.ReplacementCount, len(overrides))
	return nil
}
