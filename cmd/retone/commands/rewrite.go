package commands

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/retone/cmd/retone/opts"
	"github.com/walteh/retone/pkg/log"
	"github.com/walteh/retone/pkg/rewrite"
	"github.com/walteh/retone/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRewriteCmd creates a new rewrite command
func NewRewriteCmd(o *opts.RootOpts) *cobra.Command {
	var only []string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite every article body in the configured tone",
		Long: `Rewrite extracts each article record from the input file and asks the model for a
new body in the configured tone. It will:
1. Refuse to start without an API key
2. Rewrite records one at a time, in document order
3. Keep the original body of any record the model fails on
4. Write the result to the output file, never to the input`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "rewrite").Logger().WithContext(ctx)

			if err := runRewrite(ctx, o, only, dryRun); err != nil {
				return errors.Errorf("rewriting: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "only rewrite records whose id matches one of these globs (replaces include)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run the rewrite without writing the output file")

	return cmd
}

func runRewrite(ctx context.Context, o *opts.RootOpts, only []string, dryRun bool) error {
	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return err
	}

	transformer, err := o.NewTransformer(ctx, cfg)
	if err != nil {
		return err
	}

	ext, err := opts.Extractor(cfg)
	if err != nil {
		return err
	}

	include := cfg.Include
	if len(only) > 0 {
		include = only
	}
	filter, err := rewrite.NewFilter(include, cfg.Exclude)
	if err != nil {
		return errors.Errorf("creating filter: %w", err)
	}

	mgr := status.NewManager(nil)
	source, err := mgr.ReadFile(ctx, cfg.Input)
	if err != nil {
		return errors.Errorf("reading input: %w", err)
	}

	console := log.New(o.Console, *zerolog.Ctx(ctx))
	user := log.NewUserLogger(ctx)

	p, err := rewrite.New(rewrite.Options{
		Extractor:   ext,
		Replacer:    opts.Replacer(cfg, ext),
		Transformer: transformer,
		Filter:      filter,
		Progress:    user,
	})
	if err != nil {
		return errors.Errorf("creating pipeline: %w", err)
	}

	console.Header("rewriting articles")
	console.StartDocument(ctx, log.DocumentOperation{Input: cfg.Input, Output: cfg.Output, Mode: "rewrite"})
	defer console.EndDocument(ctx)

	result, err := p.Run(ctx, string(source))
	if err != nil {
		return err
	}

	console.LogNewline()
	console.LogOutcomes(ctx, result.Outcomes)
	console.Summary(ctx, log.SummaryOf(result))

	if result.Skipped > 0 {
		console.Warningf("%d record bodies did not match the record syntax and were left as is", result.Skipped)
	}
	if failed := result.Failed(); len(failed) > 0 {
		ids := make([]string, 0, len(failed))
		for _, rec := range failed {
			ids = append(ids, rec.ID)
		}
		console.Warningf("%d records kept their original body: %s", len(failed), strings.Join(ids, ", "))
		console.Info("add overrides for them and run `retone patch`")
	}

	if dryRun {
		user.LogFileChange(log.FileChange{Type: log.FileSkipped, Path: cfg.Output, Description: "dry run"})
		return nil
	}

	info, err := mgr.WriteOutput(ctx, cfg.Output, []byte(result.Output))
	if err != nil {
		return errors.Errorf("writing output: %w", err)
	}
	user.LogFileChange(log.FileChangeOf(info))

	console.Success("Rewriting complete")
	return nil
}
