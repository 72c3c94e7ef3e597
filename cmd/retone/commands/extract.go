package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/retone/cmd/retone/opts"
	"github.com/walteh/retone/pkg/config"
	"github.com/walteh/retone/pkg/record"
	"github.com/walteh/retone/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewExtractCmd creates a new extract command
func NewExtractCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "List the article records found in a file",
		Long: `Extract lists every record the extractor finds, with the number of body openers
it had to skip. The file defaults to the configured input; when a file is given,
the default record syntax is used and no config is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "extract").Logger().WithContext(ctx)

			cfg := &config.Config{}
			if len(args) == 1 {
				syntax := record.DefaultSyntax()
				cfg.Input = args[0]
				cfg.Syntax = &syntax
			} else {
				var err error
				cfg, err = o.LoadConfig(ctx)
				if err != nil {
					return err
				}
			}

			ext, err := opts.Extractor(cfg)
			if err != nil {
				return err
			}

			source, err := status.NewManager(nil).ReadFile(ctx, cfg.Input)
			if err != nil {
				return errors.Errorf("reading input: %w", err)
			}

			scan := ext.Scan(string(source))

			data := pterm.TableData{{"#", "ID", "Title", "Bytes"}}
			for i, rec := range scan.Records {
				data = append(data, []string{
					strconv.Itoa(i + 1),
					rec.ID,
					rec.Title,
					strconv.Itoa(len(rec.Body)),
				})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			fmt.Fprintln(o.Console, table)
			fmt.Fprintf(o.Console, "%d records, %d skipped\n", len(scan.Records), scan.Skipped)
			return nil
		},
	}

	return cmd
}
