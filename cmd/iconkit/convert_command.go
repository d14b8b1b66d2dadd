package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"iconkit/internal/config"
	"iconkit/internal/logging"
	"iconkit/internal/store"
	"iconkit/internal/workflow"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var styles []string
	var jobs int

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the configured kit into Iconify icon sets",
		Long: `Convert reads the FontAwesome kit directory, reconciles every icon's
standalone SVG file with its metadata descriptor, stages the results, and
writes one Iconify JSON document per style into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("configure logging: %w", err)
				}

				manager := workflow.NewManager(cfg, st, logger)
				summary, err := manager.Convert(cmd.Context(), workflow.ConvertOptions{
					Styles: styles,
					Jobs:   jobs,
				})
				if err != nil {
					return err
				}

				if ctx.JSONMode() {
					return writeJSON(cmd, summary)
				}
				return printConvertSummary(cmd, summary)
			})
		},
	}

	cmd.Flags().StringSliceVar(&styles, "style", nil, "Restrict conversion to the given styles (repeatable)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "SVG read parallelism (0 uses the configured value)")

	return cmd
}

func printConvertSummary(cmd *cobra.Command, summary *workflow.Summary) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	headline := fmt.Sprintf("Converted %s across %s in %s",
		pluralize(summary.Icons, "icon", "icons"),
		pluralize(len(summary.Styles), "style", "styles"),
		summary.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(out, renderHeadline(headline, colorize))
	if summary.Skipped > 0 {
		fmt.Fprintf(out, "Skipped %s with no usable SVG source\n", pluralize(summary.Skipped, "pair", "pairs"))
	}
	fmt.Fprintln(out)

	rows := make([][]string, 0, len(summary.Styles))
	for _, result := range summary.Styles {
		rows = append(rows, []string{result.Style, fmt.Sprintf("%d", result.Icons), result.File})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Style", "Icons", "File"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
	return nil
}
