package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"iconkit/internal/config"
	"iconkit/internal/store"
	"iconkit/internal/textutil"
)

func newStylesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List styles present in the staged conversion result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				styles, err := st.ListStyles(cmd.Context())
				if err != nil {
					return fmt.Errorf("list styles: %w", err)
				}

				type styleCount struct {
					Style string `json:"style"`
					Icons int    `json:"icons"`
				}
				counts := make([]styleCount, 0, len(styles))
				for _, style := range styles {
					records, err := st.ListByStyle(cmd.Context(), style)
					if err != nil {
						return fmt.Errorf("list %s icons: %w", style, err)
					}
					counts = append(counts, styleCount{Style: style, Icons: len(records)})
				}

				if ctx.JSONMode() {
					return writeJSON(cmd, map[string]any{"styles": counts})
				}

				out := cmd.OutOrStdout()
				if len(counts) == 0 {
					fmt.Fprintln(out, "No icons staged; run `iconkit convert` first")
					return nil
				}

				rows := make([][]string, 0, len(counts))
				for _, c := range counts {
					rows = append(rows, []string{c.Style, textutil.HumanizeStyle(c.Style), fmt.Sprintf("%d", c.Icons)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Style", "Name", "Icons"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}
