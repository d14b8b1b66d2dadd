package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"iconkit/internal/config"
	"iconkit/internal/store"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <style>",
		Short: "List the staged icons of one style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style := args[0]
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				records, err := st.ListByStyle(cmd.Context(), style)
				if err != nil {
					return fmt.Errorf("list %s icons: %w", style, err)
				}

				if ctx.JSONMode() {
					if records == nil {
						records = []store.Record{}
					}
					return writeJSON(cmd, map[string]any{
						"style": style,
						"icons": records,
					})
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintf(out, "No staged icons for style %q\n", style)
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						record.Name,
						record.Unicode,
						fmt.Sprintf("%dx%d", record.Width, record.Height),
						record.ViewBox,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Icon", "Unicode", "Size", "ViewBox"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				fmt.Fprintf(out, "\nTotal: %s\n", pluralize(len(records), "icon", "icons"))
				return nil
			})
		},
	}
}
