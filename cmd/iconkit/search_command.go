package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"iconkit/internal/config"
	"iconkit/internal/store"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var styles []string

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search staged icons by name or search term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			needle := strings.TrimSpace(args[0])
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				records, err := st.Search(cmd.Context(), needle, styles...)
				if err != nil {
					return fmt.Errorf("search icons: %w", err)
				}

				if ctx.JSONMode() {
					if records == nil {
						records = []store.Record{}
					}
					return writeJSON(cmd, map[string]any{
						"term":    needle,
						"matches": records,
					})
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintf(out, "No staged icons match %q\n", needle)
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						record.Name,
						record.Style,
						record.Unicode,
						strings.Join(record.Terms, ", "),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Icon", "Style", "Unicode", "Terms"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&styles, "style", nil, "Restrict the search to the given styles (repeatable)")

	return cmd
}
