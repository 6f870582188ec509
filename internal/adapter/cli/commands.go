package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bulk-trafficker/internal/core/domain"
)

// newRunCmd submits one sheet, or every sheet in dependency order.
func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <sheet|all>",
		Short: "Submit eligible rows of a sheet and write the new IDs back",
		Long: `Submit every row whose key column is set and whose status column is empty.
Sheets: ` + strings.Join(domain.BatchOrder, ", ") + `, or "all" to run them in that order.
The first failing row stops the batch; rows before it keep their IDs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := app.useCase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup.close()

			var summaries []domain.BatchSummary
			if strings.EqualFold(args[0], "all") {
				summaries, err = uc.RunAll(cmd.Context())
			} else {
				var s domain.BatchSummary
				s, err = uc.RunSheet(cmd.Context(), args[0])
				summaries = []domain.BatchSummary{s}
			}
			for _, s := range summaries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d submitted, %d skipped (run %s)\n", s.Sheet, s.Submitted, s.Skipped, s.RunID)
			}
			return err
		},
	}
}

// newListCmd refreshes a listing on the Lists sheet.
func newListCmd(app *App) *cobra.Command {
	kinds := []string{domain.ListSites, domain.ListAdvertisers, domain.ListCreatives, domain.ListLandingPages, domain.ListCreativeFiles}
	return &cobra.Command{
		Use:       "list <kind>",
		Short:     "Write a listing to the Lists sheet",
		Long:      "Kinds: " + strings.Join(kinds, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := app.useCase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup.close()

			n, err := uc.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows written to %s\n", args[0], n, domain.SheetLists)
			return nil
		},
	}
}
