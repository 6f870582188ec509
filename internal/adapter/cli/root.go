// Package cli is the command-line entry point built on cobra.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command and attaches all sub-commands.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bulk-trafficker",
		Short: "Bulk trafficking from a spreadsheet into Campaign Manager 360",
		Long: `bulk-trafficker reads campaigns, placements, ads, creatives and landing
pages from a trafficking workbook, creates them through the Campaign Manager
API and writes the new IDs back so rows are never submitted twice.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(
		newRunCmd(app),
		newListCmd(app),
		newServeCmd(app),
		newMigrateCmd(app),
	)

	return rootCmd
}
