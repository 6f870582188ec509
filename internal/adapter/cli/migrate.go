package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"bulk-trafficker/internal/db"
)

// newMigrateCmd applies or removes the journal schema.
func newMigrateCmd(app *App) *cobra.Command {
	var down bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the run journal schema to PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.Config.Psql.Enabled {
				return errors.New("journal is disabled; set PSQL_ENABLED=true")
			}
			addr := app.Config.Psql.Addr.String()
			if down {
				if err := db.MigrateDown(addr); err != nil {
					return err
				}
				app.Logger.Info("journal schema removed")
				return nil
			}
			if err := db.Migrate(addr); err != nil {
				return err
			}
			app.Logger.Info("migrations applied successfully")
			return nil
		},
	}

	migrateCmd.Flags().BoolVar(&down, "down", false, "Drop the journal tables instead")

	return migrateCmd
}
