// Package migrate holds the `board migrate ...` commands
package migrate

import (
	"github.com/spf13/cobra"
)

// MigrateCmd returns the migrate parent command
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Inspect and change the database schema",
		Long: `Apply, list and roll back the change-sets that define the schema.
Every other command applies pending change-sets on startup; these commands
do not, so they can report on an outdated database.`,
	}

	cmd.AddCommand(UpCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(RollbackCmd())

	return cmd
}
