package migrate

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// RollbackCmd returns the migrate rollback subcommand
func RollbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Roll back the most recently applied change-sets",
		Long: `Undo applied change-sets, newest first. Nothing is rolled back when any
selected change-set has no rollback SQL.

Examples:
  board migrate rollback
  board migrate rollback --count=3
`,
		RunE: runRollback,
	}

	cmd.Flags().Int("count", 1, "Number of change-sets to roll back")

	cli.AddOutputFlags(cmd, "No output")

	return cmd
}

func runRollback(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	count, err := cli.RequirePositive(cmd, "count")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}

	a, release, err := cli.GetAppForMigrations(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() { _ = release() }()

	runner, err := a.Migrator()
	if err != nil {
		return cli.Fail(formatter, err)
	}

	reverted, err := runner.Rollback(ctx, count)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success":     true,
			"rolled_back": changeSetNames(reverted),
		})
	}

	if len(reverted) == 0 {
		formatter.Printf("Nothing to roll back\n")
		return nil
	}
	for _, cs := range reverted {
		formatter.Printf("✓ Rolled back %s\n", cs)
	}
	return nil
}
