package migrate

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	dbmigrate "github.com/thenoetrevino/board/internal/database/migrate"
)

// UpCmd returns the migrate up subcommand
func UpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending change-sets",
		RunE:  runUp,
	}

	cli.AddOutputFlags(cmd, "No output")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	a, release, err := cli.GetAppForMigrations(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() { _ = release() }()

	runner, err := a.Migrator()
	if err != nil {
		return cli.Fail(formatter, err)
	}

	applied, err := runner.Up(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"applied": changeSetNames(applied),
		})
	}

	if len(applied) == 0 {
		formatter.Printf("Database is up to date\n")
		return nil
	}
	for _, cs := range applied {
		formatter.Printf("✓ Applied %s\n", cs)
	}
	formatter.Printf("%d change-set(s) applied\n", len(applied))
	return nil
}

func changeSetNames(sets []dbmigrate.ChangeSet) []string {
	names := make([]string, 0, len(sets))
	for _, cs := range sets {
		names = append(names, cs.String())
	}
	return names
}
