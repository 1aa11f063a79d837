package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a column",
		Long: `Rename a column. Names are unique per board, ignoring case.

Examples:
  board column rename --id=1 --name="Completed"
  board column rename --id=1 --name="Completed" --json
`,
		RunE: runRename,
	}

	cmd.Flags().Int("id", 0, "Column ID (required)")
	cmd.Flags().String("name", "", "New column name (required)")
	cli.MarkRequired(cmd, "id", "name")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.RequirePositive(cmd, "id")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}
	name, _ := cmd.Flags().GetString("name")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	column, err := cliInstance.App.ColumnService.GetColumn(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	oldName := column.Name

	if err := cliInstance.App.ColumnService.RenameColumn(ctx, id, name); err != nil {
		return cli.Fail(formatter, err)
	}
	column, err = cliInstance.App.ColumnService.GetColumn(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"column": map[string]interface{}{
				"id":       column.ID,
				"name":     column.Name,
				"old_name": oldName,
			},
		})
	}

	formatter.Printf("✓ Column %d updated successfully\n", id)
	formatter.Printf("  '%s' → '%s'\n", oldName, column.Name)
	return nil
}
