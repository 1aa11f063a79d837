package column

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column",
		Long: `Delete an empty in-progress column (requires confirmation unless --force or --quiet).

The initial, final and cancel columns cannot be deleted, and a column
must be emptied before it can go.

Examples:
  board column delete --id=5
  board column delete --id=5 --force
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Column ID (required)")
	cli.MarkRequired(cmd, "id")

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.RequirePositive(cmd, "id")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	column, err := cliInstance.App.ColumnService.GetColumn(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Delete column #%d: '%s'? (y/N): ", id, column.Name)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := cliInstance.App.ColumnService.DeleteColumn(ctx, id); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success":   true,
			"column_id": id,
		})
	}

	formatter.Printf("✓ Column %d deleted successfully\n", id)
	return nil
}
