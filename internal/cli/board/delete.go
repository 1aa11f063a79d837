package board

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board",
		Long: `Delete a board by ID (requires confirmation unless --force or --quiet).

Warning: Deleting a board also deletes its columns, cards and block history.

Examples:
  # Delete with confirmation
  board board delete --id=1

  # Skip confirmation
  board board delete --id=1 --force
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
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

	details, err := cliInstance.App.BoardService.GetBoardDetails(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("⚠ Warning: this deletes %d columns and %d cards\n", len(details.Columns), details.TotalCards())
		formatter.Printf("Delete board #%d: '%s'? (y/N): ", id, details.Name)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := cliInstance.App.BoardService.DeleteBoard(ctx, id); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success":  true,
			"board_id": id,
		})
	}

	formatter.Printf("✓ Board %d deleted successfully\n", id)
	return nil
}
