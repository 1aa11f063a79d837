package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a board",
		Long: `Rename a board.

Examples:
  board board rename --id=1 --name="Sprint 13"
`,
		RunE: runRename,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
	cmd.Flags().String("name", "", "New board name (required)")
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

	old, err := cliInstance.App.BoardService.GetBoard(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if err := cliInstance.App.BoardService.RenameBoard(ctx, id, name); err != nil {
		return cli.Fail(formatter, err)
	}
	board, err := cliInstance.App.BoardService.GetBoard(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success":  true,
			"board":    board,
			"old_name": old.Name,
		})
	}

	formatter.Printf("✓ Board %d renamed\n", id)
	formatter.Printf("  '%s' → '%s'\n", old.Name, board.Name)
	return nil
}
