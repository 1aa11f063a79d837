package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns of a board",
		Long: `List all columns of a board (in order).

Examples:
  # Human-readable list
  board column list --board=1

  # JSON output for agents
  board column list --board=1 --json

  # Quiet mode (one ID per line)
  board column list --board=1 --quiet
`,
		RunE: runList,
	}

	cmd.Flags().Int("board", 0, "Board ID (uses BOARD_ID env var if not specified)")

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "Set board with: eval $(board use board <board-id>)")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	board, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	columns, err := cliInstance.App.ColumnService.ListColumns(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, col := range columns {
			formatter.PrintID(col.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"columns": columns,
		})
	}

	formatter.Printf("Columns in board '%s':\n", board.Name)
	for _, col := range columns {
		formatter.Printf("  %d. %s %s (ID: %d)\n", col.Position, col.Name, styles.RenderKind(col.Kind), col.ID)
	}
	return nil
}
