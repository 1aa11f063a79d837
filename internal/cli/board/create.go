package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/models"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a board with the default columns, or with custom columns.

With --columns the first column receives new cards, the last one holds
finished cards, the ones in between are in-progress columns, and a
"Cancelled" column is always added at the end.

Examples:
  # Default columns: To Do, In Progress, Done, Cancelled
  board board create --name="Sprint 12"

  # Custom columns
  board board create --name="Release" --columns=Backlog,Build,Verify,Shipped

  # Quiet mode for bash capture
  BOARD=$(board board create --name="Sprint 12" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Board name (required)")
	cli.MarkRequired(cmd, "name")

	// Optional flags
	cmd.Flags().StringSlice("columns", nil, "Custom column names in order (at least 2)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	name, _ := cmd.Flags().GetString("name")
	columns, _ := cmd.Flags().GetStringSlice("columns")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	var board *models.Board
	if len(columns) > 0 {
		board, err = cliInstance.App.BoardService.CreateBoardWithColumns(ctx, name, columns)
	} else {
		board, err = cliInstance.App.BoardService.CreateBoard(ctx, name)
	}
	if err != nil {
		return cli.Fail(formatter, err)
	}

	details, err := cliInstance.App.BoardService.GetBoardDetails(ctx, board.ID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		formatter.PrintID(board.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"board":   details,
		})
	}

	formatter.Printf("✓ Board '%s' created successfully (ID: %d)\n", board.Name, board.ID)
	for _, col := range details.Columns {
		formatter.Printf("  %d. %s [%s]\n", col.Position, col.Name, col.Kind)
	}
	return nil
}
