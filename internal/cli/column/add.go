package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an in-progress column to a board",
		Long: `Add a new in-progress column to a board. The column is placed right
before the board's final column.

Examples:
  board column add --board=1 --name="Review"

  # Use the board set by 'eval $(board use board 1)'
  board column add --name="Review"

  # Quiet mode for bash capture
  COLUMN_ID=$(board column add --board=1 --name="Review" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "Column name (required)")
	cli.MarkRequired(cmd, "name")

	cmd.Flags().Int("board", 0, "Board ID (uses BOARD_ID env var if not specified)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "Set board with: eval $(board use board <board-id>)")
	}
	name, _ := cmd.Flags().GetString("name")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	column, err := cliInstance.App.ColumnService.AddColumn(ctx, boardID, name)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		formatter.PrintID(column.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"column":  column,
		})
	}

	formatter.Printf("✓ Column '%s' created successfully (ID: %d)\n", column.Name, column.ID)
	formatter.Printf("  Position: %d\n", column.Position)
	return nil
}
