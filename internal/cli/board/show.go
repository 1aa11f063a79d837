package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/cli/styles"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board with its columns and card counts",
		Long: `Show a board's columns in order with the number of cards in each.

Examples:
  board board show --id=1
  board board show --id=1 --json
`,
		RunE: runShow,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd, "Minimal output (column IDs only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.RequirePositive(cmd, "id")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	details, err := cliInstance.App.BoardService.GetBoardDetails(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, col := range details.Columns {
			formatter.PrintID(col.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"board":   details,
		})
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render(details.Name))
	formatter.Printf("%s\n", styles.SubtitleStyle.Render("Created "+details.CreatedAt.Local().Format("2006-01-02 15:04")))
	for _, col := range details.Columns {
		formatter.Printf("  %d. %s %s  %d cards (ID: %d)\n",
			col.Position, col.Name, styles.RenderKind(col.Kind), col.CardCount, col.ID)
	}
	formatter.Printf("Total cards: %d\n", details.TotalCards())
	return nil
}
