package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/cli/styles"
	"github.com/thenoetrevino/board/internal/models"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards of a board or column",
		Long: `List the cards of a board in column order, or of a single column.

Examples:
  board card list --board=1
  board card list --column=3
  board card list --board=1 --blocked --json
`,
		RunE: runList,
	}

	cmd.Flags().Int("board", 0, "Board ID (uses BOARD_ID env var if not specified)")
	cmd.Flags().Int("column", 0, "Only list cards in this column")
	cmd.Flags().Bool("blocked", false, "Only list blocked cards")
	cmd.MarkFlagsMutuallyExclusive("column", "blocked")

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	columnID, _ := cmd.Flags().GetInt("column")
	blockedOnly, _ := cmd.Flags().GetBool("blocked")

	var boardID int
	if columnID == 0 {
		id, err := cli.GetBoardID(cmd)
		if err != nil {
			return cli.UsageError(formatter, err.Error(), "Set board with: eval $(board use board <board-id>)")
		}
		boardID = id
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	var cards []*models.CardSummary
	switch {
	case columnID != 0:
		cards, err = cliInstance.App.CardService.ListCardsByColumn(ctx, columnID)
	case blockedOnly:
		cards, err = cliInstance.App.CardService.ListBlockedCards(ctx, boardID)
	default:
		cards, err = cliInstance.App.CardService.ListCardsByBoard(ctx, boardID)
	}
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, c := range cards {
			formatter.PrintID(c.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"cards":   cards,
		})
	}

	if len(cards) == 0 {
		formatter.Printf("No cards found\n")
		return nil
	}

	current := ""
	for _, c := range cards {
		if c.ColumnName != current {
			current = c.ColumnName
			formatter.Printf("%s %s\n", styles.TitleStyle.Render(current), styles.RenderKind(c.ColumnKind))
		}
		line := c.Title
		if c.Blocked {
			line += " " + styles.RenderBlocked()
		}
		formatter.Printf("  %d - %s\n", c.ID, line)
	}
	return nil
}
