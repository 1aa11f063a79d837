package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card",
		Long: `Create a card in the board's initial column.

Examples:
  board card create --board=1 --title="Write release notes"
  board card create --title="Fix login" --description="Steps in **ticket**"

  # Quiet mode for bash capture
  CARD_ID=$(board card create --board=1 --title="Fix login" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Card title (required)")
	cli.MarkRequired(cmd, "title")

	cmd.Flags().String("description", "", "Card description (markdown)")
	cmd.Flags().Int("board", 0, "Board ID (uses BOARD_ID env var if not specified)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "Set board with: eval $(board use board <board-id>)")
	}
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.CreateCard(ctx, boardID, title, description)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		formatter.PrintID(card.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card":    card,
		})
	}

	formatter.Printf("✓ Card '%s' created successfully (ID: %d)\n", card.Title, card.ID)
	return nil
}
