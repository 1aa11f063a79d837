// Package card holds the `board card ...` commands
package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/models"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(NextCmd())
	cmd.AddCommand(BlockCmd())
	cmd.AddCommand(UnblockCmd())
	cmd.AddCommand(CancelCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(HistoryCmd())

	return cmd
}

// writeMoved reports a card that changed column, shared by move, next and cancel
func writeMoved(formatter *cli.OutputFormatter, card *models.CardSummary, verb string) error {
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card":    card,
		})
	}

	formatter.Printf("✓ Card %d %s\n", card.ID, verb)
	formatter.Printf("  Column: %s [%s]\n", card.ColumnName, card.ColumnKind)
	return nil
}
