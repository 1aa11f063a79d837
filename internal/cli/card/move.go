package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to another column",
		Long: `Move a card to another column of the same board.

Blocked cards cannot move. Finished and cancelled cards can only move to
the final column.

Examples:
  board card move --id=3 --column=7
  board card move --id=3 --column=7 --json
`,
		RunE: runMove,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cmd.Flags().Int("column", 0, "Target column ID (required)")
	cli.MarkRequired(cmd, "id", "column")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.RequirePositive(cmd, "id")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}
	columnID, err := cli.RequirePositive(cmd, "column")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.MoveCard(ctx, id, columnID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return writeMoved(formatter, card, "moved")
}
