package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// NextCmd returns the card next subcommand
func NextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Move a card to the next column",
		Long: `Advance a card one column. Cards never advance into the cancel column;
use 'board card cancel' for that.

Examples:
  board card next --id=3
`,
		RunE: runNext,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
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

	card, err := cliInstance.App.CardService.MoveCardToNext(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return writeMoved(formatter, card, "moved")
}
