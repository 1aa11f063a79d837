package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// CancelCmd returns the card cancel subcommand
func CancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Move a card to the cancel column",
		Long: `Cancel a card. Blocked and already finished cards cannot be cancelled.

Examples:
  board card cancel --id=3
`,
		RunE: runCancel,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runCancel(cmd *cobra.Command, args []string) error {
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

	card, err := cliInstance.App.CardService.CancelCard(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return writeMoved(formatter, card, "cancelled")
}
