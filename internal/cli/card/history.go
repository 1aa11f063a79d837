package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// HistoryCmd returns the card history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show a card's block history",
		Long: `List every block a card has had, most recent first.

Examples:
  board card history --id=3
  board card history --id=3 --json
`,
		RunE: runHistory,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd, "Minimal output (block IDs only)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	blocks, err := cliInstance.App.CardService.GetBlockHistory(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, b := range blocks {
			formatter.PrintID(b.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"blocks":  blocks,
		})
	}

	if len(blocks) == 0 {
		formatter.Printf("Card %d has never been blocked\n", id)
		return nil
	}

	const layout = "2006-01-02 15:04"
	for _, b := range blocks {
		formatter.Printf("%s  blocked by %s: %s\n", b.BlockedAt.Local().Format(layout), b.BlockedBy, b.BlockReason)
		if b.IsActive() {
			formatter.Printf("  still blocked\n")
			continue
		}
		formatter.Printf("%s  unblocked by %s: %s\n", b.UnblockedAt.Local().Format(layout), b.UnblockedBy, b.UnblockReason)
	}
	return nil
}
