package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/models"
)

// BlockCmd returns the card block subcommand
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block a card",
		Long: `Block a card with a reason. The current OS user (or BOARD_USER) is
recorded as the person who blocked it.

Examples:
  board card block --id=3 --reason="Waiting on design review"
`,
		RunE: runBlock,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cmd.Flags().String("reason", "", "Why the card is blocked (required)")
	cli.MarkRequired(cmd, "id", "reason")

	cli.AddOutputFlags(cmd, "Minimal output (block ID only)")

	return cmd
}

// UnblockCmd returns the card unblock subcommand
func UnblockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unblock",
		Short: "Unblock a card",
		Long: `Close a card's active block with a reason.

Examples:
  board card unblock --id=3 --reason="Design approved"
`,
		RunE: runUnblock,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cmd.Flags().String("reason", "", "Why the card is unblocked (required)")
	cli.MarkRequired(cmd, "id", "reason")

	cli.AddOutputFlags(cmd, "Minimal output (block ID only)")

	return cmd
}

func runBlock(cmd *cobra.Command, args []string) error {
	return runBlockChange(cmd, true)
}

func runUnblock(cmd *cobra.Command, args []string) error {
	return runBlockChange(cmd, false)
}

func runBlockChange(cmd *cobra.Command, block bool) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.RequirePositive(cmd, "id")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}
	reason, _ := cmd.Flags().GetString("reason")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	var result *models.Block
	if block {
		result, err = cliInstance.App.CardService.BlockCard(ctx, id, reason)
	} else {
		result, err = cliInstance.App.CardService.UnblockCard(ctx, id, reason)
	}
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		formatter.PrintID(result.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"block":   result,
		})
	}

	if block {
		formatter.Printf("✓ Card %d blocked by %s\n", id, result.BlockedBy)
	} else {
		formatter.Printf("✓ Card %d unblocked by %s\n", id, result.UnblockedBy)
	}
	return nil
}
