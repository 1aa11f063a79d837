package card

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		Long: `Delete a card and its block history (requires confirmation unless --force or --quiet).
Blocked cards cannot be deleted.

Examples:
  board card delete --id=3
  board card delete --id=3 --force
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cli.MarkRequired(cmd, "id")

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.RequirePositive(cmd, "id")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.GetCard(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Delete card #%d: '%s'? (y/N): ", id, card.Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	if err := cliInstance.App.CardService.DeleteCard(ctx, id); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card_id": id,
		})
	}

	formatter.Printf("✓ Card %d deleted successfully\n", id)
	return nil
}
