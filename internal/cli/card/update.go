package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a card's title or description",
		Long: `Update a card. Flags left out keep their current value.
Blocked and finished cards cannot be updated.

Examples:
  board card update --id=3 --title="Fix login on Safari"
  board card update --id=3 --description="Repro in staging"
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cli.MarkRequired(cmd, "id")

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.MarkFlagsOneRequired("title", "description")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	current, err := cliInstance.App.CardService.GetCard(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	title, description := current.Title, current.Description
	if cmd.Flags().Changed("title") {
		title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		description, _ = cmd.Flags().GetString("description")
	}

	card, err := cliInstance.App.CardService.UpdateCard(ctx, id, title, description)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card":    card,
		})
	}

	formatter.Printf("✓ Card %d updated successfully\n", card.ID)
	return nil
}
