package card

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/cli/styles"
	"github.com/thenoetrevino/board/internal/models"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show card details",
		Long: `Show a card with its column, block state and rendered description.

Examples:
  board card show --id=3
  board card show --id=3 --json
`,
		RunE: runShow,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	details, err := cliInstance.App.CardService.GetCardDetails(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		formatter.PrintID(details.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"card":    details,
		})
	}

	formatter.Printf("%s\n", styles.RenderCard(renderDetails(details)))
	return nil
}

func renderDetails(d *models.CardDetails) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", d.ID, d.Title)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value) + "\n")
	}
	field("Column", d.ColumnName+" "+styles.RenderKind(d.ColumnKind))
	field("Created", d.CreatedAt.Local().Format("2006-01-02 15:04"))
	field("Updated", d.UpdatedAt.Local().Format("2006-01-02 15:04"))

	if d.Blocked {
		b.WriteString(styles.RenderBlocked() + "\n")
		field("Reason", d.BlockReason)
		field("Blocked by", d.BlockedBy)
		if d.BlockedAt != nil {
			field("Blocked at", d.BlockedAt.Local().Format("2006-01-02 15:04"))
		}
	}
	field("Times blocked", fmt.Sprint(d.BlockCount))

	b.WriteString("\n")
	b.WriteString(styles.RenderMarkdown(d.Description, styles.CardWidth-4))
	return b.String()
}
