package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards ordered by name.

Examples:
  board board list
  board board list --json
  board board list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	boards, err := cliInstance.App.BoardService.ListBoards(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for _, b := range boards {
			formatter.PrintID(b.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"boards":  boards,
		})
	}

	if len(boards) == 0 {
		formatter.Printf("No boards found\n")
		return nil
	}

	formatter.Printf("Boards:\n")
	for _, b := range boards {
		formatter.Printf("  %d - %s\n", b.ID, b.Name)
	}
	return nil
}
