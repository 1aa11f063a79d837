package use

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Pick the board that later commands default to",
		Long: `Print the shell line that makes a board the default for card and
column commands, so --board can be left out. Wrap the call in eval:

  eval $(board use board 3)         # cards and columns now target board 3
  eval $(board use board --clear)   # forget the default
  board use board --show            # which board is the default?

Only stdout is meant for eval; status messages go to stderr. An explicit
--board flag always beats the default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseBoard,
	}

	cmd.Flags().Bool("clear", false, "Print the line that removes the default board")
	cmd.Flags().Bool("show", false, "Report the default board of this shell")
	cmd.Flags().Bool("dry-run", false, "Describe the change on stderr and print nothing for eval")

	return cmd
}

func runUseBoard(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	switch {
	case showFlag:
		return showCurrentBoard(cmd)
	case clearFlag:
		return emit(formatter, dryRun, "unset "+cli.EnvBoardID, "default board cleared")
	case len(args) == 0:
		return cli.UsageError(formatter, "board ID required", "Usage: eval $(board use board <board-id>)")
	}

	boardID, err := strconv.Atoi(args[0])
	if err != nil || boardID <= 0 {
		return cli.UsageError(formatter, fmt.Sprintf("invalid board ID: %s", args[0]), "")
	}

	ctx := cmd.Context()
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	board, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	return emit(formatter,
		dryRun,
		fmt.Sprintf("export %s=%d", cli.EnvBoardID, board.ID),
		fmt.Sprintf("default board is now #%d '%s'", board.ID, board.Name),
	)
}

// emit prints line for eval and note for the user, or in a dry run only
// describes what line would have been printed
func emit(formatter *cli.OutputFormatter, dryRun bool, line, note string) error {
	if dryRun {
		fmt.Fprintf(formatter.Err, "dry run: eval would receive %q\n", line)
		return nil
	}
	fmt.Fprintln(formatter.Out, line)
	fmt.Fprintln(formatter.Err, note)
	return nil
}

func showCurrentBoard(cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	current := os.Getenv(cli.EnvBoardID)
	if current == "" {
		formatter.Printf("No default board in this shell\n")
		formatter.Printf("Pick one with: eval $(board use board <board-id>)\n")
		return nil
	}

	boardID, err := strconv.Atoi(current)
	if err != nil {
		formatter.Printf("%s holds %q, which is not a board ID\n", cli.EnvBoardID, current)
		return nil
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	board, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		formatter.Printf("Default board #%d no longer exists\n", boardID)
		return nil
	}

	formatter.Printf("Default board: #%d '%s'\n", board.ID, board.Name)
	return nil
}
