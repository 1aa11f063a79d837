// Package cmd assembles the board command tree
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/app"
	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/cli/board"
	"github.com/thenoetrevino/board/internal/cli/card"
	"github.com/thenoetrevino/board/internal/cli/column"
	"github.com/thenoetrevino/board/internal/cli/migrate"
	"github.com/thenoetrevino/board/internal/cli/use"
	"github.com/thenoetrevino/board/internal/config"
	"github.com/thenoetrevino/board/internal/console"
)

// NewRootCmd builds the board command. Run without a subcommand it starts
// the interactive console.
func NewRootCmd() *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board - a console kanban board",
		Long: `Board manages kanban boards, their columns and cards, and the blocks
that hold cards in place. Run it without arguments for the interactive menu,
or use the subcommands from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(cli.WithOptions(cmd.Context(), opts))
		},
		RunE: runConsole,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/board/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Dotenv file to load (default ./.env when present)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &cli.CommandError{Code: cli.ExitUsage, Err: err}
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Start the interactive console",
		Args:  cobra.NoArgs,
		RunE:  runConsole,
	})
	cmd.AddCommand(board.BoardCmd())
	cmd.AddCommand(column.ColumnCmd())
	cmd.AddCommand(card.CardCmd())
	cmd.AddCommand(migrate.MigrateCmd())
	cmd.AddCommand(use.UseCmd())

	return cmd
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := app.Bootstrap(ctx, cli.OptionsFromContext(ctx))
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	return console.New(a, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}

// Execute runs the command tree with os.Args
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
