// Package use holds the commands that set shell context, e.g. board use board 3
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Set context for the current shell session",
	}

	cmd.AddCommand(BoardCmd())

	return cmd
}
