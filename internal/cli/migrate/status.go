package migrate

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/cli/styles"
)

// StatusCmd returns the migrate status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List change-sets and whether they are applied",
		Long: `List every known change-set in execution order with its state.
Change-sets recorded in the database but missing from the binary are
reported as orphaned; applied change-sets whose SQL changed since are
reported as modified.

Examples:
  board migrate status
  board migrate status --quiet   # number of pending change-sets
`,
		RunE: runStatus,
	}

	cli.AddOutputFlags(cmd, "Print only the number of pending change-sets")

	return cmd
}

type statusJSON struct {
	ID        string  `json:"id"`
	Author    string  `json:"author"`
	Filename  string  `json:"filename"`
	Applied   bool    `json:"applied"`
	AppliedAt *string `json:"applied_at,omitempty"`
	Orphaned  bool    `json:"orphaned,omitempty"`
	Modified  bool    `json:"modified,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	a, release, err := cli.GetAppForMigrations(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() { _ = release() }()

	runner, err := a.Migrator()
	if err != nil {
		return cli.Fail(formatter, err)
	}

	entries, err := runner.Status(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	pending := 0
	for _, e := range entries {
		if !e.Applied {
			pending++
		}
	}

	if formatter.Quiet {
		formatter.PrintID(pending)
		return nil
	}

	if formatter.JSON {
		out := make([]statusJSON, 0, len(entries))
		for _, e := range entries {
			row := statusJSON{
				ID:       e.ID,
				Author:   e.Author,
				Filename: e.Filename,
				Applied:  e.Applied,
				Orphaned: e.Orphaned,
				Modified: e.Modified,
			}
			if e.AppliedAt != nil {
				s := e.AppliedAt.UTC().Format("2006-01-02T15:04:05Z")
				row.AppliedAt = &s
			}
			out = append(out, row)
		}
		return formatter.WriteJSON(map[string]interface{}{
			"success":    true,
			"pending":    pending,
			"changesets": out,
		})
	}

	for _, e := range entries {
		var state string
		switch {
		case e.Orphaned:
			state = styles.WarningStyle.Render("orphaned")
		case e.Modified:
			state = styles.ErrorStyle.Render("modified")
		case e.Applied:
			state = styles.SuccessStyle.Render("applied ")
		default:
			state = styles.WarningStyle.Render("pending ")
		}
		line := "  " + state + "  " + e.Filename + " (" + e.Author + ":" + e.ID + ")"
		if e.AppliedAt != nil {
			line += "  " + e.AppliedAt.Local().Format("2006-01-02 15:04")
		}
		formatter.Printf("%s\n", line)
	}
	formatter.Printf("\n%d change-set(s), %d pending\n", len(entries), pending)
	return nil
}
