package board

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/export"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a board snapshot as JSON",
		Long: `Export a board, its columns and their cards as a JSON snapshot.

The snapshot goes to a local file with --out, or to the S3-compatible bucket
from the export configuration with --s3-key (use --s3 to pick a generated
key under boards/<id>/).

Examples:
  board board export --id=1 --out=backup/sprint.json
  board board export --id=1 --s3-key=archive/sprint-12.json
  board board export --id=1 --s3
`,
		RunE: runExport,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
	cli.MarkRequired(cmd, "id")

	cmd.Flags().String("out", "", "Write the snapshot to this file")
	cmd.Flags().String("s3-key", "", "Upload the snapshot to this key in the export bucket")
	cmd.Flags().Bool("s3", false, "Upload the snapshot under a generated key")
	cmd.MarkFlagsMutuallyExclusive("out", "s3-key", "s3")

	cli.AddOutputFlags(cmd, "Minimal output (location only)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.RequirePositive(cmd, "id")
	if err != nil {
		return cli.UsageError(formatter, err.Error(), "")
	}
	out, _ := cmd.Flags().GetString("out")
	key, _ := cmd.Flags().GetString("s3-key")
	toS3, _ := cmd.Flags().GetBool("s3")
	if out == "" && key == "" && !toS3 {
		return cli.UsageError(formatter, "one of --out, --s3-key or --s3 is required",
			"board board export --id=1 --out=board.json")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	var sink export.Sink
	if out != "" {
		sink = export.FileSink{Path: out}
	} else {
		if key == "" {
			key = export.DefaultKey(id, time.Now())
		}
		s3Sink, err := export.NewS3Sink(ctx, cliInstance.App.Config.Export, key)
		if err != nil {
			return cli.Fail(formatter, err)
		}
		sink = s3Sink
	}

	location, err := cliInstance.App.Exporter.Export(ctx, id, sink)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		_, err := cmd.OutOrStdout().Write([]byte(location + "\n"))
		return err
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]interface{}{
			"success":  true,
			"board_id": id,
			"location": location,
		})
	}

	formatter.Printf("✓ Board %d exported to %s\n", id, location)
	return nil
}
