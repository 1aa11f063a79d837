package board

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/testutil"
	"github.com/thenoetrevino/board/internal/testutil/cli"
)

func TestCreateBoard_Integration(t *testing.T) {
	tests := []struct {
		name         string
		flags        []string
		wantColumns  []string
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name:        "default columns",
			flags:       []string{"--name", "Sprint"},
			wantColumns: []string{"To Do", "In Progress", "Done", "Cancelled"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Board 'Sprint' created successfully")
				assert.Contains(t, output, "4. Cancelled [CANCEL]")
			},
		},
		{
			name:        "custom columns",
			flags:       []string{"--name", "Release", "--columns", "Backlog,Build,Shipped"},
			wantColumns: []string{"Backlog", "Build", "Shipped", "Cancelled"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "1. Backlog [INITIAL]")
				assert.Contains(t, output, "3. Shipped [FINAL]")
			},
		},
		{
			name:        "json output",
			flags:       []string{"--name", "Agent", "--json"},
			wantColumns: []string{"To Do", "In Progress", "Done", "Cancelled"},
			verifyOutput: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.True(t, result["success"].(bool))
				board := result["board"].(map[string]interface{})
				assert.Equal(t, "Agent", board["name"])
				assert.Len(t, board["columns"].([]interface{}), 4)
			},
		},
		{
			name:        "quiet output",
			flags:       []string{"--name", "Quiet", "--quiet"},
			wantColumns: []string{"To Do", "In Progress", "Done", "Cancelled"},
			verifyOutput: func(t *testing.T, output string) {
				assert.Regexp(t, `^\d+\n$`, output)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := cli.SetupCLITest(t)

			args := append([]string{"create"}, tt.flags...)
			output, _, err := cli.ExecuteCLICommand(t, app, BoardCmd(), args)
			require.NoError(t, err)
			tt.verifyOutput(t, output)

			boards, err := app.BoardService.ListBoards(context.Background())
			require.NoError(t, err)
			require.Len(t, boards, 1)
			details, err := app.BoardService.GetBoardDetails(context.Background(), boards[0].ID)
			require.NoError(t, err)
			var names []string
			for _, c := range details.Columns {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.wantColumns, names)
		})
	}
}

func TestCreateBoard_Validation(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, stderr, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"create", "--name", "   "})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
	assert.Contains(t, stderr, "board name cannot be empty")

	_, _, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"create", "--name", "X", "--columns", "Only"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestListAndShowBoards(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, db, "Beta")
	cli.CreateTestBoard(t, db, "Alpha")
	todo := testutil.ColumnIDByKind(t, db, b, "INITIAL")
	cli.CreateTestCard(t, db, todo, "Card")

	output, _, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Less(t, strings.Index(output, "Alpha"), strings.Index(output, "Beta"))

	output, _, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--id", fmt.Sprint(b), "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	board := result["board"].(map[string]interface{})
	cols := board["columns"].([]interface{})
	assert.Equal(t, float64(1), cols[0].(map[string]interface{})["card_count"])

	output, _, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--id", fmt.Sprint(b)})
	require.NoError(t, err)
	assert.Contains(t, output, "Beta")
	assert.Contains(t, output, "Total cards: 1")

	_, _, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--id", "999"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

func TestRenameBoard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, db, "Old")

	output, _, err := cli.ExecuteCLICommand(t, app, BoardCmd(),
		[]string{"rename", "--id", fmt.Sprint(b), "--name", "New"})
	require.NoError(t, err)
	assert.Contains(t, output, "'Old' → 'New'")

	got, err := app.BoardService.GetBoard(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}

func TestDeleteBoard(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, db, "Doomed")

	// declining the prompt keeps the board
	cmd := BoardCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	output, _, err := cli.ExecuteCLICommand(t, app, cmd, []string{"delete", "--id", fmt.Sprint(b)})
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")
	assert.Equal(t, 1, testutil.CountRows(t, db, "boards"))

	cmd = BoardCmd()
	cmd.SetIn(strings.NewReader("y\n"))
	output, _, err = cli.ExecuteCLICommand(t, app, cmd, []string{"delete", "--id", fmt.Sprint(b)})
	require.NoError(t, err)
	assert.Contains(t, output, "deleted successfully")
	assert.Equal(t, 0, testutil.CountRows(t, db, "boards"))
	assert.Equal(t, 0, testutil.CountRows(t, db, "board_columns"))
}

func TestExportBoardToFile(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, db, "Snap")
	path := filepath.Join(t.TempDir(), "snap.json")

	output, _, err := cli.ExecuteCLICommand(t, app, BoardCmd(),
		[]string{"export", "--id", fmt.Sprint(b), "--out", path, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, path+"\n", output)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Len(t, snap["columns"].([]interface{}), 4)
}

func TestExportBoardRequiresDestination(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, db, "Snap")

	_, _, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"export", "--id", fmt.Sprint(b)})
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}
