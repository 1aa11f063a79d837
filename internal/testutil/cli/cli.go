// Package cli holds helpers for testing cobra commands against an in-memory
// database. It lives apart from testutil so service tests, which testutil
// serves, never import the CLI packages.
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/app"
	clipkg "github.com/thenoetrevino/board/internal/cli"
	"github.com/thenoetrevino/board/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db, store := testutil.SetupTestStore(t)
	return db, app.New(store, app.WithUserFunc(func() string { return "tester" }))
}

// ExecuteCLICommand runs cmd with args against testApp and returns stdout and
// stderr separately
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	testutil.SetupCobraCommand(cmd, args)

	err := cmd.ExecuteContext(clipkg.WithApp(context.Background(), testApp))
	return stdout.String(), stderr.String(), err
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
func CreateTestBoard(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return testutil.CreateTestBoard(t, db, name)
}

// CreateTestCard wraps testutil.CreateTestCard for CLI tests
func CreateTestCard(t *testing.T, db *sql.DB, columnID int, title string) int {
	t.Helper()
	return testutil.CreateTestCard(t, db, columnID, title)
}
