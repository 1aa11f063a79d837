package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/board/internal/database"
	"github.com/thenoetrevino/board/internal/database/migrate"
	"github.com/thenoetrevino/board/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema applied
// by the real migrations.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// An in-memory database lives on a single connection
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	runner, err := migrate.New(db, database.DialectSQLite)
	if err != nil {
		t.Fatalf("Failed to load migrations: %v", err)
	}
	if _, err := runner.Up(context.Background()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// SetupTestStore wraps SetupTestDB in a database.Store
func SetupTestStore(t *testing.T) (*sql.DB, *database.Store) {
	t.Helper()
	db := SetupTestDB(t)
	return db, database.NewStore(db, database.DialectSQLite)
}

// CreateTestBoard creates a board with the default columns
// (To Do, In Progress, Done, Cancelled) and returns its ID
func CreateTestBoard(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	ctx := context.Background()

	result, err := db.ExecContext(ctx, "INSERT INTO boards (name, created_at) VALUES (?, ?)", name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get board ID: %v", err)
	}

	columns := []struct {
		name string
		kind models.ColumnKind
	}{
		{models.DefaultInitialColumnName, models.ColumnKindInitial},
		{models.DefaultPendingColumnName, models.ColumnKindPending},
		{models.DefaultFinalColumnName, models.ColumnKindFinal},
		{models.DefaultCancelColumnName, models.ColumnKindCancel},
	}
	for i, col := range columns {
		_, err := db.ExecContext(ctx,
			"INSERT INTO board_columns (board_id, name, position, kind) VALUES (?, ?, ?, ?)",
			id, col.name, i+1, string(col.kind))
		if err != nil {
			t.Fatalf("Failed to create test column %q: %v", col.name, err)
		}
	}

	return int(id)
}

// ColumnIDByKind returns the first column of the given kind on a board
func ColumnIDByKind(t *testing.T, db *sql.DB, boardID int, kind models.ColumnKind) int {
	t.Helper()
	var id int
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM board_columns WHERE board_id = ? AND kind = ? ORDER BY position LIMIT 1",
		boardID, string(kind)).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to find %s column of board %d: %v", kind, boardID, err)
	}
	return id
}

// CreateTestCard creates a card in a column and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID int, title string) int {
	t.Helper()
	now := time.Now().UTC()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO cards (column_id, title, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		columnID, title, "", now, now)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get card ID: %v", err)
	}
	return int(id)
}

// BlockTestCard opens a block on a card
func BlockTestCard(t *testing.T, db *sql.DB, cardID int, reason string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO blocks (card_id, blocked_at, block_reason, blocked_by) VALUES (?, ?, ?, ?)",
		cardID, time.Now().UTC(), reason, "tester")
	if err != nil {
		t.Fatalf("Failed to block test card: %v", err)
	}
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
