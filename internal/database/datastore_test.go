package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/board/internal/database"
	"github.com/thenoetrevino/board/internal/models"
	"github.com/thenoetrevino/board/internal/testutil"
)

func TestInTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)

	boom := errors.New("boom")
	err := store.InTx(ctx, func(q *database.Queries) error {
		board, err := q.CreateBoard(ctx, "Half made")
		if err != nil {
			return err
		}
		if _, err := q.CreateColumn(ctx, board.ID, "To Do", 1, models.ColumnKindInitial); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}

	if n := testutil.CountRows(t, db, "boards"); n != 0 {
		t.Errorf("Expected rollback to remove board, %d left", n)
	}
	if n := testutil.CountRows(t, db, "board_columns"); n != 0 {
		t.Errorf("Expected rollback to remove columns, %d left", n)
	}
}

func TestInTxCommits(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)

	err := store.InTx(ctx, func(q *database.Queries) error {
		_, err := q.CreateBoard(ctx, "Committed")
		return err
	})
	if err != nil {
		t.Fatalf("InTx failed: %v", err)
	}
	if n := testutil.CountRows(t, db, "boards"); n != 1 {
		t.Errorf("Expected 1 board, got %d", n)
	}
	if store.Dialect() != database.DialectSQLite {
		t.Errorf("Unexpected dialect %s", store.Dialect())
	}
}
