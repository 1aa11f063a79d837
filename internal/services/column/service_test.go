package column

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/board/internal/models"
	"github.com/thenoetrevino/board/internal/testutil"
)

func TestListColumns(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	svc := NewService(store)
	boardID := testutil.CreateTestBoard(t, db, "Board")

	cols, err := svc.ListColumns(ctx, boardID)
	require.NoError(t, err)
	require.Len(t, cols, 4)
	assert.Equal(t, models.ColumnKindInitial, cols[0].Kind)
	assert.Equal(t, models.ColumnKindCancel, cols[3].Kind)

	_, err = svc.ListColumns(ctx, 999)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	_, err = svc.ListColumns(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidBoardID)
}

func TestAddColumnGoesBeforeFinal(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	svc := NewService(store)
	boardID := testutil.CreateTestBoard(t, db, "Board")

	col, err := svc.AddColumn(ctx, boardID, " Review ")
	require.NoError(t, err)
	assert.Equal(t, "Review", col.Name)
	assert.Equal(t, models.ColumnKindPending, col.Kind)
	assert.Equal(t, 3, col.Position)

	cols, err := svc.ListColumns(ctx, boardID)
	require.NoError(t, err)
	got := make([]string, len(cols))
	for i, c := range cols {
		got[i] = c.Name
		assert.Equal(t, i+1, c.Position)
	}
	assert.Equal(t, []string{"To Do", "In Progress", "Review", "Done", "Cancelled"}, got)
}

func TestAddColumnValidation(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	svc := NewService(store)
	boardID := testutil.CreateTestBoard(t, db, "Board")

	_, err := svc.AddColumn(ctx, boardID, "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.AddColumn(ctx, boardID, "this column name is far too long to be accepted by anyone")
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = svc.AddColumn(ctx, boardID, "in progress")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = svc.AddColumn(ctx, 999, "Review")
	assert.ErrorIs(t, err, ErrBoardNotFound)

	board, err := store.CreateBoard(ctx, "No columns")
	require.NoError(t, err)
	_, err = svc.AddColumn(ctx, board.ID, "Review")
	assert.ErrorIs(t, err, ErrMissingFinalColumn)
}

func TestRenameColumn(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	svc := NewService(store)
	boardID := testutil.CreateTestBoard(t, db, "Board")
	todo := testutil.ColumnIDByKind(t, db, boardID, models.ColumnKindInitial)

	require.NoError(t, svc.RenameColumn(ctx, todo, "Backlog"))
	col, err := svc.GetColumn(ctx, todo)
	require.NoError(t, err)
	assert.Equal(t, "Backlog", col.Name)

	// Changing only the case of its own name is allowed
	require.NoError(t, svc.RenameColumn(ctx, todo, "BACKLOG"))

	assert.ErrorIs(t, svc.RenameColumn(ctx, todo, "Done"), ErrDuplicateName)
	assert.ErrorIs(t, svc.RenameColumn(ctx, 999, "x"), ErrColumnNotFound)
	assert.ErrorIs(t, svc.RenameColumn(ctx, todo, " "), ErrEmptyName)
}

func TestDeleteColumn(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	svc := NewService(store)
	boardID := testutil.CreateTestBoard(t, db, "Board")

	for _, kind := range []models.ColumnKind{models.ColumnKindInitial, models.ColumnKindFinal, models.ColumnKindCancel} {
		id := testutil.ColumnIDByKind(t, db, boardID, kind)
		assert.ErrorIs(t, svc.DeleteColumn(ctx, id), ErrProtectedColumn, kind)
	}

	pending := testutil.ColumnIDByKind(t, db, boardID, models.ColumnKindPending)
	card := testutil.CreateTestCard(t, db, pending, "busy")
	assert.ErrorIs(t, svc.DeleteColumn(ctx, pending), ErrColumnHasCards)

	_, err := db.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", card)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteColumn(ctx, pending))

	cols, err := svc.ListColumns(ctx, boardID)
	require.NoError(t, err)
	require.Len(t, cols, 3)
	for i, c := range cols {
		assert.Equal(t, i+1, c.Position, c.Name)
	}

	_, err = svc.GetColumn(ctx, pending)
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.ErrorIs(t, svc.DeleteColumn(ctx, pending), ErrColumnNotFound)
}
