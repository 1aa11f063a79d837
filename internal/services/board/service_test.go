package board

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/board/internal/models"
	"github.com/thenoetrevino/board/internal/testutil"
)

func setup(t *testing.T) Service {
	t.Helper()
	_, store := testutil.SetupTestStore(t)
	return NewService(store)
}

func kinds(cols []*models.ColumnSummary) []models.ColumnKind {
	out := make([]models.ColumnKind, len(cols))
	for i, c := range cols {
		out[i] = c.Kind
	}
	return out
}

func names(cols []*models.ColumnSummary) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

func TestCreateBoardDefaultColumns(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	board, err := svc.CreateBoard(ctx, "  Sprint 1  ")
	require.NoError(t, err)
	assert.Equal(t, "Sprint 1", board.Name)

	details, err := svc.GetBoardDetails(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sprint 1", details.Name)
	assert.Equal(t, []models.ColumnKind{
		models.ColumnKindInitial,
		models.ColumnKindPending,
		models.ColumnKindFinal,
		models.ColumnKindCancel,
	}, kinds(details.Columns))
	assert.Equal(t, []string{"To Do", "In Progress", "Done", "Cancelled"}, names(details.Columns))
	for i, c := range details.Columns {
		assert.Equal(t, i+1, c.Position)
		assert.Zero(t, c.CardCount)
	}
}

func TestCreateBoardWithColumns(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	board, err := svc.CreateBoardWithColumns(ctx, "Custom", []string{"A", " B ", "C"})
	require.NoError(t, err)

	details, err := svc.GetBoardDetails(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Cancelled"}, names(details.Columns))
	assert.Equal(t, []models.ColumnKind{
		models.ColumnKindInitial,
		models.ColumnKindPending,
		models.ColumnKindFinal,
		models.ColumnKindCancel,
	}, kinds(details.Columns))

	two, err := svc.CreateBoardWithColumns(ctx, "Two", []string{"Start", "End"})
	require.NoError(t, err)
	details, err = svc.GetBoardDetails(ctx, two.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.ColumnKind{
		models.ColumnKindInitial,
		models.ColumnKindFinal,
		models.ColumnKindCancel,
	}, kinds(details.Columns))
}

func TestCreateBoardValidation(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	tests := []struct {
		name    string
		board   string
		columns []string
		wantErr error
	}{
		{"empty name", "   ", nil, ErrEmptyName},
		{"name too long", strings.Repeat("x", 101), nil, ErrNameTooLong},
		{"one column", "B", []string{"Only"}, ErrTooFewColumns},
		{"empty column", "B", []string{"A", " "}, ErrEmptyColumnName},
		{"long column", "B", []string{"A", strings.Repeat("c", 51)}, ErrColumnNameTooLong},
		{"duplicate column", "B", []string{"Todo", "todo"}, ErrDuplicateColumnName},
		{"reserved cancel name", "B", []string{"Todo", "cancelled"}, ErrDuplicateColumnName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.columns == nil {
				_, err = svc.CreateBoard(ctx, tt.board)
			} else {
				_, err = svc.CreateBoardWithColumns(ctx, tt.board, tt.columns)
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	boards, err := svc.ListBoards(ctx)
	require.NoError(t, err)
	assert.Empty(t, boards, "failed creations must not leave boards behind")
}

func TestRenameBoard(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	board, err := svc.CreateBoard(ctx, "Old")
	require.NoError(t, err)

	require.NoError(t, svc.RenameBoard(ctx, board.ID, "New"))
	got, err := svc.GetBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)

	assert.ErrorIs(t, svc.RenameBoard(ctx, board.ID, ""), ErrEmptyName)
	assert.ErrorIs(t, svc.RenameBoard(ctx, 999, "x"), ErrBoardNotFound)
	assert.ErrorIs(t, svc.RenameBoard(ctx, 0, "x"), ErrInvalidBoardID)
}

func TestDeleteBoard(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	svc := NewService(store)

	board, err := svc.CreateBoard(ctx, "Doomed")
	require.NoError(t, err)
	todo := testutil.ColumnIDByKind(t, db, board.ID, models.ColumnKindInitial)
	card := testutil.CreateTestCard(t, db, todo, "card")
	testutil.BlockTestCard(t, db, card, "reason")

	require.NoError(t, svc.DeleteBoard(ctx, board.ID))

	_, err = svc.GetBoard(ctx, board.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	for _, table := range []string{"boards", "board_columns", "cards", "blocks"} {
		assert.Zero(t, testutil.CountRows(t, db, table), table)
	}

	assert.ErrorIs(t, svc.DeleteBoard(ctx, board.ID), ErrBoardNotFound)
}

func TestGetBoardDetailsCountsCards(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	svc := NewService(store)

	board, err := svc.CreateBoard(ctx, "Counted")
	require.NoError(t, err)
	todo := testutil.ColumnIDByKind(t, db, board.ID, models.ColumnKindInitial)
	testutil.CreateTestCard(t, db, todo, "one")
	testutil.CreateTestCard(t, db, todo, "two")

	details, err := svc.GetBoardDetails(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, details.Columns[0].CardCount)
	assert.Equal(t, 2, details.TotalCards())

	_, err = svc.GetBoardDetails(ctx, 12345)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestListBoardsByName(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	for _, n := range []string{"b", "c", "a"} {
		_, err := svc.CreateBoard(ctx, n)
		require.NoError(t, err)
	}
	boards, err := svc.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 3)
	assert.Equal(t, "a", boards[0].Name)
	assert.Equal(t, "c", boards[2].Name)
}
