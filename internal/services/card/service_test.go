package card

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/board/internal/models"
	"github.com/thenoetrevino/board/internal/testutil"
)

type fixture struct {
	db      *sql.DB
	svc     Service
	boardID int
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, store := testutil.SetupTestStore(t)
	return &fixture{
		db:      db,
		svc:     NewService(store, WithUserFunc(func() string { return "alice" })),
		boardID: testutil.CreateTestBoard(t, db, "Sprint"),
	}
}

func (f *fixture) column(t *testing.T, kind models.ColumnKind) int {
	t.Helper()
	return testutil.ColumnIDByKind(t, f.db, f.boardID, kind)
}

func (f *fixture) card(t *testing.T, title string) *models.Card {
	t.Helper()
	c, err := f.svc.CreateCard(context.Background(), f.boardID, title, "")
	require.NoError(t, err)
	return c
}

func TestCreateCardLandsInInitialColumn(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c, err := f.svc.CreateCard(ctx, f.boardID, "  Write docs ", " first draft ")
	require.NoError(t, err)
	assert.Equal(t, "Write docs", c.Title)
	assert.Equal(t, "first draft", c.Description)
	assert.Equal(t, f.column(t, models.ColumnKindInitial), c.ColumnID)
}

func TestCreateCardValidation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tests := []struct {
		name    string
		boardID int
		title   string
		wantErr error
	}{
		{"empty title", f.boardID, "   ", ErrEmptyTitle},
		{"title too long", f.boardID, strings.Repeat("x", models.MaxCardTitleLength+1), ErrTitleTooLong},
		{"invalid board", 0, "ok", ErrInvalidBoardID},
		{"missing board", 9999, "ok", ErrBoardNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateCard(ctx, tt.boardID, tt.title, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "cards"))
}

func TestUpdateCard(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.card(t, "Old")

	updated, err := f.svc.UpdateCard(ctx, c.ID, "New", "details")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "details", updated.Description)

	_, err = f.svc.UpdateCard(ctx, 9999, "x", "")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestBlockedCardIsFrozen(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.card(t, "Stuck")

	_, err := f.svc.BlockCard(ctx, c.ID, "waiting on vendor")
	require.NoError(t, err)

	_, err = f.svc.UpdateCard(ctx, c.ID, "x", "")
	assert.ErrorIs(t, err, ErrCardBlocked)
	_, err = f.svc.MoveCard(ctx, c.ID, f.column(t, models.ColumnKindPending))
	assert.ErrorIs(t, err, ErrCardBlocked)
	_, err = f.svc.MoveCardToNext(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCardBlocked)
	_, err = f.svc.CancelCard(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCardBlocked)
	assert.ErrorIs(t, f.svc.DeleteCard(ctx, c.ID), ErrCardBlocked)
	_, err = f.svc.BlockCard(ctx, c.ID, "again")
	assert.ErrorIs(t, err, ErrCardBlocked)

	got, err := f.svc.GetCard(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stuck", got.Title)
	assert.Equal(t, f.column(t, models.ColumnKindInitial), got.ColumnID)
}

func TestFinishedCardRules(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	done := f.card(t, "Done one")
	cancelled := f.card(t, "Dropped")

	_, err := f.svc.MoveCard(ctx, done.ID, f.column(t, models.ColumnKindFinal))
	require.NoError(t, err)
	_, err = f.svc.CancelCard(ctx, cancelled.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateCard(ctx, done.ID, "x", "")
	assert.ErrorIs(t, err, ErrCardFinished)
	_, err = f.svc.BlockCard(ctx, done.ID, "why")
	assert.ErrorIs(t, err, ErrCardFinished)
	_, err = f.svc.MoveCardToNext(ctx, done.ID)
	assert.ErrorIs(t, err, ErrCardFinished)
	_, err = f.svc.CancelCard(ctx, done.ID)
	assert.ErrorIs(t, err, ErrCardFinished)
	_, err = f.svc.MoveCard(ctx, done.ID, f.column(t, models.ColumnKindInitial))
	assert.ErrorIs(t, err, ErrCardFinished)

	// a cancelled card may still be moved to the final column
	moved, err := f.svc.MoveCard(ctx, cancelled.ID, f.column(t, models.ColumnKindFinal))
	require.NoError(t, err)
	assert.Equal(t, models.ColumnKindFinal, moved.ColumnKind)

	// finished cards can still be deleted
	require.NoError(t, f.svc.DeleteCard(ctx, done.ID))
	_, err = f.svc.GetCard(ctx, done.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestMoveCardToNextStopsBeforeCancel(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.card(t, "Flow")

	moved, err := f.svc.MoveCardToNext(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ColumnKindPending, moved.ColumnKind)

	moved, err = f.svc.MoveCardToNext(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ColumnKindFinal, moved.ColumnKind)

	_, err = f.svc.MoveCardToNext(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCardFinished)
}

func TestMoveCardErrors(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.card(t, "Card")
	otherBoard := testutil.CreateTestBoard(t, f.db, "Other")
	otherColumn := testutil.ColumnIDByKind(t, f.db, otherBoard, models.ColumnKindPending)

	_, err := f.svc.MoveCard(ctx, c.ID, otherColumn)
	assert.ErrorIs(t, err, ErrColumnOnOtherBoard)

	_, err = f.svc.MoveCard(ctx, c.ID, f.column(t, models.ColumnKindInitial))
	assert.ErrorIs(t, err, ErrAlreadyInColumn)

	_, err = f.svc.MoveCard(ctx, c.ID, 9999)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = f.svc.MoveCard(ctx, 9999, otherColumn)
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = f.svc.MoveCard(ctx, c.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidColumnID)
}

func TestBlockAndUnblockHistory(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.card(t, "Card")

	_, err := f.svc.UnblockCard(ctx, c.ID, "nothing to do")
	assert.ErrorIs(t, err, ErrCardNotBlocked)

	_, err = f.svc.BlockCard(ctx, c.ID, "  ")
	assert.ErrorIs(t, err, ErrEmptyReason)
	_, err = f.svc.BlockCard(ctx, c.ID, strings.Repeat("r", models.MaxReasonLength+1))
	assert.ErrorIs(t, err, ErrReasonTooLong)

	first, err := f.svc.BlockCard(ctx, c.ID, "waiting on review")
	require.NoError(t, err)
	assert.Equal(t, "alice", first.BlockedBy)
	assert.True(t, first.IsActive())

	details, err := f.svc.GetCardDetails(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, details.Blocked)
	assert.Equal(t, "waiting on review", details.BlockReason)
	assert.Equal(t, "alice", details.BlockedBy)
	require.NotNil(t, details.BlockedAt)

	closed, err := f.svc.UnblockCard(ctx, c.ID, "reviewed")
	require.NoError(t, err)
	assert.Equal(t, first.ID, closed.ID)
	assert.False(t, closed.IsActive())
	assert.Equal(t, "reviewed", closed.UnblockReason)
	assert.Equal(t, "alice", closed.UnblockedBy)

	_, err = f.svc.BlockCard(ctx, c.ID, "again")
	require.NoError(t, err)

	history, err := f.svc.GetBlockHistory(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].IsActive())
	assert.Equal(t, first.ID, history[1].ID)

	details, err = f.svc.GetCardDetails(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, details.BlockCount)
}

func TestListCards(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	a := f.card(t, "A")
	b := f.card(t, "B")
	_, err := f.svc.MoveCardToNext(ctx, b.ID)
	require.NoError(t, err)
	_, err = f.svc.BlockCard(ctx, a.ID, "reason")
	require.NoError(t, err)

	all, err := f.svc.ListCardsByBoard(ctx, f.boardID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, b.ID, all[1].ID)

	pending, err := f.svc.ListCardsByColumn(ctx, f.column(t, models.ColumnKindPending))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, b.ID, pending[0].ID)

	blocked, err := f.svc.ListBlockedCards(ctx, f.boardID)
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, a.ID, blocked[0].ID)

	_, err = f.svc.ListCardsByBoard(ctx, 9999)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	_, err = f.svc.ListCardsByColumn(ctx, 9999)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestDeleteCardRemovesHistory(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := f.card(t, "Card")

	_, err := f.svc.BlockCard(ctx, c.ID, "r")
	require.NoError(t, err)
	_, err = f.svc.UnblockCard(ctx, c.ID, "r")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteCard(ctx, c.ID))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "cards"))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "blocks"))
	assert.ErrorIs(t, f.svc.DeleteCard(ctx, c.ID), ErrCardNotFound)
}
