package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/board/internal/database"
	"github.com/thenoetrevino/board/internal/models"
	"github.com/thenoetrevino/board/internal/testutil"
)

func TestCardCRUD(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	boardID := testutil.CreateTestBoard(t, db, "Board")
	todo := testutil.ColumnIDByKind(t, db, boardID, models.ColumnKindInitial)
	doing := testutil.ColumnIDByKind(t, db, boardID, models.ColumnKindPending)

	card, err := store.CreateCard(ctx, todo, "Write docs", "All of them")
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	got, err := store.GetCardByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("Failed to get card: %v", err)
	}
	if got.Title != "Write docs" || got.Description != "All of them" || got.ColumnID != todo {
		t.Errorf("Unexpected card: %+v", got)
	}

	if err := store.UpdateCard(ctx, card.ID, "Write more docs", ""); err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}
	got, _ = store.GetCardByID(ctx, card.ID)
	if got.Title != "Write more docs" || got.Description != "" {
		t.Errorf("Update did not persist: %+v", got)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Error("UpdatedAt should be >= CreatedAt")
	}

	if err := store.MoveCard(ctx, card.ID, doing); err != nil {
		t.Fatalf("Failed to move card: %v", err)
	}
	summary, err := store.GetCardSummary(ctx, card.ID)
	if err != nil {
		t.Fatalf("Failed to get summary: %v", err)
	}
	if summary.ColumnID != doing || summary.ColumnKind != models.ColumnKindPending || summary.BoardID != boardID {
		t.Errorf("Unexpected summary after move: %+v", summary)
	}
	if summary.ColumnName != models.DefaultPendingColumnName {
		t.Errorf("Expected column name %q, got %q", models.DefaultPendingColumnName, summary.ColumnName)
	}

	err = store.InTx(ctx, func(q *database.Queries) error {
		return q.DeleteCard(ctx, card.ID)
	})
	if err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}
	if _, err := store.GetCardByID(ctx, card.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCardSummariesByBoardAndColumn(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	boardID := testutil.CreateTestBoard(t, db, "Board")
	otherID := testutil.CreateTestBoard(t, db, "Other")

	todo := testutil.ColumnIDByKind(t, db, boardID, models.ColumnKindInitial)
	done := testutil.ColumnIDByKind(t, db, boardID, models.ColumnKindFinal)
	other := testutil.ColumnIDByKind(t, db, otherID, models.ColumnKindInitial)

	doneCard := testutil.CreateTestCard(t, db, done, "finished")
	first := testutil.CreateTestCard(t, db, todo, "first")
	second := testutil.CreateTestCard(t, db, todo, "second")
	testutil.CreateTestCard(t, db, other, "elsewhere")
	testutil.BlockTestCard(t, db, second, "waiting")

	cards, err := store.GetCardSummariesByBoard(ctx, boardID)
	if err != nil {
		t.Fatalf("Failed to list cards: %v", err)
	}
	wantIDs := []int{first, second, doneCard}
	if len(cards) != len(wantIDs) {
		t.Fatalf("Expected %d cards, got %d", len(wantIDs), len(cards))
	}
	for i, c := range cards {
		if c.ID != wantIDs[i] {
			t.Errorf("cards[%d].ID = %d, want %d", i, c.ID, wantIDs[i])
		}
		if c.Blocked != (c.ID == second) {
			t.Errorf("card %d blocked = %v", c.ID, c.Blocked)
		}
	}

	inTodo, err := store.GetCardSummariesByColumn(ctx, todo)
	if err != nil {
		t.Fatalf("Failed to list column cards: %v", err)
	}
	if len(inTodo) != 2 {
		t.Errorf("Expected 2 cards in todo, got %d", len(inTodo))
	}

	n, err := store.GetCardCountByColumn(ctx, todo)
	if err != nil || n != 2 {
		t.Errorf("Expected count 2, got %d (err=%v)", n, err)
	}
}

func TestDeleteCardRemovesBlocks(t *testing.T) {
	ctx := context.Background()
	db, store := testutil.SetupTestStore(t)
	boardID := testutil.CreateTestBoard(t, db, "Board")
	todo := testutil.ColumnIDByKind(t, db, boardID, models.ColumnKindInitial)
	cardID := testutil.CreateTestCard(t, db, todo, "blocked")
	testutil.BlockTestCard(t, db, cardID, "one")

	if err := store.DeleteCard(ctx, cardID); err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}
	if n := testutil.CountRows(t, db, "blocks"); n != 0 {
		t.Errorf("Expected blocks to be removed, %d left", n)
	}
	if err := store.DeleteCard(ctx, cardID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}
