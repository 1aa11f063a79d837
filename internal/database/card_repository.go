package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/board/internal/models"
)

// cardSummarySelect joins a card to its column and flags an active block.
const cardSummarySelect = `
	SELECT c.id, c.title, c.column_id, bc.name, bc.kind, bc.board_id,
		CASE WHEN EXISTS (
			SELECT 1 FROM blocks b WHERE b.card_id = c.id AND b.unblocked_at IS NULL
		) THEN 1 ELSE 0 END
	FROM cards c
	INNER JOIN board_columns bc ON c.column_id = bc.id`

func scanCardSummary(row rowScanner) (*models.CardSummary, error) {
	s := &models.CardSummary{}
	var kind string
	var blocked int
	if err := row.Scan(&s.ID, &s.Title, &s.ColumnID, &s.ColumnName, &kind, &s.BoardID, &blocked); err != nil {
		return nil, err
	}
	s.ColumnKind = models.ColumnKind(kind)
	s.Blocked = blocked != 0
	return s, nil
}

// CreateCard inserts a card into a column
func (q *Queries) CreateCard(ctx context.Context, columnID int, title, description string) (*models.Card, error) {
	ts := now()
	id, err := q.insert(ctx,
		`INSERT INTO cards (column_id, title, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		columnID, title, description, ts, ts)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return &models.Card{
		ID:          id,
		ColumnID:    columnID,
		Title:       title,
		Description: description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}, nil
}

// GetCardByID retrieves a card by its ID
func (q *Queries) GetCardByID(ctx context.Context, id int) (*models.Card, error) {
	card := &models.Card{}
	err := q.queryRow(ctx,
		`SELECT id, column_id, title, description, created_at, updated_at FROM cards WHERE id = ?`, id).
		Scan(&card.ID, &card.ColumnID, &card.Title, &card.Description, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "card", id)
	}
	card.CreatedAt = card.CreatedAt.UTC()
	card.UpdatedAt = card.UpdatedAt.UTC()
	return card, nil
}

// GetCardSummary returns a card with its column, board and block flag
func (q *Queries) GetCardSummary(ctx context.Context, id int) (*models.CardSummary, error) {
	s, err := scanCardSummary(q.queryRow(ctx, cardSummarySelect+` WHERE c.id = ?`, id))
	if err != nil {
		return nil, notFound(err, "card", id)
	}
	return s, nil
}

// GetCardSummariesByBoard returns every card of a board, ordered by column
// position and then by creation.
func (q *Queries) GetCardSummariesByBoard(ctx context.Context, boardID int) ([]*models.CardSummary, error) {
	return q.listCardSummaries(ctx,
		cardSummarySelect+` WHERE bc.board_id = ? ORDER BY bc.position, c.id`, boardID)
}

// GetCardSummariesByColumn returns the cards of one column in creation order
func (q *Queries) GetCardSummariesByColumn(ctx context.Context, columnID int) ([]*models.CardSummary, error) {
	return q.listCardSummaries(ctx,
		cardSummarySelect+` WHERE c.column_id = ? ORDER BY c.id`, columnID)
}

func (q *Queries) listCardSummaries(ctx context.Context, query string, args ...any) ([]*models.CardSummary, error) {
	rows, err := q.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*models.CardSummary, 0)
	for rows.Next() {
		s, err := scanCardSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		cards = append(cards, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}
	return cards, nil
}

// GetCardCountByColumn returns how many cards sit in a column
func (q *Queries) GetCardCountByColumn(ctx context.Context, columnID int) (int, error) {
	n, err := q.count(ctx, `SELECT COUNT(*) FROM cards WHERE column_id = ?`, columnID)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards in column %d: %w", columnID, err)
	}
	return n, nil
}

// UpdateCard replaces a card's title and description
func (q *Queries) UpdateCard(ctx context.Context, id int, title, description string) error {
	res, err := q.exec(ctx,
		`UPDATE cards SET title = ?, description = ?, updated_at = ? WHERE id = ?`,
		title, description, now(), id)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", id, err)
	}
	return expectAffected(res, "card", id)
}

// MoveCard places a card in another column
func (q *Queries) MoveCard(ctx context.Context, id, columnID int) error {
	res, err := q.exec(ctx,
		`UPDATE cards SET column_id = ?, updated_at = ? WHERE id = ?`,
		columnID, now(), id)
	if err != nil {
		return fmt.Errorf("failed to move card %d: %w", id, err)
	}
	return expectAffected(res, "card", id)
}

// DeleteCard removes a card and its block history. Call it inside InTx.
func (q *Queries) DeleteCard(ctx context.Context, id int) error {
	if _, err := q.exec(ctx, `DELETE FROM blocks WHERE card_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete blocks of card %d: %w", id, err)
	}
	res, err := q.exec(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", id, err)
	}
	return expectAffected(res, "card", id)
}
