package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/board/internal/models"
)

// CreateBoard inserts a board without any columns.
func (q *Queries) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	createdAt := now()
	id, err := q.insert(ctx, `INSERT INTO boards (name, created_at) VALUES (?, ?)`, name, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return &models.Board{ID: id, Name: name, CreatedAt: createdAt}, nil
}

// GetBoardByID retrieves a board by its ID
func (q *Queries) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{}
	var createdAt time.Time
	err := q.queryRow(ctx, `SELECT id, name, created_at FROM boards WHERE id = ?`, id).
		Scan(&board.ID, &board.Name, &createdAt)
	if err != nil {
		return nil, notFound(err, "board", id)
	}
	board.CreatedAt = createdAt.UTC()
	return board, nil
}

// ListBoards returns every board ordered by name
func (q *Queries) ListBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := q.query(ctx, `SELECT id, name, created_at FROM boards ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	boards := make([]*models.Board, 0)
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		b.CreatedAt = b.CreatedAt.UTC()
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board rows: %w", err)
	}
	return boards, nil
}

// BoardExists reports whether a board with the given ID exists
func (q *Queries) BoardExists(ctx context.Context, id int) (bool, error) {
	n, err := q.count(ctx, `SELECT COUNT(*) FROM boards WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check board %d: %w", id, err)
	}
	return n > 0, nil
}

// UpdateBoardName renames a board
func (q *Queries) UpdateBoardName(ctx context.Context, id int, name string) error {
	res, err := q.exec(ctx, `UPDATE boards SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename board %d: %w", id, err)
	}
	return expectAffected(res, "board", id)
}

// DeleteBoard removes a board together with its columns, cards and blocks.
// The dependent rows are deleted explicitly so the result does not depend
// on foreign key enforcement being switched on. Call it inside InTx.
func (q *Queries) DeleteBoard(ctx context.Context, id int) error {
	steps := []struct {
		what  string
		query string
	}{
		{"blocks", `DELETE FROM blocks WHERE card_id IN (
			SELECT c.id FROM cards c
			INNER JOIN board_columns bc ON c.column_id = bc.id
			WHERE bc.board_id = ?)`},
		{"cards", `DELETE FROM cards WHERE column_id IN (
			SELECT bc.id FROM board_columns bc WHERE bc.board_id = ?)`},
		{"columns", `DELETE FROM board_columns WHERE board_id = ?`},
	}
	for _, s := range steps {
		if _, err := q.exec(ctx, s.query, id); err != nil {
			return fmt.Errorf("failed to delete %s of board %d: %w", s.what, id, err)
		}
	}

	res, err := q.exec(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete board %d: %w", id, err)
	}
	return expectAffected(res, "board", id)
}
