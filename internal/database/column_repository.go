package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/board/internal/models"
)

const columnSelect = `SELECT id, board_id, name, position, kind FROM board_columns`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanColumn(row rowScanner) (*models.Column, error) {
	col := &models.Column{}
	var kind string
	if err := row.Scan(&col.ID, &col.BoardID, &col.Name, &col.Position, &kind); err != nil {
		return nil, err
	}
	col.Kind = models.ColumnKind(kind)
	return col, nil
}

// CreateColumn inserts a column at the given position. Callers are
// responsible for making room with ShiftColumnPositions first.
func (q *Queries) CreateColumn(ctx context.Context, boardID int, name string, position int, kind models.ColumnKind) (*models.Column, error) {
	id, err := q.insert(ctx,
		`INSERT INTO board_columns (board_id, name, position, kind) VALUES (?, ?, ?, ?)`,
		boardID, name, position, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to create column %q: %w", name, err)
	}
	return &models.Column{
		ID:       id,
		BoardID:  boardID,
		Name:     name,
		Position: position,
		Kind:     kind,
	}, nil
}

// GetColumnByID retrieves a column by its ID
func (q *Queries) GetColumnByID(ctx context.Context, id int) (*models.Column, error) {
	col, err := scanColumn(q.queryRow(ctx, columnSelect+` WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, "column", id)
	}
	return col, nil
}

// GetColumnsByBoard returns the columns of a board in position order
func (q *Queries) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	rows, err := q.query(ctx, columnSelect+` WHERE board_id = ? ORDER BY position, id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying columns for board: %w", err)
	}
	defer rows.Close()

	columns := make([]*models.Column, 0)
	for rows.Next() {
		col, err := scanColumn(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}
	return columns, nil
}

// GetColumnByKind returns the first column of the given kind on a board
func (q *Queries) GetColumnByKind(ctx context.Context, boardID int, kind models.ColumnKind) (*models.Column, error) {
	col, err := scanColumn(q.queryRow(ctx,
		columnSelect+` WHERE board_id = ? AND kind = ? ORDER BY position, id LIMIT 1`,
		boardID, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("board %d has no %s column: %w", boardID, kind, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s column of board %d: %w", kind, boardID, err)
	}
	return col, nil
}

// GetColumnSummaries returns the columns of a board with their card counts
// in a single query.
func (q *Queries) GetColumnSummaries(ctx context.Context, boardID int) ([]*models.ColumnSummary, error) {
	rows, err := q.query(ctx, `
		SELECT bc.id, bc.name, bc.position, bc.kind, COUNT(c.id)
		FROM board_columns bc
		LEFT JOIN cards c ON c.column_id = bc.id
		WHERE bc.board_id = ?
		GROUP BY bc.id, bc.name, bc.position, bc.kind
		ORDER BY bc.position, bc.id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying column summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]*models.ColumnSummary, 0)
	for rows.Next() {
		s := &models.ColumnSummary{}
		var kind string
		if err := rows.Scan(&s.ID, &s.Name, &s.Position, &kind, &s.CardCount); err != nil {
			return nil, fmt.Errorf("scanning column summary: %w", err)
		}
		s.Kind = models.ColumnKind(kind)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column summaries: %w", err)
	}
	return summaries, nil
}

// UpdateColumnName renames a column
func (q *Queries) UpdateColumnName(ctx context.Context, id int, name string) error {
	res, err := q.exec(ctx, `UPDATE board_columns SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename column %d: %w", id, err)
	}
	return expectAffected(res, "column", id)
}

// ShiftColumnPositions adds delta to the position of every column of the
// board at or after fromPosition.
func (q *Queries) ShiftColumnPositions(ctx context.Context, boardID, fromPosition, delta int) error {
	_, err := q.exec(ctx,
		`UPDATE board_columns SET position = position + ? WHERE board_id = ? AND position >= ?`,
		delta, boardID, fromPosition)
	if err != nil {
		return fmt.Errorf("failed to shift columns of board %d: %w", boardID, err)
	}
	return nil
}

// DeleteColumn removes a column. Cards must be moved out first.
func (q *Queries) DeleteColumn(ctx context.Context, id int) error {
	res, err := q.exec(ctx, `DELETE FROM board_columns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete column %d: %w", id, err)
	}
	return expectAffected(res, "column", id)
}
