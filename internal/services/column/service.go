// Package column manages the columns of a board. Columns keep a dense
// 1-based position; new columns are always in-progress columns placed just
// before the board's final column.
package column

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/board/internal/database"
	"github.com/thenoetrevino/board/internal/models"
)

// Service defines all column-related business operations
type Service interface {
	// Read operations
	ListColumns(ctx context.Context, boardID int) ([]*models.Column, error)
	GetColumn(ctx context.Context, id int) (*models.Column, error)

	// Write operations
	AddColumn(ctx context.Context, boardID int, name string) (*models.Column, error)
	RenameColumn(ctx context.Context, id int, name string) error
	DeleteColumn(ctx context.Context, id int) error
}

type service struct {
	store  database.DataStore
	logger *slog.Logger
}

// NewService creates a new column service
func NewService(store database.DataStore) Service {
	return &service{
		store:  store,
		logger: slog.Default().With("service", "column"),
	}
}

// ListColumns returns the columns of a board in position order
func (s *service) ListColumns(ctx context.Context, boardID int) ([]*models.Column, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	if err := requireBoard(ctx, s.store, boardID); err != nil {
		return nil, err
	}
	return s.store.GetColumnsByBoard(ctx, boardID)
}

// GetColumn retrieves a specific column
func (s *service) GetColumn(ctx context.Context, id int) (*models.Column, error) {
	if id <= 0 {
		return nil, ErrInvalidColumnID
	}
	col, err := s.store.GetColumnByID(ctx, id)
	if err != nil {
		return nil, columnNotFound(err, id)
	}
	return col, nil
}

// AddColumn inserts a new in-progress column right before the final column
func (s *service) AddColumn(ctx context.Context, boardID int, name string) (*models.Column, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	var created *models.Column
	err = s.store.InTx(ctx, func(q *database.Queries) error {
		if err := requireBoard(ctx, q, boardID); err != nil {
			return err
		}
		columns, err := q.GetColumnsByBoard(ctx, boardID)
		if err != nil {
			return err
		}
		if err := checkUnique(columns, name, 0); err != nil {
			return err
		}

		position := 0
		for _, c := range columns {
			if c.Kind == models.ColumnKindFinal {
				position = c.Position
				break
			}
		}
		if position == 0 {
			return fmt.Errorf("board %d: %w", boardID, ErrMissingFinalColumn)
		}

		if err := q.ShiftColumnPositions(ctx, boardID, position, 1); err != nil {
			return err
		}
		created, err = q.CreateColumn(ctx, boardID, name, position, models.ColumnKindPending)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("column added", "board_id", boardID, "column_id", created.ID, "position", created.Position)
	return created, nil
}

// RenameColumn changes a column's name
func (s *service) RenameColumn(ctx context.Context, id int, name string) error {
	if id <= 0 {
		return ErrInvalidColumnID
	}
	name, err := validateName(name)
	if err != nil {
		return err
	}

	return s.store.InTx(ctx, func(q *database.Queries) error {
		col, err := q.GetColumnByID(ctx, id)
		if err != nil {
			return columnNotFound(err, id)
		}
		columns, err := q.GetColumnsByBoard(ctx, col.BoardID)
		if err != nil {
			return err
		}
		if err := checkUnique(columns, name, id); err != nil {
			return err
		}
		return q.UpdateColumnName(ctx, id, name)
	})
}

// DeleteColumn removes an empty in-progress column and closes the gap in
// positions. Initial, final and cancel columns cannot be deleted.
func (s *service) DeleteColumn(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidColumnID
	}

	err := s.store.InTx(ctx, func(q *database.Queries) error {
		col, err := q.GetColumnByID(ctx, id)
		if err != nil {
			return columnNotFound(err, id)
		}
		if col.Kind != models.ColumnKindPending {
			return fmt.Errorf("column %d is %s: %w", id, col.Kind, ErrProtectedColumn)
		}

		count, err := q.GetCardCountByColumn(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("column %d has %d cards: %w", id, count, ErrColumnHasCards)
		}

		if err := q.DeleteColumn(ctx, id); err != nil {
			return err
		}
		return q.ShiftColumnPositions(ctx, col.BoardID, col.Position+1, -1)
	})
	if err != nil {
		return err
	}

	s.logger.Info("column deleted", "column_id", id)
	return nil
}

func requireBoard(ctx context.Context, boards database.BoardReader, boardID int) error {
	exists, err := boards.BoardExists(ctx, boardID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("board %d: %w", boardID, ErrBoardNotFound)
	}
	return nil
}

func checkUnique(columns []*models.Column, name string, exceptID int) error {
	for _, c := range columns {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxColumnNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func columnNotFound(err error, id int) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("column %d: %w", id, ErrColumnNotFound)
	}
	return err
}
