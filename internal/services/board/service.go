// Package board implements board creation, lookup and removal.
package board

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

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetBoard(ctx context.Context, id int) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoardDetails(ctx context.Context, id int) (*models.BoardDetails, error)

	// Write operations
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	CreateBoardWithColumns(ctx context.Context, name string, columnNames []string) (*models.Board, error)
	RenameBoard(ctx context.Context, id int, name string) error
	DeleteBoard(ctx context.Context, id int) error
}

type columnSpec struct {
	name string
	kind models.ColumnKind
}

// defaultColumns is the layout of a board created without custom columns
var defaultColumns = []columnSpec{
	{models.DefaultInitialColumnName, models.ColumnKindInitial},
	{models.DefaultPendingColumnName, models.ColumnKindPending},
	{models.DefaultFinalColumnName, models.ColumnKindFinal},
	{models.DefaultCancelColumnName, models.ColumnKindCancel},
}

type service struct {
	store  database.DataStore
	logger *slog.Logger
}

// NewService creates a new board service
func NewService(store database.DataStore) Service {
	return &service{
		store:  store,
		logger: slog.Default().With("service", "board"),
	}
}

// GetBoard retrieves a board by ID
func (s *service) GetBoard(ctx context.Context, id int) (*models.Board, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}
	board, err := s.store.GetBoardByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, id)
	}
	return board, nil
}

// ListBoards returns every board ordered by name
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	return s.store.ListBoards(ctx)
}

// GetBoardDetails returns the board with its columns in order and their card counts
func (s *service) GetBoardDetails(ctx context.Context, id int) (*models.BoardDetails, error) {
	board, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	columns, err := s.store.GetColumnSummaries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns of board %d: %w", id, err)
	}
	return &models.BoardDetails{
		ID:        board.ID,
		Name:      board.Name,
		CreatedAt: board.CreatedAt,
		Columns:   columns,
	}, nil
}

// CreateBoard creates a board with the default columns
func (s *service) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, name, defaultColumns)
}

// CreateBoardWithColumns creates a board whose first column is INITIAL, last
// is FINAL and the rest PENDING. A cancel column is always appended.
func (s *service) CreateBoardWithColumns(ctx context.Context, name string, columnNames []string) (*models.Board, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if len(columnNames) < 2 {
		return nil, ErrTooFewColumns
	}

	specs := make([]columnSpec, 0, len(columnNames)+1)
	seen := make(map[string]bool, len(columnNames)+1)
	for i, raw := range columnNames {
		colName := strings.TrimSpace(raw)
		if err := validateColumnName(colName); err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		key := strings.ToLower(colName)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumnName, colName)
		}
		seen[key] = true

		kind := models.ColumnKindPending
		switch i {
		case 0:
			kind = models.ColumnKindInitial
		case len(columnNames) - 1:
			kind = models.ColumnKindFinal
		}
		specs = append(specs, columnSpec{colName, kind})
	}

	cancelName := models.DefaultCancelColumnName
	if seen[strings.ToLower(cancelName)] {
		return nil, fmt.Errorf("%w: %q is reserved for the cancel column", ErrDuplicateColumnName, cancelName)
	}
	specs = append(specs, columnSpec{cancelName, models.ColumnKindCancel})

	return s.create(ctx, name, specs)
}

func (s *service) create(ctx context.Context, name string, columns []columnSpec) (*models.Board, error) {
	var board *models.Board
	err := s.store.InTx(ctx, func(q *database.Queries) error {
		var err error
		board, err = q.CreateBoard(ctx, name)
		if err != nil {
			return err
		}
		for i, col := range columns {
			if _, err := q.CreateColumn(ctx, board.ID, col.name, i+1, col.kind); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("board created", "board_id", board.ID, "columns", len(columns))
	return board, nil
}

// RenameBoard changes a board's name
func (s *service) RenameBoard(ctx context.Context, id int, name string) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := s.store.UpdateBoardName(ctx, id, name); err != nil {
		return mapNotFound(err, id)
	}
	return nil
}

// DeleteBoard removes a board with all of its columns, cards and blocks
func (s *service) DeleteBoard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}
	err := s.store.InTx(ctx, func(q *database.Queries) error {
		return q.DeleteBoard(ctx, id)
	})
	if err != nil {
		return mapNotFound(err, id)
	}
	s.logger.Info("board deleted", "board_id", id)
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxBoardNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func validateColumnName(name string) error {
	if name == "" {
		return ErrEmptyColumnName
	}
	if utf8.RuneCountInString(name) > models.MaxColumnNameLength {
		return ErrColumnNameTooLong
	}
	return nil
}

func mapNotFound(err error, id int) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("board %d: %w", id, ErrBoardNotFound)
	}
	return err
}
