package database

import (
	"context"

	"github.com/thenoetrevino/board/internal/models"
)

// BoardReader defines read operations for boards.
type BoardReader interface {
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	BoardExists(ctx context.Context, id int) (bool, error)
}

// BoardWriter defines write operations for boards.
type BoardWriter interface {
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	UpdateBoardName(ctx context.Context, id int, name string) error
	DeleteBoard(ctx context.Context, id int) error
}

// BoardRepository combines all board-related operations.
type BoardRepository interface {
	BoardReader
	BoardWriter
}
