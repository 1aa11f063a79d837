package database

import (
	"context"

	"github.com/thenoetrevino/board/internal/models"
)

// ColumnReader defines read operations for columns.
type ColumnReader interface {
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	GetColumnByKind(ctx context.Context, boardID int, kind models.ColumnKind) (*models.Column, error)
	GetColumnSummaries(ctx context.Context, boardID int) ([]*models.ColumnSummary, error)
}

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	CreateColumn(ctx context.Context, boardID int, name string, position int, kind models.ColumnKind) (*models.Column, error)
	UpdateColumnName(ctx context.Context, id int, name string) error
	ShiftColumnPositions(ctx context.Context, boardID, fromPosition, delta int) error
	DeleteColumn(ctx context.Context, id int) error
}

// ColumnRepository combines all column-related operations.
type ColumnRepository interface {
	ColumnReader
	ColumnWriter
}
