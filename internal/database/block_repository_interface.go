package database

import (
	"context"

	"github.com/thenoetrevino/board/internal/models"
)

// BlockReader defines read operations for card blocks.
type BlockReader interface {
	GetActiveBlock(ctx context.Context, cardID int) (*models.Block, error)
	GetBlocksByCard(ctx context.Context, cardID int) ([]*models.Block, error)
	GetBlockCountByCard(ctx context.Context, cardID int) (int, error)
}

// BlockWriter defines write operations for card blocks.
type BlockWriter interface {
	CreateBlock(ctx context.Context, cardID int, reason, blockedBy string) (*models.Block, error)
	CloseBlock(ctx context.Context, blockID int, reason, unblockedBy string) error
}

// BlockRepository combines all block-related operations.
type BlockRepository interface {
	BlockReader
	BlockWriter
}
