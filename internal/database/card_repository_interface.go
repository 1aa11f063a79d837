package database

import (
	"context"

	"github.com/thenoetrevino/board/internal/models"
)

// CardReader defines read operations for cards.
type CardReader interface {
	GetCardByID(ctx context.Context, id int) (*models.Card, error)
	GetCardSummary(ctx context.Context, id int) (*models.CardSummary, error)
	GetCardSummariesByBoard(ctx context.Context, boardID int) ([]*models.CardSummary, error)
	GetCardSummariesByColumn(ctx context.Context, columnID int) ([]*models.CardSummary, error)
	GetCardCountByColumn(ctx context.Context, columnID int) (int, error)
}

// CardWriter defines write operations for cards.
type CardWriter interface {
	CreateCard(ctx context.Context, columnID int, title, description string) (*models.Card, error)
	UpdateCard(ctx context.Context, id int, title, description string) error
	MoveCard(ctx context.Context, id, columnID int) error
	DeleteCard(ctx context.Context, id int) error
}

// CardRepository combines all card-related operations.
type CardRepository interface {
	CardReader
	CardWriter
}
