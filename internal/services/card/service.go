// Package card implements the card workflow: creation in the initial
// column, moves between columns, blocking, cancelling and removal.
//
// A blocked card cannot be updated, moved, cancelled or deleted. A finished
// card (final or cancel column) cannot be updated and may only move to the
// final column.
package card

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/board/internal/database"
	"github.com/thenoetrevino/board/internal/models"
	"github.com/thenoetrevino/board/internal/user"
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	GetCard(ctx context.Context, id int) (*models.Card, error)
	GetCardDetails(ctx context.Context, id int) (*models.CardDetails, error)
	ListCardsByBoard(ctx context.Context, boardID int) ([]*models.CardSummary, error)
	ListCardsByColumn(ctx context.Context, columnID int) ([]*models.CardSummary, error)
	ListBlockedCards(ctx context.Context, boardID int) ([]*models.CardSummary, error)
	GetBlockHistory(ctx context.Context, cardID int) ([]*models.Block, error)

	// Write operations
	CreateCard(ctx context.Context, boardID int, title, description string) (*models.Card, error)
	UpdateCard(ctx context.Context, id int, title, description string) (*models.Card, error)
	DeleteCard(ctx context.Context, id int) error

	// Workflow operations
	MoveCard(ctx context.Context, id, columnID int) (*models.CardSummary, error)
	MoveCardToNext(ctx context.Context, id int) (*models.CardSummary, error)
	CancelCard(ctx context.Context, id int) (*models.CardSummary, error)
	BlockCard(ctx context.Context, id int, reason string) (*models.Block, error)
	UnblockCard(ctx context.Context, id int, reason string) (*models.Block, error)
}

// Option configures the card service
type Option func(*service)

// WithUserFunc sets how the acting user's name is resolved for blocks
func WithUserFunc(fn func() string) Option {
	return func(s *service) {
		s.currentUser = fn
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

type service struct {
	store       database.DataStore
	currentUser func() string
	logger      *slog.Logger
}

// NewService creates a new card service
func NewService(store database.DataStore, opts ...Option) Service {
	s := &service{
		store:       store,
		currentUser: user.GetCurrentUsername,
		logger:      slog.Default().With("service", "card"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCard retrieves a card by ID
func (s *service) GetCard(ctx context.Context, id int) (*models.Card, error) {
	if id <= 0 {
		return nil, ErrInvalidCardID
	}
	card, err := s.store.GetCardByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "card", id, ErrCardNotFound)
	}
	return card, nil
}

// GetCardDetails returns a card with its column, block state and block count
func (s *service) GetCardDetails(ctx context.Context, id int) (*models.CardDetails, error) {
	card, err := s.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	summary, err := s.store.GetCardSummary(ctx, id)
	if err != nil {
		return nil, notFound(err, "card", id, ErrCardNotFound)
	}
	count, err := s.store.GetBlockCountByCard(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &models.CardDetails{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		BoardID:     summary.BoardID,
		ColumnID:    summary.ColumnID,
		ColumnName:  summary.ColumnName,
		ColumnKind:  summary.ColumnKind,
		Blocked:     summary.Blocked,
		BlockCount:  count,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}

	if summary.Blocked {
		block, err := s.store.GetActiveBlock(ctx, id)
		if err != nil {
			return nil, err
		}
		blockedAt := block.BlockedAt
		details.BlockedAt = &blockedAt
		details.BlockReason = block.BlockReason
		details.BlockedBy = block.BlockedBy
	}
	return details, nil
}

// ListCardsByBoard returns every card of a board grouped by column order
func (s *service) ListCardsByBoard(ctx context.Context, boardID int) ([]*models.CardSummary, error) {
	if err := requireBoard(ctx, s.store, boardID); err != nil {
		return nil, err
	}
	return s.store.GetCardSummariesByBoard(ctx, boardID)
}

// ListCardsByColumn returns the cards in one column
func (s *service) ListCardsByColumn(ctx context.Context, columnID int) ([]*models.CardSummary, error) {
	if columnID <= 0 {
		return nil, ErrInvalidColumnID
	}
	if _, err := s.store.GetColumnByID(ctx, columnID); err != nil {
		return nil, notFound(err, "column", columnID, ErrColumnNotFound)
	}
	return s.store.GetCardSummariesByColumn(ctx, columnID)
}

// ListBlockedCards returns the cards of a board that have an active block
func (s *service) ListBlockedCards(ctx context.Context, boardID int) ([]*models.CardSummary, error) {
	cards, err := s.ListCardsByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	blocked := make([]*models.CardSummary, 0)
	for _, c := range cards {
		if c.Blocked {
			blocked = append(blocked, c)
		}
	}
	return blocked, nil
}

// GetBlockHistory returns every block of a card, most recent first
func (s *service) GetBlockHistory(ctx context.Context, cardID int) ([]*models.Block, error) {
	if _, err := s.GetCard(ctx, cardID); err != nil {
		return nil, err
	}
	return s.store.GetBlocksByCard(ctx, cardID)
}

// CreateCard creates a card in the board's initial column
func (s *service) CreateCard(ctx context.Context, boardID int, title, description string) (*models.Card, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)

	var card *models.Card
	err = s.store.InTx(ctx, func(q *database.Queries) error {
		if err := requireBoard(ctx, q, boardID); err != nil {
			return err
		}
		initial, err := q.GetColumnByKind(ctx, boardID, models.ColumnKindInitial)
		if err != nil {
			return notFound(err, "initial column of board", boardID, ErrColumnNotFound)
		}
		card, err = q.CreateCard(ctx, initial.ID, title, description)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card created", "card_id", card.ID, "board_id", boardID)
	return card, nil
}

// UpdateCard replaces the title and description of an active card
func (s *service) UpdateCard(ctx context.Context, id int, title, description string) (*models.Card, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)

	var card *models.Card
	err = s.store.InTx(ctx, func(q *database.Queries) error {
		summary, err := loadSummary(ctx, q, id)
		if err != nil {
			return err
		}
		if summary.Blocked {
			return fmt.Errorf("card %d: %w", id, ErrCardBlocked)
		}
		if summary.ColumnKind.IsFinished() {
			return fmt.Errorf("card %d: %w", id, ErrCardFinished)
		}
		if err := q.UpdateCard(ctx, id, title, description); err != nil {
			return err
		}
		card, err = q.GetCardByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// MoveCard moves a card to another column of the same board
func (s *service) MoveCard(ctx context.Context, id, columnID int) (*models.CardSummary, error) {
	if columnID <= 0 {
		return nil, ErrInvalidColumnID
	}

	var moved *models.CardSummary
	err := s.store.InTx(ctx, func(q *database.Queries) error {
		summary, err := loadSummary(ctx, q, id)
		if err != nil {
			return err
		}
		target, err := q.GetColumnByID(ctx, columnID)
		if err != nil {
			return notFound(err, "column", columnID, ErrColumnNotFound)
		}
		if target.BoardID != summary.BoardID {
			return fmt.Errorf("column %d: %w", columnID, ErrColumnOnOtherBoard)
		}
		if target.ID == summary.ColumnID {
			return fmt.Errorf("card %d: %w", id, ErrAlreadyInColumn)
		}
		if summary.Blocked {
			return fmt.Errorf("card %d: %w", id, ErrCardBlocked)
		}
		if summary.ColumnKind.IsFinished() && target.Kind != models.ColumnKindFinal {
			return fmt.Errorf("card %d can only move to the final column: %w", id, ErrCardFinished)
		}

		moved, err = s.move(ctx, q, id, target)
		return err
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// MoveCardToNext advances a card to the next column. Cards never advance
// into the cancel column; use CancelCard for that.
func (s *service) MoveCardToNext(ctx context.Context, id int) (*models.CardSummary, error) {
	var moved *models.CardSummary
	err := s.store.InTx(ctx, func(q *database.Queries) error {
		summary, err := loadSummary(ctx, q, id)
		if err != nil {
			return err
		}
		if summary.Blocked {
			return fmt.Errorf("card %d: %w", id, ErrCardBlocked)
		}
		if summary.ColumnKind.IsFinished() {
			return fmt.Errorf("card %d: %w", id, ErrCardFinished)
		}

		columns, err := q.GetColumnsByBoard(ctx, summary.BoardID)
		if err != nil {
			return err
		}
		var next *models.Column
		for i, c := range columns {
			if c.ID == summary.ColumnID && i+1 < len(columns) {
				next = columns[i+1]
				break
			}
		}
		if next == nil || next.Kind == models.ColumnKindCancel {
			return fmt.Errorf("card %d: %w", id, ErrAlreadyLastColumn)
		}

		moved, err = s.move(ctx, q, id, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// CancelCard moves an active, unblocked card to the board's cancel column
func (s *service) CancelCard(ctx context.Context, id int) (*models.CardSummary, error) {
	var moved *models.CardSummary
	err := s.store.InTx(ctx, func(q *database.Queries) error {
		summary, err := loadSummary(ctx, q, id)
		if err != nil {
			return err
		}
		if summary.Blocked {
			return fmt.Errorf("card %d: %w", id, ErrCardBlocked)
		}
		if summary.ColumnKind.IsFinished() {
			return fmt.Errorf("card %d: %w", id, ErrCardFinished)
		}
		cancel, err := q.GetColumnByKind(ctx, summary.BoardID, models.ColumnKindCancel)
		if err != nil {
			return notFound(err, "cancel column of board", summary.BoardID, ErrColumnNotFound)
		}

		moved, err = s.move(ctx, q, id, cancel)
		return err
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// BlockCard opens a block on an active card
func (s *service) BlockCard(ctx context.Context, id int, reason string) (*models.Block, error) {
	reason, err := validateReason(reason)
	if err != nil {
		return nil, err
	}

	var block *models.Block
	err = s.store.InTx(ctx, func(q *database.Queries) error {
		summary, err := loadSummary(ctx, q, id)
		if err != nil {
			return err
		}
		if summary.Blocked {
			return fmt.Errorf("card %d is already blocked: %w", id, ErrCardBlocked)
		}
		if summary.ColumnKind.IsFinished() {
			return fmt.Errorf("card %d: %w", id, ErrCardFinished)
		}
		block, err = q.CreateBlock(ctx, id, reason, s.currentUser())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card blocked", "card_id", id, "block_id", block.ID, "by", block.BlockedBy)
	return block, nil
}

// UnblockCard closes the active block of a card
func (s *service) UnblockCard(ctx context.Context, id int, reason string) (*models.Block, error) {
	reason, err := validateReason(reason)
	if err != nil {
		return nil, err
	}

	var block *models.Block
	err = s.store.InTx(ctx, func(q *database.Queries) error {
		if _, err := loadSummary(ctx, q, id); err != nil {
			return err
		}
		active, err := q.GetActiveBlock(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return fmt.Errorf("card %d: %w", id, ErrCardNotBlocked)
			}
			return err
		}
		by := s.currentUser()
		if err := q.CloseBlock(ctx, active.ID, reason, by); err != nil {
			return err
		}

		history, err := q.GetBlocksByCard(ctx, id)
		if err != nil {
			return err
		}
		for _, b := range history {
			if b.ID == active.ID {
				block = b
				break
			}
		}
		if block == nil {
			return fmt.Errorf("block %d vanished while unblocking card %d", active.ID, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card unblocked", "card_id", id, "block_id", block.ID, "by", block.UnblockedBy)
	return block, nil
}

// DeleteCard removes an unblocked card and its block history
func (s *service) DeleteCard(ctx context.Context, id int) error {
	err := s.store.InTx(ctx, func(q *database.Queries) error {
		summary, err := loadSummary(ctx, q, id)
		if err != nil {
			return err
		}
		if summary.Blocked {
			return fmt.Errorf("card %d: %w", id, ErrCardBlocked)
		}
		return q.DeleteCard(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("card deleted", "card_id", id)
	return nil
}

func (s *service) move(ctx context.Context, q *database.Queries, id int, target *models.Column) (*models.CardSummary, error) {
	if err := q.MoveCard(ctx, id, target.ID); err != nil {
		return nil, err
	}
	s.logger.Info("card moved", "card_id", id, "column_id", target.ID, "kind", target.Kind)
	return q.GetCardSummary(ctx, id)
}

func loadSummary(ctx context.Context, q database.CardReader, id int) (*models.CardSummary, error) {
	if id <= 0 {
		return nil, ErrInvalidCardID
	}
	summary, err := q.GetCardSummary(ctx, id)
	if err != nil {
		return nil, notFound(err, "card", id, ErrCardNotFound)
	}
	return summary, nil
}

func requireBoard(ctx context.Context, boards database.BoardReader, boardID int) error {
	if boardID <= 0 {
		return ErrInvalidBoardID
	}
	exists, err := boards.BoardExists(ctx, boardID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("board %d: %w", boardID, ErrBoardNotFound)
	}
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxCardTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func validateReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", ErrEmptyReason
	}
	if utf8.RuneCountInString(reason) > models.MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return reason, nil
}

// notFound maps database.ErrNotFound onto the service's own sentinel
func notFound(err error, entity string, id int, sentinel error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, sentinel)
	}
	return err
}
