package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/board/internal/models"
)

const blockSelect = `SELECT id, card_id, blocked_at, block_reason, blocked_by,
	unblocked_at, unblock_reason, unblocked_by FROM blocks`

func scanBlock(row rowScanner) (*models.Block, error) {
	b := &models.Block{}
	var unblockedAt sql.NullTime
	var unblockReason, unblockedBy sql.NullString
	if err := row.Scan(&b.ID, &b.CardID, &b.BlockedAt, &b.BlockReason, &b.BlockedBy,
		&unblockedAt, &unblockReason, &unblockedBy); err != nil {
		return nil, err
	}
	b.BlockedAt = b.BlockedAt.UTC()
	b.UnblockedAt = nullTimeToPtr(unblockedAt)
	b.UnblockReason = NullStringToString(unblockReason)
	b.UnblockedBy = NullStringToString(unblockedBy)
	return b, nil
}

// CreateBlock opens a new block on a card
func (q *Queries) CreateBlock(ctx context.Context, cardID int, reason, blockedBy string) (*models.Block, error) {
	at := now()
	id, err := q.insert(ctx,
		`INSERT INTO blocks (card_id, blocked_at, block_reason, blocked_by) VALUES (?, ?, ?, ?)`,
		cardID, at, reason, blockedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to block card %d: %w", cardID, err)
	}
	return &models.Block{
		ID:          id,
		CardID:      cardID,
		BlockedAt:   at,
		BlockReason: reason,
		BlockedBy:   blockedBy,
	}, nil
}

// GetActiveBlock returns the open block of a card, or ErrNotFound
func (q *Queries) GetActiveBlock(ctx context.Context, cardID int) (*models.Block, error) {
	b, err := scanBlock(q.queryRow(ctx,
		blockSelect+` WHERE card_id = ? AND unblocked_at IS NULL ORDER BY id DESC LIMIT 1`, cardID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active block for card %d: %w", cardID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active block for card %d: %w", cardID, err)
	}
	return b, nil
}

// GetBlocksByCard returns the block history of a card, most recent first
func (q *Queries) GetBlocksByCard(ctx context.Context, cardID int) ([]*models.Block, error) {
	rows, err := q.query(ctx, blockSelect+` WHERE card_id = ? ORDER BY blocked_at DESC, id DESC`, cardID)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer rows.Close()

	blocks := make([]*models.Block, 0)
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning block row: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating block rows: %w", err)
	}
	return blocks, nil
}

// GetBlockCountByCard returns how many times a card has been blocked
func (q *Queries) GetBlockCountByCard(ctx context.Context, cardID int) (int, error) {
	n, err := q.count(ctx, `SELECT COUNT(*) FROM blocks WHERE card_id = ?`, cardID)
	if err != nil {
		return 0, fmt.Errorf("failed to count blocks of card %d: %w", cardID, err)
	}
	return n, nil
}

// CloseBlock marks an open block as resolved
func (q *Queries) CloseBlock(ctx context.Context, blockID int, reason, unblockedBy string) error {
	res, err := q.exec(ctx,
		`UPDATE blocks SET unblocked_at = ?, unblock_reason = ?, unblocked_by = ?
		WHERE id = ? AND unblocked_at IS NULL`,
		now(), reason, unblockedBy, blockID)
	if err != nil {
		return fmt.Errorf("failed to unblock block %d: %w", blockID, err)
	}
	return expectAffected(res, "block", blockID)
}
