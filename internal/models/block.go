package models

import "time"

// Block records a period during which a card could not progress.
// A block is active until UnblockedAt is set.
type Block struct {
	ID            int        `json:"id"`
	CardID        int        `json:"card_id"`
	BlockedAt     time.Time  `json:"blocked_at"`
	BlockReason   string     `json:"block_reason"`
	BlockedBy     string     `json:"blocked_by"`
	UnblockedAt   *time.Time `json:"unblocked_at,omitempty"`
	UnblockReason string     `json:"unblock_reason,omitempty"`
	UnblockedBy   string     `json:"unblocked_by,omitempty"`
}

// GetID returns the block ID
func (b *Block) GetID() int { return b.ID }

// IsActive reports whether the block still holds the card
func (b *Block) IsActive() bool {
	return b.UnblockedAt == nil
}
