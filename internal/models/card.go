package models

import "time"

// Card represents a single unit of work on a board
type Card struct {
	ID          int       `json:"id"`
	ColumnID    int       `json:"column_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetID returns the card ID
func (c *Card) GetID() int { return c.ID }

// CardSummary is a card with the column and board it currently sits in
type CardSummary struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	ColumnID   int        `json:"column_id"`
	ColumnName string     `json:"column_name"`
	ColumnKind ColumnKind `json:"column_kind"`
	BoardID    int        `json:"board_id"`
	Blocked    bool       `json:"blocked"`
}

// GetID returns the card ID
func (c *CardSummary) GetID() int { return c.ID }

// CardDetails holds everything shown on a card's detail view
type CardDetails struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	BoardID     int        `json:"board_id"`
	ColumnID    int        `json:"column_id"`
	ColumnName  string     `json:"column_name"`
	ColumnKind  ColumnKind `json:"column_kind"`
	Blocked     bool       `json:"blocked"`
	BlockedAt   *time.Time `json:"blocked_at,omitempty"`
	BlockReason string     `json:"block_reason,omitempty"`
	BlockedBy   string     `json:"blocked_by,omitempty"`
	BlockCount  int        `json:"block_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GetID returns the card ID
func (c *CardDetails) GetID() int { return c.ID }
