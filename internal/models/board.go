package models

import "time"

// Board represents a kanban board, the top-level container for columns and cards
type Board struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the board ID (used by quiet CLI output)
func (b *Board) GetID() int { return b.ID }

// BoardDetails is a board together with its ordered columns and their card counts
type BoardDetails struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	Columns   []*ColumnSummary `json:"columns"`
}

// GetID returns the board ID
func (d *BoardDetails) GetID() int { return d.ID }

// TotalCards returns the number of cards across every column of the board
func (d *BoardDetails) TotalCards() int {
	total := 0
	for _, col := range d.Columns {
		total += col.CardCount
	}
	return total
}
