package models

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Columns are ordered by Position, starting at 1
type Column struct {
	ID       int        `json:"id"`
	BoardID  int        `json:"board_id"`
	Name     string     `json:"name"`
	Position int        `json:"position"`
	Kind     ColumnKind `json:"kind"`
}

// GetID returns the column ID
func (c *Column) GetID() int { return c.ID }

// IsFinished reports whether cards in this column are considered done with
func (c *Column) IsFinished() bool {
	return c.Kind.IsFinished()
}

// ColumnSummary is a column with the number of cards it holds
type ColumnSummary struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Position  int        `json:"position"`
	Kind      ColumnKind `json:"kind"`
	CardCount int        `json:"card_count"`
}
