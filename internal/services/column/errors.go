package column

import "errors"

// Column-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("column name cannot be empty")
	ErrNameTooLong     = errors.New("column name cannot exceed 50 characters")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidBoardID  = errors.New("invalid board ID")

	// Business logic errors
	ErrColumnNotFound     = errors.New("column not found")
	ErrBoardNotFound      = errors.New("board not found")
	ErrDuplicateName      = errors.New("a column with this name already exists on the board")
	ErrColumnHasCards     = errors.New("cannot delete column with cards")
	ErrProtectedColumn    = errors.New("only in-progress columns can be deleted")
	ErrMissingFinalColumn = errors.New("board has no final column")
)
