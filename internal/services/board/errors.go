package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrEmptyName           = errors.New("board name cannot be empty")
	ErrNameTooLong         = errors.New("board name cannot exceed 100 characters")
	ErrInvalidBoardID      = errors.New("invalid board ID")
	ErrTooFewColumns       = errors.New("a board needs at least 2 columns")
	ErrEmptyColumnName     = errors.New("column name cannot be empty")
	ErrColumnNameTooLong   = errors.New("column name cannot exceed 50 characters")
	ErrDuplicateColumnName = errors.New("column names must be unique")

	// Business logic errors
	ErrBoardNotFound = errors.New("board not found")
)
