package card

import "errors"

// Card-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("card title cannot be empty")
	ErrTitleTooLong    = errors.New("card title cannot exceed 255 characters")
	ErrEmptyReason     = errors.New("reason cannot be empty")
	ErrReasonTooLong   = errors.New("reason cannot exceed 500 characters")
	ErrInvalidCardID   = errors.New("invalid card ID")
	ErrInvalidBoardID  = errors.New("invalid board ID")
	ErrInvalidColumnID = errors.New("invalid column ID")

	// Lookup errors
	ErrCardNotFound   = errors.New("card not found")
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
)

// Workflow errors: the card exists but the requested change breaks a rule
var (
	// ErrCardBlocked indicates the card has an active block
	ErrCardBlocked = errors.New("card is blocked")

	// ErrCardNotBlocked indicates an unblock was requested for a card without an active block
	ErrCardNotBlocked = errors.New("card is not blocked")

	// ErrCardFinished indicates the card sits in a final or cancel column
	ErrCardFinished = errors.New("card is finished")

	// ErrColumnOnOtherBoard indicates the target column belongs to a different board
	ErrColumnOnOtherBoard = errors.New("column belongs to another board")

	// ErrAlreadyInColumn indicates the card is already in the target column
	ErrAlreadyInColumn = errors.New("card is already in target column")

	// ErrAlreadyLastColumn indicates there is no column left to advance to
	ErrAlreadyLastColumn = errors.New("card is already in the last column")
)
