package migrate

import "errors"

var (
	ErrChecksumMismatch = errors.New("change-set was modified after it was applied")
	ErrNoRollback       = errors.New("change-set has no rollback")
	ErrUnknownChangeSet = errors.New("applied change-set not found in change-set files")
	ErrInvalidChangeSet = errors.New("invalid change-set")
	ErrInvalidCount     = errors.New("rollback count must be positive")
)
