package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/board/internal/database/migrate"
	boardservice "github.com/thenoetrevino/board/internal/services/board"
	cardservice "github.com/thenoetrevino/board/internal/services/card"
	columnservice "github.com/thenoetrevino/board/internal/services/column"
)

// EnvBoardID names the variable `board use board` exports for the current shell
const EnvBoardID = "BOARD_ID"

// CommandError carries the process exit code chosen for a failed command
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string { return e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

var notFoundErrors = []error{
	boardservice.ErrBoardNotFound,
	columnservice.ErrColumnNotFound,
	columnservice.ErrBoardNotFound,
	cardservice.ErrCardNotFound,
	cardservice.ErrBoardNotFound,
	cardservice.ErrColumnNotFound,
	migrate.ErrUnknownChangeSet,
}

var validationErrors = []error{
	boardservice.ErrEmptyName,
	boardservice.ErrNameTooLong,
	boardservice.ErrInvalidBoardID,
	boardservice.ErrTooFewColumns,
	boardservice.ErrEmptyColumnName,
	boardservice.ErrColumnNameTooLong,
	boardservice.ErrDuplicateColumnName,
	columnservice.ErrEmptyName,
	columnservice.ErrNameTooLong,
	columnservice.ErrInvalidColumnID,
	columnservice.ErrInvalidBoardID,
	columnservice.ErrDuplicateName,
	cardservice.ErrEmptyTitle,
	cardservice.ErrTitleTooLong,
	cardservice.ErrEmptyReason,
	cardservice.ErrReasonTooLong,
	cardservice.ErrInvalidCardID,
	cardservice.ErrInvalidBoardID,
	cardservice.ErrInvalidColumnID,
	migrate.ErrInvalidCount,
}

var conflictErrors = []error{
	cardservice.ErrCardBlocked,
	cardservice.ErrCardNotBlocked,
	cardservice.ErrCardFinished,
	cardservice.ErrColumnOnOtherBoard,
	cardservice.ErrAlreadyInColumn,
	cardservice.ErrAlreadyLastColumn,
	columnservice.ErrColumnHasCards,
	columnservice.ErrProtectedColumn,
	columnservice.ErrMissingFinalColumn,
	migrate.ErrChecksumMismatch,
	migrate.ErrNoRollback,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var codeNames = map[int]string{
	ExitError:      "ERROR",
	ExitUsage:      "USAGE",
	ExitNotFound:   "NOT_FOUND",
	ExitDataErr:    "INVALID_CHANGESET",
	ExitValidation: "VALIDATION_ERROR",
	ExitConflict:   "CONFLICT",
}

// Classify maps a service error to an exit code and a machine-readable code.
// An error that already carries a CommandError keeps its code.
func Classify(err error) (int, string) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		name, ok := codeNames[cmdErr.Code]
		if !ok {
			name = "ERROR"
		}
		return cmdErr.Code, name
	}

	switch {
	case matchesAny(err, notFoundErrors):
		return ExitNotFound, "NOT_FOUND"
	case matchesAny(err, validationErrors):
		return ExitValidation, "VALIDATION_ERROR"
	case matchesAny(err, conflictErrors):
		return ExitConflict, "CONFLICT"
	case errors.Is(err, migrate.ErrInvalidChangeSet):
		return ExitDataErr, "INVALID_CHANGESET"
	default:
		return ExitError, "ERROR"
	}
}

// Fail reports err through the formatter and returns it wrapped with its exit code
func Fail(formatter *OutputFormatter, err error) error {
	code, name := Classify(err)
	if fmtErr := formatter.Error(name, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return err
	}
	return &CommandError{Code: code, Err: err}
}

// UsageError reports a usage problem and returns it with ExitUsage
func UsageError(formatter *OutputFormatter, message, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion("USAGE", message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CommandError{Code: ExitUsage, Err: errors.New(message)}
}

// GetBoardID reads the --board flag, falling back to the BOARD_ID variable
// set by `eval $(board use board <id>)`
func GetBoardID(cmd *cobra.Command) (int, error) {
	if flag := cmd.Flags().Lookup("board"); flag != nil && flag.Changed {
		id, err := cmd.Flags().GetInt("board")
		if err != nil {
			return 0, err
		}
		if id <= 0 {
			return 0, fmt.Errorf("--board must be greater than 0")
		}
		return id, nil
	}

	value := os.Getenv(EnvBoardID)
	if value == "" {
		return 0, fmt.Errorf("no board specified: use --board or set %s", EnvBoardID)
	}
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s value %q", EnvBoardID, value)
	}
	return id, nil
}

// RequirePositive reads an int flag that must be greater than zero
func RequirePositive(cmd *cobra.Command, name string) (int, error) {
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to parse --%s: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("--%s must be greater than 0", name)
	}
	return v, nil
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// MarkRequired marks flags as required, logging if a name is unknown
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}
}

// CloseCLI closes a CLI, logging any failure
func CloseCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}
