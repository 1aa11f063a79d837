package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, column, card or change-set IDs that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Change-set files that cannot be parsed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, over-long titles, missing reasons.
	ExitValidation = 5

	// ExitConflict indicates the request is valid but breaks a workflow rule.
	// Use for: Moving a blocked card, deleting a column that holds cards,
	// applying migrations over a modified change-set.
	ExitConflict = 6
)
