package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out receives results, Err receives human-readable errors.
	// Nil means os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

// NewFormatter builds a formatter from a command's --json and --quiet flags,
// writing to the command's configured output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.WriteJSON(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// WriteJSON encodes v as one line of JSON
func (f *OutputFormatter) WriteJSON(v interface{}) error {
	return json.NewEncoder(f.out()).Encode(v)
}

// Printf writes human-readable output unless quiet mode is on
func (f *OutputFormatter) Printf(format string, a ...interface{}) {
	if f.Quiet {
		return
	}
	_, _ = fmt.Fprintf(f.out(), format, a...)
}

// PrintID writes a bare ID, for quiet mode
func (f *OutputFormatter) PrintID(id int) {
	_, _ = fmt.Fprintf(f.out(), "%d\n", id)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.WriteJSON(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
