// Package console implements the interactive numbered-menu loop that drives
// the board application from standard input.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/board/internal/app"
	"github.com/thenoetrevino/board/internal/cli/styles"
	boardservice "github.com/thenoetrevino/board/internal/services/board"
	cardservice "github.com/thenoetrevino/board/internal/services/card"
	columnservice "github.com/thenoetrevino/board/internal/services/column"
)

const maxLineLength = 1 << 20

// Console reads menu choices from in and writes prompts and results to out.
// It is strictly sequential: one operation runs to completion before the
// next prompt is shown.
type Console struct {
	boards  boardservice.Service
	columns columnservice.Service
	cards   cardservice.Service

	in    *bufio.Scanner
	out   io.Writer
	width int
}

// New creates a console over the application's services, styled with the
// application's color scheme
func New(a *app.App, in io.Reader, out io.Writer) *Console {
	styles.Init(a.Config.ColorScheme)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Console{
		boards:  a.BoardService,
		columns: a.ColumnService,
		cards:   a.CardService,
		in:      scanner,
		out:     out,
		width:   styles.CardWidth,
	}
}

// Run shows the main menu until the user exits or input ends.
// End of input is a clean exit, not an error.
func (c *Console) Run(ctx context.Context) error {
	err := c.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		c.println()
		c.println("Input closed, exiting.")
		return nil
	}
	return err
}

// ============================================================================
// OUTPUT
// ============================================================================

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *Console) header(title string) {
	c.println()
	c.println(styles.TitleStyle.Render("=== " + title + " ==="))
}

func (c *Console) option(key int, label string) {
	c.printf("%s %s\n", styles.MenuKeyStyle.Render(strconv.Itoa(key)+"."), label)
}

func (c *Console) success(format string, a ...any) {
	c.println(styles.SuccessStyle.Render(fmt.Sprintf(format, a...)))
}

// reportError prints a failed operation and logs it; the loop carries on
func (c *Console) reportError(op string, err error) {
	slog.Warn("console operation failed", "op", op, "error", err)
	c.println(styles.ErrorStyle.Render("Error: " + err.Error()))
}

// ============================================================================
// INPUT
// ============================================================================

// readLine prompts and returns the next trimmed input line, or io.EOF
func (c *Console) readLine(prompt string) (string, error) {
	if prompt != "" {
		c.printf("%s", prompt)
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt prompts until the input parses as an integer
func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println("Please enter a valid number.")
	}
}

// confirm asks a yes/no question; anything but y or yes means no
func (c *Console) confirm(prompt string) (bool, error) {
	line, err := c.readLine(prompt + " (y/N): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// dispatch runs one menu action, printing its failure instead of returning it.
// Only input errors, which end the session, are passed up.
func (c *Console) dispatch(op string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return err
	}
	c.reportError(op, err)
	return nil
}
