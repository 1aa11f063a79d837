// Package styles holds the lipgloss styles shared by the console and the
// scriptable CLI, plus markdown and word-wrap helpers for card text.
package styles

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/board/internal/config"
	"github.com/thenoetrevino/board/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:", "Blocked by:"
	ValueStyle    lipgloss.Style
	MenuKeyStyle  lipgloss.Style

	// Status styles
	BlockedStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	kindColors map[models.ColumnKind]string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all styles with the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	MenuKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	BlockedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Warning))

	kindColors = map[models.ColumnKind]string{
		models.ColumnKindInitial: colors.Initial,
		models.ColumnKindPending: colors.Pending,
		models.ColumnKindFinal:   colors.Final,
		models.ColumnKindCancel:  colors.Cancel,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderKind renders a column kind tag such as "[FINAL]" in the kind's color
func RenderKind(kind models.ColumnKind) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(kindColors[kind])).
		Bold(true).
		Render("[" + kind.String() + "]")
}

// RenderBlocked renders the blocked marker shown next to card titles
func RenderBlocked() string {
	return BlockedStyle.Render("[BLOCKED]")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Wrap word-wraps plain text to width
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// Cache glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a card description as terminal markdown.
// It falls back to word-wrapped plain text when rendering fails.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Italic(true).Render("No description")
	}
	renderer, err := getRenderer(width)
	if err == nil {
		if out, err := renderer.Render(text); err == nil {
			return strings.TrimSpace(out)
		}
	}
	return Wrap(text, width)
}
