// Package console renders hands to a terminal and asks the human seat for
// decisions on a line-oriented prompt.
package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/holdemsim/internal/deck"
	"github.com/muesli/termenv"
)

// Styles holds every style used on the console. All styles share one
// renderer so colour can be switched off in one place.
type Styles struct {
	Header    lipgloss.Style
	Stage     lipgloss.Style
	Action    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Prompt    lipgloss.Style
}

// NewStyles builds the console styles for w. With noColor set the Ascii
// profile is forced and styles render as plain text.
func NewStyles(w io.Writer, noColor bool) Styles {
	var renderer *lipgloss.Renderer
	if noColor {
		renderer = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
		renderer.SetColorProfile(termenv.Ascii)
	} else {
		renderer = lipgloss.NewRenderer(w)
	}

	return Styles{
		Header: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		Stage: renderer.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Action: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		RedCard: renderer.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Success: renderer.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Warning: renderer.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: renderer.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Prompt: renderer.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
	}
}

// Cards renders cards with suit colours, separated by spaces
func (s Styles) Cards(cards []deck.Card) string {
	if len(cards) == 0 {
		return s.Info.Render("--")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = s.RedCard.Render(c.String())
		} else {
			parts[i] = s.BlackCard.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
