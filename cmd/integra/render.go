package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// ruleWidth is the width of horizontal rules and the markdown wrap column.
const ruleWidth = 50

// markdown renders generated output for the terminal. A nil renderer
// passes text through unchanged.
type markdown struct {
	r *glamour.TermRenderer
}

// newMarkdown returns a renderer styled for the terminal attached to stdout,
// or a pass-through renderer when stdout is not a terminal.
func newMarkdown(width int) markdown {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // fd fits in int
		return markdown{}
	}

	style := glamourstyles.LightStyleConfig
	if lipgloss.HasDarkBackground() {
		style = glamourstyles.DarkStyleConfig
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown{}
	}

	return markdown{r: r}
}

// Render converts markdown text to terminal-formatted output.
func (m markdown) Render(text string) string {
	if m.r == nil {
		return text
	}

	out, err := m.r.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}

// codeBlock wraps text in a fenced block tagged with lang.
func codeBlock(lang, text string) string {
	return "```" + lang + "\n" + strings.TrimRight(text, "\n") + "\n```"
}

// preview shortens s to at most width terminal cells for single-line display.
func preview(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return runewidth.Truncate(s, width, "...")
}

// rule returns a horizontal separator.
func rule() string {
	return ruleStyle.Render(strings.Repeat("=", ruleWidth))
}
