package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpDialog represents a help overlay showing all viewer shortcuts
type HelpDialog struct {
	width  int
	height int
}

// Styling for help dialog
var (
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(borderMuted)).
				Padding(1, 2).
				MaxWidth(60)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(prismColor)).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(infoStatus)).
				MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(warningYellow))

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(textDescription))

	helpFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(textMuted))
)

// NewHelpDialog creates a new help dialog
func NewHelpDialog() *HelpDialog {
	return &HelpDialog{}
}

// SetSize updates the dialog dimensions used for centering
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height
}

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{"Navigation", []helpEntry{
		{"↑/k, ↓/j", "scroll line by line"},
		{"pgup, pgdn", "scroll page by page"},
	}},
	{"Colorization", []helpEntry{
		{"t", "toggle dark/light adjustment"},
		{"+", "grow the base palette"},
		{"-", "shrink the base palette"},
	}},
	{"Help", []helpEntry{
		{"?", "toggle this dialog"},
		{"q", "quit"},
	}},
}

// View renders the help dialog centered in the viewer
func (h *HelpDialog) View() string {
	var content []string

	content = append(content, helpTitleStyle.Render("Prism - Depth-Aware Bracket Colorizer"))

	for _, section := range helpSections {
		content = append(content, helpSectionStyle.Render(section.title))
		for _, e := range section.entries {
			line := "  " + helpKeyStyle.Render(padRight(e.key, 12)) + helpDescStyle.Render(e.desc)
			content = append(content, line)
		}
	}

	content = append(content, "")
	content = append(content, helpFooterStyle.Render("Press ? or esc to close"))

	dialog := helpOverlayStyle.Render(strings.Join(content, "\n"))
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, dialog)
}

// padRight pads a string to the right with spaces
func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + fmt.Sprintf("%*s", length-len(s), "")
}
