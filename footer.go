package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// Footer manages the bottom footer bar with keyboard shortcuts and the
// current colorization status.
type Footer struct {
	width         int
	filePath      string
	dark          bool
	paletteSize   int
	scrollPercent float64
}

// Styling for footer elements
var (
	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	footerSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(separatorColor))

	footerStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(textMuted))

	footerStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// NewFooter creates a new footer component
func NewFooter(filePath string) *Footer {
	return &Footer{
		filePath: filePath,
	}
}

// SetWidth updates the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetStatus updates the colorization status shown on the right side
func (f *Footer) SetStatus(dark bool, paletteSize int, scrollPercent float64) {
	f.dark = dark
	f.paletteSize = paletteSize
	f.scrollPercent = scrollPercent
}

// View renders the footer bar at the configured width
func (f *Footer) View() string {
	if f.width <= 0 {
		return ""
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"t", "theme"},
		{"+/-", "palette"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, s := range shortcuts {
		parts = append(parts, footerKeyStyle.Render(s.key)+" "+footerDescStyle.Render(s.desc))
	}
	left := strings.Join(parts, footerSeparatorStyle.Render(" • "))

	theme := "light"
	if f.dark {
		theme = "dark"
	}
	status := fmt.Sprintf("%s • %d colors • %3.f%%", theme, f.paletteSize, f.scrollPercent*100)

	// Fit the file path into whatever space remains between shortcuts
	// and status, truncating from the left to keep the file name visible.
	innerWidth := f.width - 2 // footer padding
	used := ansi.PrintableRuneWidth(left) + runewidth.StringWidth(status) + 4
	pathWidth := innerWidth - used
	path := ""
	if pathWidth > 8 {
		path = truncatePathFromLeft(f.filePath, pathWidth)
	}

	right := footerStatusStyle.Render(path) + "  " + footerStatusStyle.Render(status)

	gap := innerWidth - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right

	return footerStyle.Render(truncate.String(bar, uint(innerWidth)))
}
