package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prism/colorize"
)

// renderANSI splices decorated delimiters into text as lipgloss-styled
// runes. Non-delimiter spans pass through verbatim, so the visible
// characters match the input exactly.
func renderANSI(text string, decs []colorize.Decoration) string {
	var b strings.Builder
	b.Grow(len(text) + len(decs)*16)

	last := 0
	for _, d := range decs {
		b.WriteString(text[last:d.Pos])
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color.Hex()))
		b.WriteString(style.Render(string(d.Char)))
		last = d.Pos + 1
	}
	b.WriteString(text[last:])

	return b.String()
}
