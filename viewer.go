package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prism/colorize"
	"prism/internal/debug"
)

// Palette size bounds for the +/- keys
const (
	minPaletteSize = 2
	maxPaletteSize = 256
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color(textPrimary)).
	Background(lipgloss.Color(prismColor)).
	Padding(0, 1)

// viewModel is the interactive pager showing a colorized file. Toggling the
// theme or resizing the palette re-runs the scan over the raw text; the raw
// text itself is never modified.
type viewModel struct {
	keys     *KeyMap
	viewport viewport.Model
	footer   *Footer
	help     *HelpDialog

	filePath    string
	text        string
	dark        bool
	paletteSize int

	showHelp bool
	ready    bool
}

func newViewModel(filePath, text string, dark bool, paletteSize int) viewModel {
	if paletteSize < minPaletteSize {
		paletteSize = minPaletteSize
	}
	return viewModel{
		keys:        NewKeyMap(),
		footer:      NewFooter(filePath),
		help:        NewHelpDialog(),
		filePath:    filePath,
		text:        text,
		dark:        dark,
		paletteSize: paletteSize,
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

// refresh re-colorizes the buffer with the current theme and palette size
func (m *viewModel) refresh() {
	c := colorize.New(colorize.WithPaletteSize(m.paletteSize))
	m.viewport.SetContent(renderANSI(m.text, c.Scan(m.text, m.dark)))
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Title and footer take one row each
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
			m.refresh()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		m.footer.SetWidth(msg.Width)
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			// Any bound key closes the dialog; everything else is ignored
			if key.Matches(msg, m.keys.Help) || msg.String() == "esc" || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil

		case key.Matches(msg, m.keys.ToggleTheme):
			m.dark = !m.dark
			debug.Log("theme toggled, dark=%v", m.dark)
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.GrowPalette):
			if m.paletteSize*2 <= maxPaletteSize {
				m.paletteSize *= 2
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.ShrinkPalette):
			if m.paletteSize/2 >= minPaletteSize {
				m.paletteSize /= 2
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.showHelp {
		return m.help.View()
	}

	title := titleStyle.Render("prism") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(textMuted)).Render(m.filePath)

	m.footer.SetStatus(m.dark, m.paletteSize, m.viewport.ScrollPercent())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.viewport.View(),
		m.footer.View(),
	)
}
