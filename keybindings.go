package main

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all the keybindings for the viewer
type KeyMap struct {
	// Global keys
	Quit key.Binding
	Help key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Colorization controls
	ToggleTheme   key.Binding
	GrowPalette   key.Binding
	ShrinkPalette key.Binding
}

// NewKeyMap creates a new KeyMap with default keybindings
func NewKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),

		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		GrowPalette: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow palette"),
		),
		ShrinkPalette: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink palette"),
		),
	}
}
