package main

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// detectDarkBackground queries the terminal for its background luminance.
// Defaults to dark when the terminal doesn't answer, which is the common
// case for modern terminal emulators anyway.
func detectDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// isTerminal reports whether f is attached to a terminal. Piped output
// skips ANSI styling entirely.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveTheme maps a --theme flag value to the dark-background boolean the
// colorizer consumes. "auto" (or anything unrecognized) falls back to
// terminal detection.
func resolveTheme(theme string) bool {
	switch theme {
	case "dark":
		return true
	case "light":
		return false
	default:
		return detectDarkBackground()
	}
}
