package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"prism/colorize"
	"prism/config"
	"prism/internal/debug"
	"prism/internal/version"
)

// Flags shared by the root and view commands
var (
	flagPalette int
	flagTheme   string
	flagSpans   bool
)

func main() {
	debug.Init()

	state, err := config.LoadState()
	if err != nil {
		state = config.DefaultState()
	}

	rootCmd := &cobra.Command{
		Use:   "prism [file]",
		Short: "Depth-aware bracket colorizer for source text",
		Long: `Prism assigns each bracket character a color keyed to its nesting depth,
so matching pairs share a color and sibling levels stay visually distinct.
Colors adapt to the terminal background: darker delimiters on light
backgrounds, lighter ones on dark backgrounds.

Reads a file (or stdin when no file is given) and writes the colorized
text to stdout. When stdout is not a terminal the text passes through
unchanged unless --spans asks for inline markup.

Examples:
  prism main.go            # colorize a file to the terminal
  cat main.go | prism      # same, from stdin
  prism --spans main.go    # emit <span> markup for HTML embedding
  prism view main.go       # open the interactive viewer`,
		Args:    cobra.MaximumNArgs(1),
		Version: version.Short(),
		RunE: func(_ *cobra.Command, args []string) error {
			return runColorize(args, state)
		},
	}

	rootCmd.PersistentFlags().IntVarP(&flagPalette, "palette", "p", 0, "base palette size (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "theme: auto, dark or light (default from config)")
	rootCmd.Flags().BoolVar(&flagSpans, "spans", false, "emit inline span markup instead of ANSI colors")

	viewCmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Open a file in the interactive colorized viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runViewer(args[0], state)
		},
	}
	rootCmd.AddCommand(viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// settings resolves flag > config precedence for one invocation
func settings(state *config.AppState) (paletteSize int, dark bool) {
	paletteSize = state.PaletteSize
	if flagPalette > 0 {
		paletteSize = flagPalette
	}
	theme := state.Theme
	if flagTheme != "" {
		theme = flagTheme
	}
	return paletteSize, resolveTheme(theme)
}

// readInput reads the named file, or stdin when no argument was given
func readInput(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}

func runColorize(args []string, state *config.AppState) error {
	name, text, err := readInput(args)
	if err != nil {
		return err
	}

	paletteSize, dark := settings(state)
	c := colorize.New(colorize.WithPaletteSize(paletteSize))
	debug.Log("colorizing %s: %d bytes, palette=%d dark=%v", name, len(text), paletteSize, dark)

	switch {
	case flagSpans:
		fmt.Print(c.Colorize(text, dark))
	case isTerminal(os.Stdout):
		fmt.Print(renderANSI(text, c.Scan(text, dark)))
	default:
		// Piped output without --spans stays clean
		fmt.Print(text)
	}
	return nil
}

func runViewer(path string, state *config.AppState) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	paletteSize, dark := settings(state)
	p := tea.NewProgram(newViewModel(path, string(text), dark, paletteSize), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}

	// Persist whatever the user dialed in so the next run starts there
	if m, ok := finalModel.(viewModel); ok {
		state.PaletteSize = m.paletteSize
		if m.dark {
			state.Theme = "dark"
		} else {
			state.Theme = "light"
		}
		if err := config.SaveState(state); err != nil {
			debug.Log("failed to save state: %v", err)
		}
	}
	return nil
}
