package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFooterRendersAtConfiguredWidth(t *testing.T) {
	for _, width := range []int{60, 80, 120} {
		footer := NewFooter("/home/user/projects/prism/main.go")
		footer.SetWidth(width)
		footer.SetStatus(true, 32, 0.5)

		if got := lipgloss.Width(footer.View()); got != width {
			t.Fatalf("footer width = %d want %d", got, width)
		}
	}
}

func TestFooterTruncatesOnNarrowWidth(t *testing.T) {
	footer := NewFooter("/very/long/path/that/will/never/fit/main.go")
	footer.SetWidth(24)
	footer.SetStatus(false, 32, 0)

	if got := lipgloss.Width(footer.View()); got != 24 {
		t.Fatalf("narrow footer width = %d want 24", got)
	}
}

func TestFooterEmptyWithoutWidth(t *testing.T) {
	footer := NewFooter("main.go")
	if got := footer.View(); got != "" {
		t.Fatalf("unsized footer rendered %q, want empty", got)
	}
}

func TestTruncatePathFromLeft(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		want     string
	}{
		{"Fits", "/a/b/c.go", 20, "/a/b/c.go"},
		{"DropsLeadingSegments", "/home/user/projects/prism/main.go", 20, ".../prism/main.go"},
		{"KeepsFileName", "/home/user/projects/prism/main.go", 12, ".../main.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncatePathFromLeft(tt.path, tt.maxWidth); got != tt.want {
				t.Errorf("truncatePathFromLeft(%q, %d) = %q, want %q", tt.path, tt.maxWidth, got, tt.want)
			}
		})
	}
}
