// Package colorize implements the depth-aware delimiter scan: a single
// left-to-right pass that pairs every bracket character with a palette color
// adjusted for nesting depth and terminal theme. Unbalanced input degrades
// gracefully; no input can make the scan fail.
package colorize

import (
	"prism/color"
	"prism/palette"
)

// Decoration associates one delimiter character with its final display
// color. Pos is the byte offset in the original text.
type Decoration struct {
	Pos   int
	Char  byte
	Kind  Kind
	Open  bool
	Depth int       // nesting depth of the bracket pair this delimiter belongs to
	Base  color.HSL // palette entry before adjustment
	Color color.HSL // adjusted for depth and theme
}

// Colorizer scans text blocks against a fixed base palette. The palette is
// built once at construction and never mutated; per-scan state lives on the
// stack of each call, so one Colorizer may serve concurrent scans.
type Colorizer struct {
	palette []color.HSL
}

// Option configures a Colorizer.
type Option func(*Colorizer)

// WithPaletteSize overrides the number of base colors. Values below 1 are
// ignored and the default size is kept.
func WithPaletteSize(n int) Option {
	return func(c *Colorizer) {
		if n > 0 {
			c.palette = palette.Generate(n)
		}
	}
}

// New creates a Colorizer with a default 32-color palette.
func New(opts ...Option) *Colorizer {
	c := &Colorizer{palette: palette.Generate(palette.DefaultSize)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PaletteSize returns the number of base colors in use.
func (c *Colorizer) PaletteSize() int {
	return len(c.palette)
}

// scanState is the transient per-invocation state: the current nesting
// depth, one pushed base color per open delimiter, and the set of recently
// used palette entries.
type scanState struct {
	depth int
	stack []color.HSL
	used  map[color.HSL]bool
}

// nextColor picks a base color for the given depth, preferring palette
// entries not recently used. When every entry has been used the set is
// cleared wholesale and the pick comes from the full palette without being
// marked used; this asymmetry is load-bearing for reuse ordering, see the
// palette exhaustion test.
func (s *scanState) nextColor(pal []color.HSL, depth int) color.HSL {
	avail := make([]color.HSL, 0, len(pal))
	for _, c := range pal {
		if !s.used[c] {
			avail = append(avail, c)
		}
	}
	if len(avail) > 0 {
		c := avail[depth%len(avail)]
		s.used[c] = true
		return c
	}
	s.used = make(map[color.HSL]bool)
	return pal[depth%len(pal)]
}

// Scan walks text once, left to right, and returns a Decoration for every
// recognized delimiter in original order. Closing delimiters reuse the base
// color pushed by their opener; a closer with no opener falls back to a
// fresh palette pick instead of failing. Depth never goes negative.
//
// The stack holds colors only, not kinds: a closing brace will pop the color
// pushed by an opening paren. The scan is deliberately grammar-blind.
func (c *Colorizer) Scan(text string, dark bool) []Decoration {
	st := scanState{used: make(map[color.HSL]bool)}
	var decs []Decoration

	for i := 0; i < len(text); i++ {
		kind, open, ok := delimiterOf(text[i])
		if !ok {
			continue
		}

		if open {
			base := st.nextColor(c.palette, st.depth)
			decs = append(decs, Decoration{
				Pos:   i,
				Char:  text[i],
				Kind:  kind,
				Open:  true,
				Depth: st.depth,
				Base:  base,
				Color: palette.Adjust(base, st.depth, dark),
			})
			st.stack = append(st.stack, base)
			st.depth++
			continue
		}

		if st.depth > 0 {
			st.depth--
		}
		var base color.HSL
		if n := len(st.stack); n > 0 {
			base = st.stack[n-1]
			st.stack = st.stack[:n-1]
		} else {
			base = st.nextColor(c.palette, st.depth)
		}
		decs = append(decs, Decoration{
			Pos:   i,
			Char:  text[i],
			Kind:  kind,
			Depth: st.depth,
			Base:  base,
			Color: palette.Adjust(base, st.depth, dark),
		})
	}

	return decs
}

// Colorize returns text with every delimiter wrapped in a minimal inline
// span carrying its hex color; all other characters are unchanged.
func (c *Colorizer) Colorize(text string, dark bool) string {
	return renderSpans(text, c.Scan(text, dark))
}

// Colorize runs a default 32-color Colorizer over text.
func Colorize(text string, dark bool) string {
	return New().Colorize(text, dark)
}
