// Package color provides the numeric color-space conversions used by the
// palette and colorizer: HSL to RGB, RGB back to HSL, and hex formatting.
package color

import (
	"fmt"
	"math"
)

// HSL is a color in cylindrical form. H is in degrees [0,360),
// S and L are percentages [0,100].
type HSL struct {
	H, S, L float64
}

// RGB stores explicit 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

// RGB converts to 8-bit channels, each rounded to nearest.
func (c HSL) RGB() RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := c.S / 100
	l := c.L / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = chroma, x, 0
	case h < 120:
		r1, g1, b1 = x, chroma, 0
	case h < 180:
		r1, g1, b1 = 0, chroma, x
	case h < 240:
		r1, g1, b1 = 0, x, chroma
	case h < 300:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	return RGB{
		R: uint8(math.Round((r1 + m) * 255)),
		G: uint8(math.Round((g1 + m) * 255)),
		B: uint8(math.Round((b1 + m) * 255)),
	}
}

// Hex formats the color as "#rrggbb", lowercase, zero-padded.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex is shorthand for converting to RGB and formatting.
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// HSL converts 8-bit channels back to cylindrical form.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		// Achromatic
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	s := d / (1 - math.Abs(2*l-1))

	var h float64
	switch maxC {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// ParseHex parses "#rrggbb" (or "rrggbb") into 8-bit channels.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}
