// Package palette generates the base hue palette and adapts its entries to
// nesting depth and terminal theme.
package palette

import (
	"prism/color"
)

// DefaultSize is the number of base colors generated when no override is set.
const DefaultSize = 32

const (
	baseSaturation = 70
	baseLightness  = 50

	// Theme-dependent lightness baselines. Light backgrounds want darker
	// delimiters, dark backgrounds want lighter ones.
	lightBaseline = 35
	darkBaseline  = 65

	// Lightness moves by one step per depth within a 3-step cycle, so
	// adjacent depths differ while depths 3 apart repeat.
	lightnessStep = 5

	// Saturation fades toward gray every 3 levels, never below the floor.
	saturationFade  = 10
	saturationFloor = 40
)

// Generate returns count base colors evenly spaced around the hue circle,
// starting at hue 0, with fixed saturation and lightness. Deterministic:
// the same count always yields the same sequence.
func Generate(count int) []color.HSL {
	colors := make([]color.HSL, 0, count)
	for i := 0; i < count; i++ {
		colors = append(colors, color.HSL{
			H: float64(i) * 360 / float64(count),
			S: baseSaturation,
			L: baseLightness,
		})
	}
	return colors
}

// Adjust turns a base palette color into a display color for the given
// nesting depth and theme. The hue is kept; lightness is rebased to the
// theme baseline plus a cyclic depth offset, and saturation fades with depth
// so deep nesting trends toward neutral gray.
func Adjust(base color.HSL, depth int, dark bool) color.HSL {
	offset := float64(depth%3) * lightnessStep

	var lightness float64
	if dark {
		lightness = darkBaseline - offset
	} else {
		lightness = lightBaseline + offset
	}

	saturation := base.S - float64(depth/3)*saturationFade
	if saturation < saturationFloor {
		saturation = saturationFloor
	}

	return color.HSL{H: base.H, S: saturation, L: lightness}
}
