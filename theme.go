package main

// Theme defines the colors used by the viewer chrome with semantic naming.
// Delimiter colors never come from here; those are computed by the palette.
var (
	// Brand colors
	prismColor = "#7aa2f7" // prism blue for branding and the title bar

	// Text colors
	textPrimary     = "#ffffff" // 255 - white text for the title
	textDescription = "#c9c9c9" // 250 - light gray for descriptions and help text
	textMuted       = "#7a7a7a" // 240 - dark gray for subtle text like file paths

	// Border colors
	borderMuted = "#7a7a7a" // 240 - standard border color

	// Status/semantic colors
	infoStatus = "#8be9fd" // 86 - cyan for section headers

	// UI colors
	separatorColor = "#4a4a4a" // 238 - very dark gray for separators
	warningYellow  = "#f1fa8c" // 220 - yellow for highlighted keys
)
