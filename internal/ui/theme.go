package ui

import "image/color"

// Colors: dark theme with a blue header
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorPrimaryDark   = color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants
const (
	RowHeight  = 72
	RowPadding = 16
	RowGap     = 1

	SectionTitleH = 40

	TabBarHeight = 44

	FontSizeTitle   = 30
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 13

	// ProgressAnimSpeed is the per-frame lerp factor for animated collapse updates.
	ProgressAnimSpeed = 0.25
	// PageAnimSpeed is the per-frame lerp factor for animated page switches.
	PageAnimSpeed = 0.18

	// ScrollWheelSpeed is points per mouse wheel scroll unit.
	ScrollWheelSpeed = 40
	// ScrollKeySpeed is points per arrow key press.
	ScrollKeySpeed = 24
)
