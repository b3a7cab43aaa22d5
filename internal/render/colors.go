package render

import (
	"image/color"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

// CGA 16-color palette indices.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette contains the classic CGA 16-color palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // 0: Black
	{0, 0, 170, 255},     // 1: Blue
	{0, 170, 0, 255},     // 2: Green
	{0, 170, 170, 255},   // 3: Cyan
	{170, 0, 0, 255},     // 4: Red
	{170, 0, 170, 255},   // 5: Magenta
	{170, 85, 0, 255},    // 6: Brown
	{170, 170, 170, 255}, // 7: Light Gray
	{85, 85, 85, 255},    // 8: Dark Gray
	{85, 85, 255, 255},   // 9: Light Blue
	{85, 255, 85, 255},   // 10: Light Green
	{85, 255, 255, 255},  // 11: Light Cyan
	{255, 85, 85, 255},   // 12: Light Red
	{255, 85, 255, 255},  // 13: Light Magenta
	{255, 255, 85, 255},  // 14: Yellow
	{255, 255, 255, 255}, // 15: White
}

// CP437 codes the scene uses beyond printable ASCII.
const (
	GlyphSun       byte = 15  // ☼
	GlyphShipRight byte = 16  // ►
	GlyphShipLeft  byte = 17  // ◄
	GlyphShipUp    byte = 30  // ▲
	GlyphShipDown  byte = 31  // ▼
	GlyphShade     byte = 176 // ░
	GlyphBlock     byte = 219 // █
	GlyphDot       byte = 250 // · orbital path
	GlyphSquare    byte = 254 // ■
)

// KindVisuals returns the glyph and color a body kind is drawn with.
func KindVisuals(k game.Kind) (glyph byte, fg uint8) {
	switch k {
	case game.KindStar:
		return GlyphSun, ColorYellow
	case game.KindPlanet:
		return 'O', ColorLightBlue
	case game.KindStation:
		return GlyphSquare, ColorLightGray
	case game.KindVessel:
		return GlyphShipUp, ColorWhite
	default:
		return '?', ColorMagenta
	}
}

// MsgColor maps a comms priority to a palette index.
func MsgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return ColorLightRed
	case game.MsgWarning:
		return ColorYellow
	case game.MsgNav:
		return ColorLightGreen
	case game.MsgCargo:
		return ColorWhite
	default:
		return ColorCyan
	}
}
