// Package screen draws a render.CellBuffer into an Ebitengine window.
package screen

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spacehole-rogue/spacelab/internal/render"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds the glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the atlas at startup. Printable ASCII is rendered
// with basicfont.Face7x13; the scene glyphs above it are drawn by hand.
// Codes with neither stay blank.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight

		if code >= 32 && code <= 126 {
			drawFontGlyph(img, face, cx, cy, rune(code))
			continue
		}
		drawSceneGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawSceneGlyph draws the non-ASCII glyphs the scene and HUD use.
func drawSceneGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	fill := func(in func(x, y int) bool) {
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if in(x, y) {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	}

	switch code {
	case render.GlyphSun:
		fill(func(x, y int) bool {
			d := math.Hypot(float64(x)-7.5, float64(y)-7.5)
			return d < 4 || (d < 7.5 && (x == 7 || x == 8 || y == 7 || y == 8 || x == y || x == 15-y))
		})
	case render.GlyphShipUp:
		fill(func(x, y int) bool { return y >= 3 && y < 13 && abs(2*x-15) <= y-3 })
	case render.GlyphShipDown:
		fill(func(x, y int) bool { return y >= 3 && y < 13 && abs(2*x-15) <= 12-y })
	case render.GlyphShipRight:
		fill(func(x, y int) bool { return x >= 3 && x < 13 && abs(2*y-15) <= 12-x })
	case render.GlyphShipLeft:
		fill(func(x, y int) bool { return x >= 3 && x < 13 && abs(2*y-15) <= x-3 })
	case render.GlyphShade:
		fill(func(x, y int) bool { return (x+y)%4 == 0 })
	case render.GlyphBlock:
		fill(func(x, y int) bool { return true })
	case render.GlyphDot:
		fill(func(x, y int) bool { return x >= 7 && x <= 8 && y >= 7 && y <= 8 })
	case render.GlyphSquare:
		fill(func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 })
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
