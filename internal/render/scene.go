package render

import (
	"math"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

// Scene is the read side of the simulation the viewer draws from.
type Scene interface {
	Bodies() []game.BodyInfo
	OrbitRadius(id game.BodyID) (float64, bool)
}

// DrawScene writes orbital paths, then bodies with their name labels, into
// buf through cam. Later bodies overdraw earlier ones; vessels go last so
// they stay visible while docked.
func DrawScene(buf *CellBuffer, cam Camera, s Scene) {
	bodies := s.Bodies()
	byID := make(map[game.BodyID]game.BodyInfo, len(bodies))
	for _, b := range bodies {
		byID[b.ID] = b
	}

	for _, b := range bodies {
		r, ok := s.OrbitRadius(b.ID)
		if !ok || r == 0 {
			continue
		}
		var center game.Vec2
		if p, ok := byID[b.Parent]; ok {
			center = p.Absolute.Pos
		}
		drawRing(buf, cam, center, r)
	}

	for _, b := range bodies {
		if b.Kind != game.KindVessel {
			drawBody(buf, cam, b)
		}
	}
	for _, b := range bodies {
		if b.Kind == game.KindVessel {
			drawBody(buf, cam, b)
		}
	}
}

func drawBody(buf *CellBuffer, cam Camera, b game.BodyInfo) {
	glyph, fg := KindVisuals(b.Kind)
	if b.Kind == game.KindVessel {
		glyph = HeadingGlyph(b.Absolute)
	}
	x, y := cam.ToCell(b.Absolute.Pos)
	buf.Set(x, y, glyph, fg, ColorBlack)
	if b.Kind != game.KindVessel {
		for i, ch := range []byte(b.Name) {
			buf.SetIfBlank(x+2+i, y, ch, ColorDarkGray, ColorBlack)
		}
	}
}

// drawRing traces a circle of radius r around center with one dot per cell
// of circumference.
func drawRing(buf *CellBuffer, cam Camera, center game.Vec2, r float64) {
	steps := int(2 * math.Pi * r / cam.UnitsPerCell)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		p := center.Add(game.Vec2{X: r * math.Cos(a), Y: r * math.Sin(a)})
		x, y := cam.ToCell(p)
		buf.SetIfBlank(x, y, GlyphDot, ColorDarkGray, ColorBlack)
	}
}
