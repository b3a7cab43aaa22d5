package render

import (
	"math"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

// Zoom limits, in world units per cell.
const (
	MinZoom = 0.5
	MaxZoom = 64
)

// Camera maps world positions to buffer cells. World +Y is up; rows grow
// downward.
type Camera struct {
	Center       game.Vec2
	UnitsPerCell float64
	Col, Row     int // cell the center lands on
}

// NewCamera creates a camera looking at the world origin.
func NewCamera(col, row int, unitsPerCell float64) Camera {
	return Camera{UnitsPerCell: unitsPerCell, Col: col, Row: row}
}

// ToCell returns the cell p falls in.
func (c Camera) ToCell(p game.Vec2) (int, int) {
	d := p.Sub(c.Center).Scale(1 / c.UnitsPerCell)
	return c.Col + int(math.Round(d.X)), c.Row - int(math.Round(d.Y))
}

// ToWorld returns the world position at the middle of cell (x, y).
func (c Camera) ToWorld(x, y int) game.Vec2 {
	return c.Center.Add(game.Vec2{
		X: float64(x-c.Col) * c.UnitsPerCell,
		Y: float64(c.Row-y) * c.UnitsPerCell,
	})
}

// ZoomIn halves the units per cell, down to MinZoom.
func (c *Camera) ZoomIn() {
	c.UnitsPerCell = math.Max(MinZoom, c.UnitsPerCell/2)
}

// ZoomOut doubles the units per cell, up to MaxZoom.
func (c *Camera) ZoomOut() {
	c.UnitsPerCell = math.Min(MaxZoom, c.UnitsPerCell*2)
}

// HeadingGlyph picks the arrow closest to the direction a vessel faces.
func HeadingGlyph(t game.Transform) byte {
	a := game.NormalizeAngle(t.Up().Angle())
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return GlyphShipRight
	case a < 3*math.Pi/4:
		return GlyphShipUp
	case a < 5*math.Pi/4:
		return GlyphShipLeft
	default:
		return GlyphShipDown
	}
}
