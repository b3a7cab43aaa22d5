package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/spacehole-rogue/spacelab/internal/game"
	"github.com/spacehole-rogue/spacelab/internal/input"
	"github.com/spacehole-rogue/spacelab/internal/logging"
	"github.com/spacehole-rogue/spacelab/internal/render"
	"github.com/spacehole-rogue/spacelab/internal/render/screen"
	"github.com/spacehole-rogue/spacelab/internal/runner"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Spacelab"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 80
	gridRows   = screenHeight / cellHeight // 45
)

const (
	// Viewport center, where the primary vessel always appears.
	viewCenterX = 28
	viewCenterY = 20

	// Fixed UI positions
	panelX   = 58 // right-side flight and cargo panels
	cargoRow = 10
	commsRow = 34
	commsMax = 8
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All simulation state lives in sim.
type Game struct {
	renderer *screen.GridRenderer
	buffer   *render.CellBuffer
	camera   render.Camera
	keys     screen.Keys
	input    input.Source
	sim      *game.Sim
	log      zerolog.Logger
	sampled  zerolog.Logger
}

// NewGame creates the viewer around an already loaded sim.
func NewGame(sim *game.Sim, src input.Source, log zerolog.Logger) *Game {
	atlas := screen.NewFontAtlas()
	g := &Game{
		renderer: screen.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		camera:   render.NewCamera(viewCenterX, viewCenterY, 4),
		input:    src,
		sim:      sim,
		log:      log,
		sampled:  logging.Sampled(log),
	}
	g.drawScreen()
	return g
}

func (g *Game) Update() error {
	if g.keys.JustPressed("Escape") {
		return ebiten.Termination
	}
	if g.keys.JustPressed("Space") {
		g.sim.SetPaused(!g.sim.Paused)
	}
	if g.keys.JustPressed("Equal") {
		g.camera.ZoomIn()
	}
	if g.keys.JustPressed("Minus") {
		g.camera.ZoomOut()
	}
	if g.keys.JustPressed("[") {
		_ = runner.ShiftCargo(g.sim, game.IronOre, 1, g.sampled)
	}
	if g.keys.JustPressed("]") {
		_ = runner.ShiftCargo(g.sim, game.IronOre, -1, g.sampled)
	}

	if err := g.sim.Tick(g.input.Poll()); err != nil {
		g.sampled.Warn().Err(err).Uint64("tick", g.sim.Ticks).Msg("tick reported errors")
	}

	g.drawScreen()
	fps := fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	g.buffer.WriteString(gridCols-20, gridRows-1, fps, render.ColorDarkGray, render.ColorBlack)
	return nil
}

func (g *Game) drawScreen() {
	buf := g.buffer
	buf.Clear()

	primary, err := g.sim.Primary()
	var vessel game.VesselInfo
	if err == nil {
		vessel, err = g.sim.Vessel(primary)
	}
	if err == nil {
		g.camera.Center = vessel.Absolute.Pos
	}

	// --- World layer (camera-relative) ---
	render.DrawScene(buf, g.camera, g.sim)

	// --- Fixed UI layer ---
	buf.WriteString(2, 0, title, render.ColorWhite, render.ColorBlack)
	status := fmt.Sprintf("tick %d  zoom %gx", g.sim.Ticks, g.camera.UnitsPerCell)
	if g.sim.Paused {
		status += "  PAUSED"
	}
	buf.WriteString(14, 0, status, render.ColorDarkGray, render.ColorBlack)

	if err == nil {
		station := ""
		if vessel.Dock.Docked {
			if b, err := g.sim.Body(vessel.Dock.Station); err == nil {
				station = b.Name
			}
		}
		render.DrawVesselStatus(buf, panelX, 2, vessel, station)
		if g.sim.UI.CargoVisible {
			if lines, err := g.sim.Cargo(primary); err == nil {
				render.DrawCargo(buf, panelX, cargoRow, lines)
			}
		}
	} else {
		buf.WriteString(panelX, 2, "No vessel", render.ColorLightRed, render.ColorBlack)
	}

	render.DrawComms(buf, 2, commsRow, g.sim.Log.Recent(commsMax))

	buf.WriteString(2, gridRows-2,
		"W/S thrust/brake  A/D turn  ,/. strafe  Shift+D dock  C cargo  [/] ore  Space pause",
		render.ColorDarkGray, render.ColorBlack)
}

func (g *Game) Draw(scr *ebiten.Image) {
	g.renderer.Draw(scr, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
