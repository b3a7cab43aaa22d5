package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/spacelab/internal/input"
)

var keyCodes = map[input.Key]ebiten.Key{
	"W":      ebiten.KeyW,
	"A":      ebiten.KeyA,
	"S":      ebiten.KeyS,
	"D":      ebiten.KeyD,
	"C":      ebiten.KeyC,
	"Comma":  ebiten.KeyComma,
	"Period": ebiten.KeyPeriod,
	"Shift":  ebiten.KeyShift,
	"Space":  ebiten.KeySpace,
	"Escape": ebiten.KeyEscape,
	"Equal":  ebiten.KeyEqual,
	"Minus":  ebiten.KeyMinus,
	"Up":     ebiten.KeyArrowUp,
	"Down":   ebiten.KeyArrowDown,
	"Left":   ebiten.KeyArrowLeft,
	"Right":  ebiten.KeyArrowRight,
	"[":      ebiten.KeyBracketLeft,
	"]":      ebiten.KeyBracketRight,
}

// Keys reads the Ebitengine keyboard. Names it does not know are never
// pressed.
type Keys struct{}

// Pressed reports whether k is down.
func (Keys) Pressed(k input.Key) bool {
	code, ok := keyCodes[k]
	return ok && ebiten.IsKeyPressed(code)
}

// JustPressed reports whether k went down this frame.
func (Keys) JustPressed(k input.Key) bool {
	code, ok := keyCodes[k]
	return ok && inpututil.IsKeyJustPressed(code)
}
