package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

// fakeKeys is a KeyState for one frame. A just-pressed key is also down.
type fakeKeys struct {
	down    map[Key]bool
	pressed map[Key]bool
}

func keys(down []Key, pressed ...Key) fakeKeys {
	f := fakeKeys{down: map[Key]bool{}, pressed: map[Key]bool{}}
	for _, k := range down {
		f.down[k] = true
	}
	for _, k := range pressed {
		f.down[k] = true
		f.pressed[k] = true
	}
	return f
}

func (f fakeKeys) Pressed(k Key) bool { return f.down[k] }
func (f fakeKeys) JustPressed(k Key) bool { return f.pressed[k] }

func TestKeyboard_ShiftDDocksWithoutRotating(t *testing.T) {
	kb := NewKeyboard(keys([]Key{"Shift"}, "D"), DefaultBindings())
	got := kb.Poll()

	assert.True(t, got.JustPressed(game.ActionToggleDock))
	assert.False(t, got.Held(game.ActionRotateRight))
}

func TestKeyboard_DAloneRotates(t *testing.T) {
	kb := NewKeyboard(keys([]Key{"D"}), DefaultBindings())
	got := kb.Poll()

	assert.True(t, got.Held(game.ActionRotateRight))
	assert.False(t, got.JustPressed(game.ActionRotateRight))
	assert.False(t, got.Held(game.ActionToggleDock))
}

func TestKeyboard_HeldAndPressed(t *testing.T) {
	kb := NewKeyboard(keys([]Key{"W", "Comma"}, "C"), DefaultBindings())
	got := kb.Poll()

	assert.True(t, got.Held(game.ActionThrust))
	assert.False(t, got.JustPressed(game.ActionThrust))
	assert.True(t, got.Held(game.ActionLeft))
	assert.True(t, got.JustPressed(game.ActionToggleCargo))
	assert.False(t, got.Held(game.ActionBrake))
}

func TestKeyboard_NothingDown(t *testing.T) {
	kb := NewKeyboard(keys(nil), DefaultBindings())
	assert.True(t, kb.Poll().Empty())
}

func TestKeyboard_ChordHeldAfterPress(t *testing.T) {
	kb := NewKeyboard(keys([]Key{"Shift", "D"}), DefaultBindings())
	got := kb.Poll()
	assert.True(t, got.Held(game.ActionToggleDock))
	assert.False(t, got.JustPressed(game.ActionToggleDock), "no new dock request while the chord stays down")
}

func TestBinding_String(t *testing.T) {
	b := Binding{Keys: []Key{"Shift", "D"}, Action: game.ActionToggleDock}
	assert.Equal(t, "Shift+D -> ToggleDock", b.String())
}

func TestScript(t *testing.T) {
	frames := append(Repeat(game.Actions(game.ActionThrust), 2), Press(game.ActionToggleDock))
	s := NewScript(frames...)
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Poll().Held(game.ActionThrust))
	assert.True(t, s.Poll().Held(game.ActionThrust))
	assert.False(t, s.Done())
	assert.True(t, s.Poll().JustPressed(game.ActionToggleDock))
	assert.True(t, s.Done())
	assert.True(t, s.Poll().Empty())
	assert.True(t, s.Poll().Empty())
}
