// Package input turns device state into game.ActionSet snapshots.
package input

import (
	"slices"
	"strings"

	"github.com/spacehole-rogue/spacelab/internal/game"
)

// Source yields one ActionSet per tick.
type Source interface {
	Poll() game.ActionSet
}

// Key names a physical key, e.g. "W", "Shift", "Comma".
type Key string

// KeyState reports device key state for the current frame.
type KeyState interface {
	Pressed(k Key) bool
	JustPressed(k Key) bool
}

// Binding maps a chord of keys to an action. All keys must be down.
type Binding struct {
	Keys   []Key
	Action game.Action
}

func (b Binding) String() string {
	parts := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, "+") + " -> " + b.Action.String()
}

// DefaultBindings is the stock flight layout.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: []Key{"W"}, Action: game.ActionThrust},
		{Keys: []Key{"S"}, Action: game.ActionBrake},
		{Keys: []Key{"A"}, Action: game.ActionRotateLeft},
		{Keys: []Key{"D"}, Action: game.ActionRotateRight},
		{Keys: []Key{"Comma"}, Action: game.ActionLeft},
		{Keys: []Key{"Period"}, Action: game.ActionRight},
		{Keys: []Key{"C"}, Action: game.ActionToggleCargo},
		{Keys: []Key{"Shift", "D"}, Action: game.ActionToggleDock},
	}
}

// Keyboard polls a KeyState through a set of bindings.
type Keyboard struct {
	bindings []Binding
	state    KeyState
}

// NewKeyboard creates a keyboard source. Longer chords are matched first and
// consume their keys, so Shift+D docks without also rotating.
func NewKeyboard(state KeyState, bindings []Binding) *Keyboard {
	sorted := slices.Clone(bindings)
	slices.SortStableFunc(sorted, func(a, b Binding) int {
		return len(b.Keys) - len(a.Keys)
	})
	return &Keyboard{bindings: sorted, state: state}
}

// Poll reads the current frame.
func (k *Keyboard) Poll() game.ActionSet {
	return resolve(k.bindings, k.state)
}

func resolve(bindings []Binding, state KeyState) game.ActionSet {
	var out game.ActionSet
	used := make(map[Key]bool)
	for _, b := range bindings {
		if len(b.Keys) == 0 || !chordDown(b.Keys, state, used) {
			continue
		}
		fresh := false
		for _, key := range b.Keys {
			used[key] = true
			fresh = fresh || state.JustPressed(key)
		}
		if fresh {
			out.Press(b.Action)
		} else {
			out.Hold(b.Action)
		}
	}
	return out
}

func chordDown(keys []Key, state KeyState, used map[Key]bool) bool {
	for _, key := range keys {
		if used[key] || !state.Pressed(key) {
			return false
		}
	}
	return true
}
