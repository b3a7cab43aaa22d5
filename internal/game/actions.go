package game

import "strings"

// Action is an abstract control signal, decoupled from any input device.
type Action uint8

const (
	ActionThrust Action = iota
	ActionBrake
	ActionRotateLeft
	ActionRotateRight
	ActionLeft
	ActionRight
	ActionToggleDock
	ActionToggleCargo
	actionCount
)

var actionNames = [actionCount]string{
	ActionThrust:      "Thrust",
	ActionBrake:       "Brake",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionToggleDock:  "ToggleDock",
	ActionToggleCargo: "ToggleCargo",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// ActionSet is one tick's snapshot of held and just-pressed actions.
// A just-pressed action is also held.
type ActionSet struct {
	held    uint16
	pressed uint16
}

// Actions builds a set where every listed action is held.
func Actions(held ...Action) ActionSet {
	var s ActionSet
	for _, a := range held {
		s.Hold(a)
	}
	return s
}

// Hold marks a as held this tick.
func (s *ActionSet) Hold(a Action) {
	s.held |= 1 << a
}

// Press marks a as pressed this tick (and therefore held).
func (s *ActionSet) Press(a Action) {
	s.held |= 1 << a
	s.pressed |= 1 << a
}

// Held reports whether a is down this tick.
func (s ActionSet) Held(a Action) bool { return s.held&(1<<a) != 0 }

// JustPressed reports whether a went down this tick.
func (s ActionSet) JustPressed(a Action) bool { return s.pressed&(1<<a) != 0 }

// Empty reports whether nothing is held.
func (s ActionSet) Empty() bool { return s.held == 0 && s.pressed == 0 }

// Merge returns the union of s and o.
func (s ActionSet) Merge(o ActionSet) ActionSet {
	return ActionSet{held: s.held | o.held, pressed: s.pressed | o.pressed}
}

func (s ActionSet) String() string {
	var parts []string
	for a := Action(0); a < actionCount; a++ {
		switch {
		case s.JustPressed(a):
			parts = append(parts, a.String()+"!")
		case s.Held(a):
			parts = append(parts, a.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
