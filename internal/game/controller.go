package game

import (
	"math"

	"github.com/rs/zerolog"
)

// Tuning holds the flight and docking constants.
type Tuning struct {
	CaptureRadius float64 // max distance for a dock request to succeed
	Thrust        float64 // forward velocity added per tick of Thrust
	Strafe        float64 // sideways velocity added per tick of Left/Right
	Brake         float64 // velocity multiplier per tick of Brake
	TurnRate      float64 // radians per tick of RotateLeft/RotateRight
}

// DefaultTuning returns the stock handling.
func DefaultTuning() Tuning {
	return Tuning{
		CaptureRadius: 50,
		Thrust:        0.1,
		Strafe:        0.01,
		Brake:         0.95,
		TurnRate:      0.01 * math.Pi,
	}
}

// UIState is the slice of interface state the core is allowed to flip.
type UIState struct {
	CargoVisible bool
}

// Controller turns a vessel's action snapshot into velocity and orientation
// changes, and into dock/undock events.
type Controller struct {
	tuning Tuning
	log    zerolog.Logger
}

// NewController creates a controller.
func NewController(tuning Tuning, log zerolog.Logger) *Controller {
	return &Controller{
		tuning: tuning,
		log:    log.With().Str("component", "controller").Logger(),
	}
}

// Apply processes one tick of input for vessel id. Movement is suppressed
// while docked; ToggleDock queues a dock request when undocked and undocks
// at once when docked.
func (c *Controller) Apply(s *bodyStore, id BodyID, in ActionSet, dock *DockingMachine, ui *UIState) error {
	e, v, err := s.vessel(id)
	if err != nil {
		return err
	}

	if !v.Dock.Docked {
		vel := s.velocities.Get(e)
		t := s.locals.Get(e)

		if in.Held(ActionLeft) {
			vel.Linear = vel.Linear.Add(t.Left().Scale(c.tuning.Strafe))
		}
		if in.Held(ActionRight) {
			vel.Linear = vel.Linear.Add(t.Right().Scale(c.tuning.Strafe))
		}
		if in.Held(ActionThrust) {
			vel.Linear = vel.Linear.Add(t.Up().Scale(c.tuning.Thrust))
		}
		if in.Held(ActionBrake) {
			vel.Linear = vel.Linear.Scale(c.tuning.Brake)
		}
		if in.Held(ActionRotateLeft) {
			t.RotateLocal(c.tuning.TurnRate)
		}
		if in.Held(ActionRotateRight) {
			t.RotateLocal(-c.tuning.TurnRate)
		}
		if in.JustPressed(ActionToggleCargo) && ui != nil {
			ui.CargoVisible = !ui.CargoVisible
		}
	}

	if in.JustPressed(ActionToggleDock) {
		if !v.Dock.Docked {
			dock.Request(id)
			return nil
		}
		if _, err := dock.Transition(s, id, EventUndock); err != nil {
			return err
		}
	}
	return nil
}
