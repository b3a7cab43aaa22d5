package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Thrust(t *testing.T) {
	sim := newTestSim(t)
	v := spawnVessel(t, sim, 0, 0)

	require.NoError(t, sim.Tick(Actions(ActionThrust)))
	info, err := sim.Vessel(v)
	require.NoError(t, err)
	assertVec(t, Vec2{0, 0.1}, info.Velocity)
	assertVec(t, Vec2{0, 0.1}, info.Absolute.Pos)

	require.NoError(t, sim.Tick(ActionSet{}))
	info, err = sim.Vessel(v)
	require.NoError(t, err)
	assertVec(t, Vec2{0, 0.2}, info.Absolute.Pos, "velocity carries over")
}

func TestController_Brake(t *testing.T) {
	sim := newTestSim(t)
	v := spawnVessel(t, sim, 0, 0)

	require.NoError(t, sim.Tick(Actions(ActionThrust)))
	require.NoError(t, sim.Tick(Actions(ActionBrake)))
	info, err := sim.Vessel(v)
	require.NoError(t, err)
	assertVec(t, Vec2{0, 0.095}, info.Velocity)
	assertVec(t, Vec2{0, 0.195}, info.Absolute.Pos)
}

func TestController_Rotate(t *testing.T) {
	tests := []struct {
		name string
		in   Action
		want float64
	}{
		{"left is counter-clockwise", ActionRotateLeft, 0.01 * math.Pi},
		{"right is clockwise", ActionRotateRight, -0.01 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSim(t)
			v := spawnVessel(t, sim, 0, 0)
			require.NoError(t, sim.Tick(Actions(tt.in)))

			info, err := sim.Vessel(v)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, info.Absolute.Rot, eps)
			assertVec(t, Vec2{}, info.Velocity)
		})
	}
}

func TestController_Strafe(t *testing.T) {
	tests := []struct {
		name string
		in   Action
		want Vec2
	}{
		{"left", ActionLeft, Vec2{-0.01, 0}},
		{"right", ActionRight, Vec2{0.01, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSim(t)
			v := spawnVessel(t, sim, 0, 0)
			require.NoError(t, sim.Tick(Actions(tt.in)))

			info, err := sim.Vessel(v)
			require.NoError(t, err)
			assertVec(t, tt.want, info.Velocity)
		})
	}
}

func TestController_ThrustFollowsHeading(t *testing.T) {
	sim := newTestSim(t)
	v, err := sim.SpawnVessel("Vessel", Transform{Rot: math.Pi / 2}, true)
	require.NoError(t, err)

	require.NoError(t, sim.Tick(Actions(ActionThrust)))
	info, err := sim.Vessel(v)
	require.NoError(t, err)
	assertVec(t, Vec2{-0.1, 0}, info.Velocity)
}

func TestController_CustomTuning(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Thrust = 2
	sim, err := NewSim(Options{Tuning: tuning, Integrator: DriftIntegrator{Drag: 1, MaxSpeed: 3}})
	require.NoError(t, err)
	v := spawnVessel(t, sim, 0, 0)

	require.NoError(t, sim.Tick(Actions(ActionThrust)))
	require.NoError(t, sim.Tick(Actions(ActionThrust)))
	info, err := sim.Vessel(v)
	require.NoError(t, err)
	assertVec(t, Vec2{0, 3}, info.Velocity, "capped by the integrator")
	assertVec(t, Vec2{0, 5}, info.Absolute.Pos)
	assert.Equal(t, tuning, sim.Tuning())
}

func TestDriftIntegrator_Drag(t *testing.T) {
	tr := Transform{}
	vel := Velocity{Linear: Vec2{1, 0}}
	DriftIntegrator{Drag: 0.5}.Integrate(&tr, &vel, nil)
	assertVec(t, Vec2{0.5, 0}, vel.Linear)
	assertVec(t, Vec2{0.5, 0}, tr.Pos)
}
