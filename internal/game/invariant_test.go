package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvariant_DockedWithoutParent(t *testing.T) {
	sim := newTestSim(t)
	st := spawnBody(t, sim, "A", KindStation, 0, 10, 0, 0)
	v := spawnVessel(t, sim, 0, 0)

	_, vessel, err := sim.store.vessel(v)
	require.NoError(t, err)
	vessel.Dock = DockState{Docked: true, Station: st}

	tick := func() error { return sim.Tick(pressed(ActionToggleDock)) }
	if strictInvariants {
		assert.Panics(t, func() { _ = tick() })
		return
	}
	err = tick()
	require.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, DockState{Docked: true, Station: st}, vessel.Dock, "refused, not repaired")
}

func TestInvariant_UndockedButParented(t *testing.T) {
	sim := newTestSim(t)
	spawnBody(t, sim, "A", KindStation, 0, 10, 0, 0)
	other := spawnBody(t, sim, "B", KindPlanet, 0, 500, 0, 0)
	v := spawnVessel(t, sim, 0, 0)
	require.NoError(t, sim.store.tree.SetParent(v, other))

	if strictInvariants {
		assert.Panics(t, func() { _, _ = sim.docking.Transition(sim.store, v, EventDockRequest) })
		return
	}
	_, err := sim.docking.Transition(sim.store, v, EventDockRequest)
	require.ErrorIs(t, err, ErrInvariant)
	info, err := sim.Vessel(v)
	require.NoError(t, err)
	assert.False(t, info.Dock.Docked)
}

func TestInvariant_DanglingParentIsolated(t *testing.T) {
	if strictInvariants {
		t.Skip("strict builds panic on the first violation")
	}
	sim := newTestSim(t)
	parent := spawnBody(t, sim, "Gone", KindPlanet, 0, 100, 0, 0)
	child := spawnBody(t, sim, "Orphan", KindStation, parent, 10, 0, 0.1)
	bystander := spawnBody(t, sim, "Other", KindPlanet, 0, 50, 0, 0.1)

	orphanBefore := absPos(t, sim, child)
	delete(sim.store.ids, parent)

	err := sim.Tick(ActionSet{})
	require.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, uint64(1), sim.Ticks)
	assert.Greater(t, absPos(t, sim, bystander).Y, 0.0, "healthy bodies still advance")
	assertVec(t, orphanBefore, absPos(t, sim, child), "the orphan keeps its last position")
}

func TestInvariant_PrimaryGone(t *testing.T) {
	if strictInvariants {
		t.Skip("strict builds panic on the first violation")
	}
	sim := newTestSim(t)
	v := spawnVessel(t, sim, 0, 0)
	delete(sim.store.ids, v)

	_, err := sim.Primary()
	assert.ErrorIs(t, err, ErrInvariant)
}
