package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// DockEvent is an input to the docking state machine.
type DockEvent uint8

const (
	EventDockRequest DockEvent = iota
	EventUndock
)

func (e DockEvent) String() string {
	if e == EventUndock {
		return "undock"
	}
	return "dock-request"
}

// DockRequest is queued by the controller and consumed on the next tick.
type DockRequest struct {
	Vessel BodyID
}

// DockingMachine owns every Undocked <-> Docked transition. Both directions
// go through Transition and share the same reparenting code.
type DockingMachine struct {
	radius  float64
	pending []DockRequest

	log     zerolog.Logger
	metrics *simMetrics
	comms   *MessageLog
}

// NewDockingMachine creates a machine with the given capture radius.
func NewDockingMachine(radius float64, log zerolog.Logger, metrics *simMetrics, comms *MessageLog) *DockingMachine {
	return &DockingMachine{
		radius:  radius,
		log:     log.With().Str("component", "docking").Logger(),
		metrics: metrics,
		comms:   comms,
	}
}

// Request queues a dock request for vessel.
func (m *DockingMachine) Request(vessel BodyID) {
	m.pending = append(m.pending, DockRequest{Vessel: vessel})
}

// Pending returns the number of queued requests.
func (m *DockingMachine) Pending() int { return len(m.pending) }

// Drain processes every queued request once and empties the queue, whatever
// the outcome. Failures are collected; one bad request does not stop the rest.
func (m *DockingMachine) Drain(s *bodyStore) error {
	reqs := m.pending
	m.pending = nil

	var errs []error
	for _, r := range reqs {
		if _, err := m.Transition(s, r.Vessel, EventDockRequest); err != nil {
			m.log.Warn().Err(err).Uint32("vessel", uint32(r.Vessel)).Msg("dock request failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Transition applies ev to vessel and returns its resulting state.
//
//	Undocked + dock-request -> Docked(nearest station in range), or unchanged if none
//	Docked   + undock       -> Undocked
//	anything else           -> unchanged
func (m *DockingMachine) Transition(s *bodyStore, vessel BodyID, ev DockEvent) (DockState, error) {
	_, v, err := s.vessel(vessel)
	if err != nil {
		if ev == EventDockRequest {
			m.metrics.dockRequest(outcomeFailed)
		}
		return DockState{}, err
	}
	state := v.Dock
	if err := m.check(s, vessel); err != nil {
		if ev == EventDockRequest {
			m.metrics.dockRequest(outcomeFailed)
		}
		return state, err
	}

	switch {
	case ev == EventDockRequest && !state.Docked:
		station, dist, ok := m.nearestStation(s, vessel)
		if !ok {
			m.log.Debug().Uint32("vessel", uint32(vessel)).Float64("radius", m.radius).Msg("no stations nearby")
			m.metrics.dockRequest(outcomeOutOfRange)
			return state, nil
		}
		if err := m.attach(s, vessel, station); err != nil {
			m.metrics.dockRequest(outcomeFailed)
			return state, fmt.Errorf("dock vessel %d at %d: %w", vessel, station, err)
		}
		m.metrics.dockRequest(outcomeDocked)
		name := m.name(s, station)
		m.log.Debug().Uint32("vessel", uint32(vessel)).Str("station", name).Float64("distance", dist).Msg("docked")
		m.notify(fmt.Sprintf("Docked at %s.", name), MsgNav)
		return DockState{Docked: true, Station: station}, nil

	case ev == EventUndock && state.Docked:
		if err := m.detach(s, vessel); err != nil {
			return state, fmt.Errorf("undock vessel %d from %d: %w", vessel, state.Station, err)
		}
		m.metrics.undock()
		name := m.name(s, state.Station)
		m.log.Debug().Uint32("vessel", uint32(vessel)).Str("station", name).Msg("undocked")
		m.notify(fmt.Sprintf("Undocked from %s.", name), MsgNav)
		return DockState{}, nil

	default:
		m.log.Debug().Uint32("vessel", uint32(vessel)).Stringer("event", ev).Stringer("state", state).Msg("dock event ignored")
		return state, nil
	}
}

// nearestStation finds the closest station strictly inside the capture
// radius. Equidistant stations resolve to the lowest id.
func (m *DockingMachine) nearestStation(s *bodyStore, vessel BodyID) (BodyID, float64, bool) {
	at, ok := s.global(vessel)
	if !ok {
		return 0, 0, false
	}
	var (
		best     BodyID
		bestDist = math.Inf(1)
	)
	for _, id := range s.stations() {
		st, ok := s.global(id)
		if !ok {
			continue
		}
		d := st.Pos.Dist(at.Pos)
		if d < m.radius && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, bestDist, best != 0
}

// attach reparents vessel under station and hands it to the orbit integrator
// at the station's orbital speed.
func (m *DockingMachine) attach(s *bodyStore, vessel, station BodyID) error {
	if err := s.reparent(vessel, station); err != nil {
		return err
	}
	e, _ := s.entity(vessel)
	se, _ := s.entity(station)

	var speed float64
	if s.orbits.Has(se) {
		speed = s.orbits.Get(se).Speed
	}
	if s.rigid.Has(e) {
		s.rigid.Remove(e)
	}
	if s.orbits.Has(e) {
		s.orbits.Get(e).Speed = speed
	} else {
		s.orbits.Add(e, &Orbit{Speed: speed})
	}
	s.velocities.Get(e).Linear = Vec2{}

	v := s.vessels.Get(e)
	v.Dock = DockState{Docked: true, Station: station}
	v.Mode = OrbitDriven
	return s.refresh()
}

// detach returns vessel to free flight at its current absolute transform.
func (m *DockingMachine) detach(s *bodyStore, vessel BodyID) error {
	if err := s.reparent(vessel, 0); err != nil {
		return err
	}
	e, _ := s.entity(vessel)
	if s.orbits.Has(e) {
		s.orbits.Remove(e)
	}
	if !s.rigid.Has(e) {
		s.rigid.Add(e, &RigidBody{HalfExtent: vesselHalfExtent})
	}
	s.velocities.Get(e).Linear = Vec2{}

	v := s.vessels.Get(e)
	v.Dock = DockState{}
	v.Mode = PhysicsDriven
	return s.refresh()
}

// check verifies the docking invariant for vessel: Docked(station) means a
// child of station driven by orbit; Undocked means a physics-driven root.
func (m *DockingMachine) check(s *bodyStore, vessel BodyID) error {
	e, _ := s.entity(vessel)
	v := s.vessels.Get(e)
	parent, hasParent := s.tree.Parent(vessel)

	if v.Dock.Docked {
		switch {
		case !hasParent:
			return invariantViolation("vessel %d docked at %d has no parent", vessel, v.Dock.Station)
		case parent != v.Dock.Station:
			return invariantViolation("vessel %d docked at %d is parented to %d", vessel, v.Dock.Station, parent)
		case v.Mode != OrbitDriven || s.rigid.Has(e):
			return invariantViolation("vessel %d docked but still physics driven", vessel)
		}
		return nil
	}
	switch {
	case hasParent:
		return invariantViolation("undocked vessel %d is parented to %d", vessel, parent)
	case v.Mode != PhysicsDriven || s.orbits.Has(e):
		return invariantViolation("undocked vessel %d is orbit driven", vessel)
	}
	return nil
}

func (m *DockingMachine) name(s *bodyStore, id BodyID) string {
	if e, ok := s.entity(id); ok {
		return s.bodies.Get(e).Name
	}
	return fmt.Sprintf("#%d", id)
}

func (m *DockingMachine) notify(text string, p MsgPriority) {
	if m.comms != nil {
		m.comms.Add(text, p)
	}
}
