package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/spacehole-rogue/spacelab/internal/world"
)

// Options configures a new Sim. Zero values pick the defaults.
type Options struct {
	Tuning     Tuning
	Logger     *zerolog.Logger
	Integrator Integrator
	CommsSize  int
	// Meters receives the simulation counters. Nil uses the global provider.
	Meters metric.MeterProvider
}

// Sim is the space simulation. It owns all bodies and advances them one
// tick at a time.
type Sim struct {
	ECS    *ecs.World
	Log    *MessageLog
	UI     UIState
	Ticks  uint64
	Paused bool

	store    *bodyStore
	tuning   Tuning
	log      zerolog.Logger
	cargoLog zerolog.Logger
	metrics  *simMetrics
	orbit    *OrbitIntegrator
	control  *Controller
	docking  *DockingMachine
	physics  Integrator
	primary  BodyID
}

// BodyInfo is a read-only snapshot of one body.
type BodyInfo struct {
	ID         BodyID
	Name       string
	Kind       Kind
	Parent     BodyID // 0 for roots
	Local      Transform
	Absolute   Transform
	OrbitSpeed float64
	Orbiting   bool
}

// VesselInfo extends BodyInfo with flight state.
type VesselInfo struct {
	BodyInfo
	Primary  bool
	Dock     DockState
	Mode     MovementMode
	Velocity Vec2
}

// NewSim creates an empty simulation.
func NewSim(opts Options) (*Sim, error) {
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	if opts.Integrator == nil {
		opts.Integrator = DriftIntegrator{Drag: 1}
	}
	if opts.CommsSize <= 0 {
		opts.CommsSize = 50
	}

	metrics, err := newSimMetrics(opts.Meters)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld(256)
	s := &Sim{
		ECS:      w,
		Log:      NewMessageLog(opts.CommsSize),
		store:    newBodyStore(w),
		tuning:   opts.Tuning,
		log:      log.With().Str("component", "sim").Logger(),
		cargoLog: log.With().Str("component", "cargo").Logger(),
		metrics:  metrics,
		orbit:    NewOrbitIntegrator(log),
		control:  NewController(opts.Tuning, log),
		physics:  opts.Integrator,
	}
	s.Log.now = func() uint64 { return s.Ticks }
	s.docking = NewDockingMachine(opts.Tuning.CaptureRadius, log, metrics, s.Log)
	return s, nil
}

// SpawnBody adds a star, planet or station. local is relative to parent
// (0 for a root); a non-zero speed makes the body orbit its parent's origin.
func (s *Sim) SpawnBody(name string, kind Kind, parent BodyID, local Transform, speed float64) (BodyID, error) {
	if kind == KindVessel {
		return 0, fmt.Errorf("spawn %s: vessels must use SpawnVessel", name)
	}
	id, err := s.store.spawn(name, kind, local, parent)
	if err != nil {
		return 0, err
	}
	if speed != 0 {
		e, _ := s.store.entity(id)
		s.store.orbits.Add(e, &Orbit{Speed: speed})
	}
	s.log.Debug().Uint32("body", uint32(id)).Str("name", name).Stringer("kind", kind).Msg("spawned body")
	return id, nil
}

// SpawnVessel adds an undocked, physics-driven vessel at the world root with
// an empty cargo hold.
func (s *Sim) SpawnVessel(name string, at Transform, primary bool) (BodyID, error) {
	id, err := s.store.spawn(name, KindVessel, at, 0)
	if err != nil {
		return 0, err
	}
	e, _ := s.store.entity(id)
	s.store.velocities.Add(e, &Velocity{})
	s.store.rigid.Add(e, &RigidBody{HalfExtent: vesselHalfExtent})
	s.store.vessels.Add(e, &Vessel{Mode: PhysicsDriven})
	hold := NewHold()
	s.store.holds.Add(e, &hold)

	s.log.Debug().Uint32("body", uint32(id)).Str("name", name).Msg("spawned vessel")
	if primary {
		if err := s.SetPrimary(id); err != nil {
			return id, err
		}
	}
	return id, nil
}

// SetPrimary makes id the only primary vessel.
func (s *Sim) SetPrimary(id BodyID) error {
	_, v, err := s.store.vessel(id)
	if err != nil {
		return err
	}
	if s.primary != 0 && s.primary != id {
		if _, old, err := s.store.vessel(s.primary); err == nil {
			old.Primary = false
		}
	}
	v.Primary = true
	s.primary = id
	return nil
}

// Primary returns the primary vessel.
func (s *Sim) Primary() (BodyID, error) {
	if s.primary == 0 {
		return 0, ErrNoPrimaryVessel
	}
	if _, _, err := s.store.vessel(s.primary); err != nil {
		return 0, invariantViolation("primary vessel %d is gone: %v", s.primary, err)
	}
	return s.primary, nil
}

// SetPaused freezes or resumes the simulation. A paused Tick is a no-op.
func (s *Sim) SetPaused(paused bool) {
	if s.Paused != paused {
		s.log.Info().Bool("paused", paused).Uint64("tick", s.Ticks).Msg("pause toggled")
	}
	s.Paused = paused
}

// Tick advances the simulation by one step, feeding in to the primary vessel.
// Input with no primary vessel is reported but does not stop the tick.
func (s *Sim) Tick(in ActionSet) error {
	if s.Paused {
		return nil
	}
	if s.primary == 0 {
		if in.Empty() {
			return s.Step(nil)
		}
		s.log.Warn().Stringer("input", in).Msg("input dropped, no primary vessel")
		return errors.Join(fmt.Errorf("apply %s: %w", in, ErrNoPrimaryVessel), s.Step(nil))
	}
	return s.Step(map[BodyID]ActionSet{s.primary: in})
}

// Step advances the simulation by one step with input for any number of
// vessels. The phases run in a fixed order:
//
//  1. dock requests queued last tick are resolved
//  2. each vessel's input is applied, lowest id first
//  3. physics-driven bodies integrate their velocity
//  4. orbits advance and absolute transforms are recomputed
//
// Errors from one phase or vessel do not stop the others.
func (s *Sim) Step(inputs map[BodyID]ActionSet) error {
	if s.Paused {
		return nil
	}
	s.Ticks++
	var errs []error

	if err := s.docking.Drain(s.store); err != nil {
		errs = append(errs, err)
	}

	ids := make([]BodyID, 0, len(inputs))
	for id := range inputs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := s.control.Apply(s.store, id, inputs[id], s.docking, &s.UI); err != nil {
			s.log.Warn().Err(err).Uint32("vessel", uint32(id)).Msg("input not applied")
			errs = append(errs, err)
		}
	}

	s.store.integratePhysics(s.physics)

	order, err := s.store.tree.Order()
	if err != nil {
		errs = append(errs, err)
	} else {
		if err := s.orbit.Step(s.store, order); err != nil {
			errs = append(errs, err)
		}
		if err := s.store.propagate(order); err != nil {
			errs = append(errs, err)
		}
	}

	s.metrics.tick()
	return errors.Join(errs...)
}

// Body returns a snapshot of id.
func (s *Sim) Body(id BodyID) (BodyInfo, error) {
	e, ok := s.store.entity(id)
	if !ok {
		return BodyInfo{}, fmt.Errorf("body %d: %w", id, ErrUnknownBody)
	}
	b := s.store.bodies.Get(e)
	info := BodyInfo{
		ID:       id,
		Name:     b.Name,
		Kind:     b.Kind,
		Local:    *s.store.locals.Get(e),
		Absolute: s.store.globals.Get(e).Transform,
	}
	if p, ok := s.store.tree.Parent(id); ok {
		info.Parent = p
	}
	if s.store.orbits.Has(e) {
		info.Orbiting = true
		info.OrbitSpeed = s.store.orbits.Get(e).Speed
	}
	return info, nil
}

// Bodies returns a snapshot of every body, lowest id first.
func (s *Sim) Bodies() []BodyInfo {
	ids := s.store.all()
	out := make([]BodyInfo, 0, len(ids))
	for _, id := range ids {
		if info, err := s.Body(id); err == nil {
			out = append(out, info)
		}
	}
	return out
}

// Children returns the direct children of id, lowest id first.
func (s *Sim) Children(id BodyID) []BodyID {
	return s.store.tree.Children(id)
}

// AbsoluteTransform returns the world-space transform of id as of the end of
// the last tick.
func (s *Sim) AbsoluteTransform(id BodyID) (Transform, error) {
	t, ok := s.store.global(id)
	if !ok {
		return Transform{}, fmt.Errorf("body %d: %w", id, ErrUnknownBody)
	}
	return t, nil
}

// FindByName returns the lowest-id body called name.
func (s *Sim) FindByName(name string) (BodyID, bool) {
	for _, id := range s.store.all() {
		e, _ := s.store.entity(id)
		if s.store.bodies.Get(e).Name == name {
			return id, true
		}
	}
	return 0, false
}

// OrbitRadius returns the distance of an orbiting body from its parent's
// origin, for drawing orbital paths.
func (s *Sim) OrbitRadius(id BodyID) (float64, bool) {
	return s.orbit.OrbitRadius(s.store, id)
}

// Vessel returns a snapshot of vessel id.
func (s *Sim) Vessel(id BodyID) (VesselInfo, error) {
	e, v, err := s.store.vessel(id)
	if err != nil {
		return VesselInfo{}, err
	}
	body, err := s.Body(id)
	if err != nil {
		return VesselInfo{}, err
	}
	return VesselInfo{
		BodyInfo: body,
		Primary:  v.Primary,
		Dock:     v.Dock,
		Mode:     v.Mode,
		Velocity: s.store.velocities.Get(e).Linear,
	}, nil
}

// Store adds qty of item to the vessel's hold.
func (s *Sim) Store(vessel BodyID, item Item, qty uint64) error {
	hold, err := s.hold(vessel)
	if err != nil {
		return err
	}
	hold.Store(item, qty)
	s.metrics.cargo(cargoStore)
	s.cargoLog.Debug().Uint32("vessel", uint32(vessel)).Stringer("item", item).Uint64("qty", qty).Msg("stored")
	if qty > 0 {
		s.Log.Add(fmt.Sprintf("Loaded %d %s. Hold: %d.", qty, item, hold.Count(item)), MsgCargo)
	}
	return nil
}

// Remove takes qty of item out of the vessel's hold. If the hold has fewer
// than qty the item is cleared and ErrInsufficientQuantity is returned.
func (s *Sim) Remove(vessel BodyID, item Item, qty uint64) error {
	hold, err := s.hold(vessel)
	if err != nil {
		return err
	}
	had := hold.Count(item)
	if err := hold.Remove(item, qty); err != nil {
		s.metrics.cargo(cargoCleared)
		s.cargoLog.Debug().Err(err).Uint32("vessel", uint32(vessel)).Stringer("item", item).Uint64("qty", qty).Uint64("had", had).Msg("remove clamped, item cleared")
		s.Log.Add(fmt.Sprintf("Only %d %s aboard; cleared from hold.", had, item), MsgWarning)
		return err
	}
	s.metrics.cargo(cargoRemove)
	s.cargoLog.Debug().Uint32("vessel", uint32(vessel)).Stringer("item", item).Uint64("qty", qty).Msg("removed")
	if qty > 0 {
		s.Log.Add(fmt.Sprintf("Unloaded %d %s. Hold: %d.", qty, item, hold.Count(item)), MsgCargo)
	}
	return nil
}

// Cargo returns the vessel's hold manifest.
func (s *Sim) Cargo(vessel BodyID) ([]Line, error) {
	hold, err := s.hold(vessel)
	if err != nil {
		return nil, err
	}
	return hold.Manifest(), nil
}

func (s *Sim) hold(vessel BodyID) (*Hold, error) {
	e, _, err := s.store.vessel(vessel)
	if err != nil {
		return nil, err
	}
	if !s.store.holds.Has(e) {
		return nil, invariantViolation("vessel %d has no cargo hold", vessel)
	}
	return s.store.holds.Get(e), nil
}

// ToggleCargoPanel flips cargo panel visibility regardless of docking state.
func (s *Sim) ToggleCargoPanel() {
	s.UI.CargoVisible = !s.UI.CargoVisible
}

// Load spawns every body and vessel in u and returns their ids by name.
func (s *Sim) Load(u *world.Universe) (map[string]BodyID, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	bodies, err := u.Ordered()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]BodyID, len(bodies)+len(u.Vessels))
	for _, b := range bodies {
		kind, err := ParseKind(b.Kind)
		if err != nil {
			return nil, err
		}
		var parent BodyID
		if b.Parent != "" {
			parent = ids[b.Parent]
		}
		local := Transform{Pos: Vec2{b.Position[0], b.Position[1]}, Rot: b.Rotation}
		id, err := s.SpawnBody(b.Name, kind, parent, local, b.Speed)
		if err != nil {
			return nil, err
		}
		ids[b.Name] = id
	}
	for _, v := range u.Vessels {
		at := Transform{Pos: Vec2{v.Position[0], v.Position[1]}, Rot: v.Rotation}
		id, err := s.SpawnVessel(v.Name, at, v.Primary)
		if err != nil {
			return nil, err
		}
		ids[v.Name] = id
	}
	s.log.Info().Str("universe", u.Name).Int("bodies", len(bodies)).Int("vessels", len(u.Vessels)).Msg("universe loaded")
	return ids, nil
}

// DefaultUniverse is the stock scene: a star, one planet with a station in
// orbit around it, and the player's vessel between them.
func DefaultUniverse() *world.Universe {
	return &world.Universe{
		Name: "Sol",
		Bodies: []world.BodySpec{
			{Name: "Sol", Kind: "star"},
			{Name: "Earth", Kind: "planet", Parent: "Sol", Speed: 0.001, Position: [2]float64{100, 0}},
			{Name: "ISS", Kind: "station", Parent: "Earth", Speed: 0.01, Position: [2]float64{25, 0}},
		},
		Vessels: []world.VesselSpec{
			{Name: "Vessel", Position: [2]float64{50, 0}, Primary: true},
		},
	}
}

// Tuning returns the flight and docking constants in use.
func (s *Sim) Tuning() Tuning { return s.tuning }
