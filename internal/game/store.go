package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// bodyStore is the arena of bodies: ECS entities addressed by stable
// BodyIDs, plus the hierarchy that links them.
type bodyStore struct {
	world *ecs.World
	tree  *Hierarchy
	ids   map[BodyID]ecs.Entity
	last  BodyID

	spawner    *ecs.Map3[Body, Transform, GlobalTransform]
	bodies     *ecs.Map[Body]
	locals     *ecs.Map[Transform]
	globals    *ecs.Map[GlobalTransform]
	orbits     *ecs.Map[Orbit]
	velocities *ecs.Map[Velocity]
	vessels    *ecs.Map[Vessel]
	rigid      *ecs.Map[RigidBody]
	holds      *ecs.Map[Hold]

	bodyFilter    *ecs.Filter1[Body]
	physicsFilter *ecs.Filter3[Transform, Velocity, RigidBody]
}

func newBodyStore(w *ecs.World) *bodyStore {
	return &bodyStore{
		world:         w,
		tree:          NewHierarchy(),
		ids:           make(map[BodyID]ecs.Entity),
		spawner:       ecs.NewMap3[Body, Transform, GlobalTransform](w),
		bodies:        ecs.NewMap[Body](w),
		locals:        ecs.NewMap[Transform](w),
		globals:       ecs.NewMap[GlobalTransform](w),
		orbits:        ecs.NewMap[Orbit](w),
		velocities:    ecs.NewMap[Velocity](w),
		vessels:       ecs.NewMap[Vessel](w),
		rigid:         ecs.NewMap[RigidBody](w),
		holds:         ecs.NewMap[Hold](w),
		bodyFilter:    ecs.NewFilter1[Body](w),
		physicsFilter: ecs.NewFilter3[Transform, Velocity, RigidBody](w),
	}
}

// spawn creates a body with a parent-relative transform. parent 0 makes a root.
func (s *bodyStore) spawn(name string, kind Kind, local Transform, parent BodyID) (BodyID, error) {
	if parent != 0 {
		if _, ok := s.ids[parent]; !ok {
			return 0, fmt.Errorf("spawn %s under %d: %w", name, parent, ErrUnknownBody)
		}
	}
	s.last++
	id := s.last
	if err := s.tree.Add(id); err != nil {
		return 0, err
	}
	if parent != 0 {
		if err := s.tree.SetParent(id, parent); err != nil {
			return 0, err
		}
	}
	global := GlobalTransform{Transform: local}
	if parent != 0 {
		global.Transform = Compose(s.globals.Get(s.ids[parent]).Transform, local)
	}
	e := s.spawner.NewEntity(&Body{ID: id, Name: name, Kind: kind}, &local, &global)
	s.ids[id] = e
	return id, nil
}

// entity resolves a handle to a live entity.
func (s *bodyStore) entity(id BodyID) (ecs.Entity, bool) {
	e, ok := s.ids[id]
	if !ok || !s.world.Alive(e) {
		return ecs.Entity{}, false
	}
	return e, true
}

// vessel resolves a handle that must name a vessel.
func (s *bodyStore) vessel(id BodyID) (ecs.Entity, *Vessel, error) {
	e, ok := s.entity(id)
	if !ok {
		return ecs.Entity{}, nil, fmt.Errorf("vessel %d: %w", id, ErrVesselNotFound)
	}
	if !s.vessels.Has(e) {
		return ecs.Entity{}, nil, fmt.Errorf("body %d (%s): %w", id, s.bodies.Get(e).Name, ErrNotAVessel)
	}
	return e, s.vessels.Get(e), nil
}

// global returns the cached absolute transform of id.
func (s *bodyStore) global(id BodyID) (Transform, bool) {
	e, ok := s.entity(id)
	if !ok {
		return Transform{}, false
	}
	return s.globals.Get(e).Transform, true
}

// reparent moves child under parent (0 = world root) keeping its absolute
// transform fixed at the moment of the move.
func (s *bodyStore) reparent(child, parent BodyID) error {
	ce, ok := s.entity(child)
	if !ok {
		return fmt.Errorf("reparent %d: %w", child, ErrUnknownBody)
	}
	abs := s.globals.Get(ce).Transform
	if parent == 0 {
		if err := s.tree.Detach(child); err != nil {
			return err
		}
		*s.locals.Get(ce) = abs
		return nil
	}
	pe, ok := s.entity(parent)
	if !ok {
		return fmt.Errorf("reparent %d under %d: %w", child, parent, ErrUnknownBody)
	}
	if err := s.tree.SetParent(child, parent); err != nil {
		return err
	}
	*s.locals.Get(ce) = Relative(s.globals.Get(pe).Transform, abs)
	return nil
}

// propagate recomputes every absolute transform, parents first. Bodies that
// cannot be resolved keep their last absolute transform and are reported.
func (s *bodyStore) propagate(order []BodyID) error {
	var errs []error
	for _, id := range order {
		e, ok := s.entity(id)
		if !ok {
			errs = append(errs, invariantViolation("hierarchy lists body %d with no live entity", id))
			continue
		}
		local := *s.locals.Get(e)
		abs := local
		if p, ok := s.tree.Parent(id); ok {
			pe, alive := s.entity(p)
			if !alive {
				errs = append(errs, invariantViolation("body %d has dangling parent %d", id, p))
				continue
			}
			abs = Compose(s.globals.Get(pe).Transform, local)
		}
		s.globals.Get(e).Transform = abs
	}
	return errors.Join(errs...)
}

// refresh recomputes absolute transforms after a structural change.
func (s *bodyStore) refresh() error {
	order, err := s.tree.Order()
	if err != nil {
		return err
	}
	return s.propagate(order)
}

// stations lists every station id, lowest first.
func (s *bodyStore) stations() []BodyID {
	var out []BodyID
	query := s.bodyFilter.Query()
	for query.Next() {
		b := query.Get()
		if b.Kind == KindStation {
			out = append(out, b.ID)
		}
	}
	slices.Sort(out)
	return out
}

// all lists every body id, lowest first.
func (s *bodyStore) all() []BodyID {
	out := make([]BodyID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
