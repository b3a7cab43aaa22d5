package game

import (
	"errors"

	"github.com/rs/zerolog"
)

// OrbitIntegrator advances every orbiting body around its parent's origin.
type OrbitIntegrator struct {
	log zerolog.Logger
}

// NewOrbitIntegrator creates an integrator.
func NewOrbitIntegrator(log zerolog.Logger) *OrbitIntegrator {
	return &OrbitIntegrator{log: log.With().Str("component", "orbit").Logger()}
}

// Step rotates each orbiting body's local position by its speed around the
// parent's local origin (the world origin for roots), then spins the body
// back by the same angle so only its position advances and its facing, and
// that of anything attached to it, stays put. order must list parents
// before children. A body whose parent cannot be resolved is skipped and
// reported; the rest still advance.
func (o *OrbitIntegrator) Step(s *bodyStore, order []BodyID) error {
	var errs []error
	for _, id := range order {
		e, ok := s.entity(id)
		if !ok {
			errs = append(errs, invariantViolation("orbit order lists body %d with no live entity", id))
			continue
		}
		if !s.orbits.Has(e) {
			continue
		}
		if p, ok := s.tree.Parent(id); ok {
			if _, alive := s.entity(p); !alive {
				o.log.Error().Uint32("body", uint32(id)).Uint32("parent", uint32(p)).Msg("orbit parent lookup failed")
				errs = append(errs, invariantViolation("orbiting body %d has dangling parent %d", id, p))
				continue
			}
		}
		speed := s.orbits.Get(e).Speed
		if speed == 0 {
			continue
		}
		t := s.locals.Get(e)
		t.RotateAround(Vec2{}, speed)
		t.RotateLocal(-speed)
	}
	return errors.Join(errs...)
}

// OrbitRadius returns the distance of id from its parent's origin.
func (o *OrbitIntegrator) OrbitRadius(s *bodyStore, id BodyID) (float64, bool) {
	e, ok := s.entity(id)
	if !ok || !s.orbits.Has(e) {
		return 0, false
	}
	return s.locals.Get(e).Pos.Len(), true
}
